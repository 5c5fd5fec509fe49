package platform

import "testing"

func TestTrackerEmitsInitialResize(t *testing.T) {
	var tr Tracker
	tr.Observe(800, 600, 1)
	events := tr.Drain()
	if len(events) != 1 || events[0].Type != EventResize || events[0].Width != 800 || events[0].Height != 600 {
		t.Fatalf("unexpected events: %#v", events)
	}
	if tr.Drain() != nil {
		t.Fatal("drain should clear pending events")
	}
}

func TestTrackerIgnoresUnchangedSize(t *testing.T) {
	var tr Tracker
	tr.Observe(800, 600, 1)
	tr.Drain()
	tr.Observe(800, 600, 1)
	if events := tr.Drain(); len(events) != 0 {
		t.Fatalf("expected no events, got %#v", events)
	}
}

func TestTrackerCoalescesResizes(t *testing.T) {
	var tr Tracker
	tr.Observe(800, 600, 1)
	tr.Observe(900, 600, 1)
	tr.Observe(1000, 700, 1)
	events := tr.Drain()
	if len(events) != 1 {
		t.Fatalf("expected a single resize, got %d", len(events))
	}
	if events[0].Width != 1000 || events[0].Height != 700 {
		t.Fatalf("expected newest size, got %dx%d", events[0].Width, events[0].Height)
	}
	if w, h := tr.Size(); w != 1000 || h != 700 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

func TestTrackerReportsScaleChange(t *testing.T) {
	var tr Tracker
	tr.Observe(800, 600, 1)
	tr.Drain()
	tr.Observe(1600, 1200, 2)
	events := tr.Drain()
	if len(events) != 2 || events[0].Type != EventDPIChanged || events[1].Type != EventResize {
		t.Fatalf("unexpected events: %#v", events)
	}
	if tr.Scale() != 2 {
		t.Fatalf("unexpected scale %v", tr.Scale())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventResize.String() != "resize" || EventType(99).String() != "unknown" {
		t.Fatal("unexpected event names")
	}
}
