package headless

import (
	"testing"

	"aspectmask/internal/platform"
)

func TestWindowReportsScriptedResizes(t *testing.T) {
	w := New(platform.WindowConfig{Title: "test", WidthPx: 780, HeightPx: 624})
	events := w.PollEvents()
	if len(events) != 1 || events[0].Type != platform.EventResize {
		t.Fatalf("expected initial resize, got %#v", events)
	}

	w.Resize(780, 624)
	if events := w.PollEvents(); len(events) != 0 {
		t.Fatalf("unchanged size produced events: %#v", events)
	}

	w.Resize(1920, 1080)
	events = w.PollEvents()
	if len(events) != 1 || events[0].Width != 1920 || events[0].Height != 1080 {
		t.Fatalf("unexpected events: %#v", events)
	}
	if width, height := w.SizePx(); width != 1920 || height != 1080 {
		t.Fatalf("unexpected size %dx%d", width, height)
	}
}

func TestWindowClose(t *testing.T) {
	w := New(platform.WindowConfig{WidthPx: 10, HeightPx: 10})
	w.SetTitle("renamed")
	if w.Title() != "renamed" {
		t.Fatalf("unexpected title %q", w.Title())
	}
	w.Close()
	events := w.PollEvents()
	if len(events) != 1 || events[0].Type != platform.EventClose {
		t.Fatalf("expected close event, got %#v", events)
	}
}

func TestWindowScaleChange(t *testing.T) {
	w := New(platform.WindowConfig{WidthPx: 800, HeightPx: 600})
	w.PollEvents()

	w.SetScale(2)
	events := w.PollEvents()
	if len(events) != 1 || events[0].Type != platform.EventDPIChanged || events[0].Scale != 2 {
		t.Fatalf("expected dpi change, got %#v", events)
	}
	if w.Scale() != 2 {
		t.Fatalf("unexpected scale %v", w.Scale())
	}
	if width, height := w.SizePx(); width != 800 || height != 600 {
		t.Fatalf("scale change moved size to %dx%d", width, height)
	}
}
