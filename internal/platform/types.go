package platform

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
	Fullscreen  bool
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventDPIChanged
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	case EventDPIChanged:
		return "dpi-changed"
	}
	return "unknown"
}

// Event is a window notification. Width and Height are physical pixels.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Scale  float32
}

type Window interface {
	PollEvents() []Event
	SizePx() (int, int)
	Scale() float32
	SetTitle(title string)
	Close()
}

// Tracker turns a stream of observed sizes into resize and DPI events,
// emitting one only when the value actually changes. Backends embed it.
type Tracker struct {
	w       int
	h       int
	scale   float32
	seen    bool
	pending []Event
}

// Observe records the current size and device scale.
func (t *Tracker) Observe(w, h int, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	if t.seen && scale != t.scale {
		t.pending = append(t.pending, Event{Type: EventDPIChanged, Width: w, Height: h, Scale: scale})
	}
	if !t.seen || w != t.w || h != t.h {
		t.pending = coalesceResize(t.pending, Event{Type: EventResize, Width: w, Height: h, Scale: scale})
	}
	t.w, t.h, t.scale, t.seen = w, h, scale, true
}

func (t *Tracker) Push(ev Event) {
	t.pending = append(t.pending, ev)
}

// Drain returns and clears the pending events.
func (t *Tracker) Drain() []Event {
	if len(t.pending) == 0 {
		return nil
	}
	out := t.pending
	t.pending = nil
	return out
}

func (t *Tracker) Size() (int, int) { return t.w, t.h }

func (t *Tracker) Scale() float32 {
	if t.scale <= 0 {
		return 1
	}
	return t.scale
}

// coalesceResize keeps only the newest pending resize.
func coalesceResize(events []Event, ev Event) []Event {
	for i := range events {
		if events[i].Type == EventResize {
			events = append(events[:i], events[i+1:]...)
			break
		}
	}
	return append(events, ev)
}
