// Package headless is a window without a display. Sizes are set by the
// caller, which makes it suitable for tests and offline tooling.
package headless

import (
	"aspectmask/internal/platform"
)

type Window struct {
	title  string
	closed bool
	events platform.Tracker
}

func New(cfg platform.WindowConfig) *Window {
	w := &Window{title: cfg.Title}
	w.events.Observe(cfg.WidthPx, cfg.HeightPx, 1)
	return w
}

// Resize simulates the user dragging the window edge.
func (w *Window) Resize(width, height int) {
	w.events.Observe(width, height, w.events.Scale())
}

func (w *Window) SetScale(scale float32) {
	width, height := w.events.Size()
	w.events.Observe(width, height, scale)
}

func (w *Window) PollEvents() []platform.Event {
	if w.closed {
		return []platform.Event{{Type: platform.EventClose}}
	}
	return w.events.Drain()
}

func (w *Window) SizePx() (int, int)    { return w.events.Size() }
func (w *Window) Scale() float32        { return w.events.Scale() }
func (w *Window) Title() string         { return w.title }
func (w *Window) SetTitle(title string) { w.title = title }
func (w *Window) Close()                { w.closed = true }
