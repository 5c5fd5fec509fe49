// Package ebitenwin adapts the Ebitengine window to platform.Window. Ebiten
// has no resize callback; the size arrives through Game.Layout every frame and
// is fed in with Observe.
package ebitenwin

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"aspectmask/internal/platform"
)

type Window struct {
	events    platform.Tracker
	closeSent bool
}

// Open applies cfg to the Ebitengine window. It must run before RunGame.
func Open(cfg platform.WindowConfig) *Window {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.WidthPx > 0 && cfg.HeightPx > 0 {
		ebiten.SetWindowSize(cfg.WidthPx, cfg.HeightPx)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.MinWidthPx > 0 || cfg.MinHeightPx > 0 {
		ebiten.SetWindowSizeLimits(cfg.MinWidthPx, cfg.MinHeightPx, -1, -1)
	}
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	return &Window{}
}

// Observe converts the logical outside size reported to Layout into physical
// pixels and returns them.
func (w *Window) Observe(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Ceil(float64(outsideWidth) * scale))
	ph := int(math.Ceil(float64(outsideHeight) * scale))
	w.events.Observe(pw, ph, float32(scale))
	return pw, ph
}

func (w *Window) PollEvents() []platform.Event {
	if ebiten.IsWindowBeingClosed() && !w.closeSent {
		w.closeSent = true
		w.events.Push(platform.Event{Type: platform.EventClose})
	}
	return w.events.Drain()
}

func (w *Window) SizePx() (int, int)    { return w.events.Size() }
func (w *Window) Scale() float32        { return w.events.Scale() }
func (w *Window) SetTitle(title string) { ebiten.SetWindowTitle(title) }

// Close queues an EventClose so the game loop ends on the next Update.
func (w *Window) Close() {
	if w.closeSent {
		return
	}
	w.closeSent = true
	w.events.Push(platform.Event{Type: platform.EventClose})
}
