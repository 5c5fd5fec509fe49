package aspectmask

import (
	"image/color"
	"testing"

	"aspectmask/internal/render"
)

func TestRasterizeMaskPaintsOnlyBars(t *testing.T) {
	opts := DefaultOptions()
	opts.Resolution = Resolution{Width: 600, Height: 480}
	opts.Mask.Color = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	p, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	p.Resize(780, 480)

	fb := render.NewFrameBuffer(1, 1)
	p.RasterizeMask(fb)
	if fb.W != 780 || fb.H != 480 {
		t.Fatalf("framebuffer not resized: %dx%d", fb.W, fb.H)
	}
	for _, x := range []int{0, 89, 690, 779} {
		if got := fb.At(x, 240); got != opts.Mask.Color {
			t.Fatalf("x=%d: expected mask color, got %#v", x, got)
		}
	}
	for _, x := range []int{90, 390, 689} {
		if got := fb.At(x, 240); got.A != 0 {
			t.Fatalf("x=%d: content area painted %#v", x, got)
		}
	}
}

func TestRasterizeMaskClearsPreviousBars(t *testing.T) {
	square := newTestPlugin(t, Resolution{Width: 100, Height: 100})
	wide := newTestPlugin(t, Resolution{Width: 400, Height: 100})
	fb := render.NewFrameBuffer(1, 1)

	square.Resize(200, 100)
	square.RasterizeMask(fb)
	if fb.At(10, 50).A == 0 {
		t.Fatal("expected left bar")
	}

	// Same window size, so the buffer is reused and must be cleared.
	wide.Resize(200, 100)
	wide.RasterizeMask(fb)
	if fb.At(10, 50).A != 0 {
		t.Fatal("stale pixels in the content area")
	}
	if fb.At(10, 10).A == 0 || fb.At(10, 90).A == 0 {
		t.Fatal("expected top and bottom bars")
	}
}
