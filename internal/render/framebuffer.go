package render

import (
	"image/color"
	"math"
)

// FrameBuffer is a CPU-side RGBA surface that gets uploaded to the GPU in one
// WritePixels call.
type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA, premultiplied
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

// Resize reallocates only when the dimensions change. It reports whether the
// buffer was replaced; a replaced buffer is fully transparent.
func (fb *FrameBuffer) Resize(w, h int) bool {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w == fb.W && h == fb.H {
		return false
	}
	fb.W, fb.H = w, h
	fb.Pixels = make([]uint8, w*h*4)
	return true
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > fb.W {
		w = fb.W - x
	}
	if y+h > fb.H {
		h = fb.H - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		off := ((y+row)*fb.W + x) * 4
		for col := 0; col < w; col++ {
			idx := off + col*4
			fb.Pixels[idx+0] = c.R
			fb.Pixels[idx+1] = c.G
			fb.Pixels[idx+2] = c.B
			fb.Pixels[idx+3] = c.A
		}
	}
}

// FillRectF fills a rect given in fractional pixels. Both edges are rounded
// independently, so rects that share an edge never leave a seam or overlap.
func (fb *FrameBuffer) FillRectF(x, y, w, h float64, c color.RGBA) {
	if !(w > 0) || !(h > 0) {
		return
	}
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	fb.FillRect(x0, y0, x1-x0, y1-y0, c)
}

// At returns the pixel at x, y, or transparent black outside the buffer.
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	idx := (y*fb.W + x) * 4
	return color.RGBA{R: fb.Pixels[idx], G: fb.Pixels[idx+1], B: fb.Pixels[idx+2], A: fb.Pixels[idx+3]}
}
