package aspectmask

import (
	"image/color"
	"math"

	"aspectmask/internal/render"
)

// RasterizeMask paints the current bars into fb, resizing it to the window
// first. Everything outside the bars is left transparent.
func (p *Plugin) RasterizeMask(fb *render.FrameBuffer) {
	w := int(math.Ceil(p.fit.Window.Width))
	h := int(math.Ceil(p.fit.Window.Height))
	if !fb.Resize(w, h) {
		fb.Clear(color.RGBA{})
	}
	for _, b := range p.Layout() {
		if b.Node == p.maskLayer || !p.IsMaskNode(b.Node) || b.Node.Background == nil {
			continue
		}
		c := color.RGBAModel.Convert(b.Node.Background).(color.RGBA)
		fb.FillRectF(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, c)
	}
}
