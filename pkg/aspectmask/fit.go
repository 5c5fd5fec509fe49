package aspectmask

import (
	"fmt"
	"math"
)

// MinScale is the smallest scale Fit ever reports. Degenerate window sizes
// clamp to it instead of collapsing the UI to zero.
const MinScale = 1e-4

// Resolution is the fixed design resolution content is authored against.
type Resolution struct {
	Width  float64
	Height float64
}

func DefaultResolution() Resolution {
	return Resolution{Width: 960, Height: 540}
}

func (r Resolution) Validate() error {
	if !positiveFinite(r.Width) || !positiveFinite(r.Height) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidResolution, r.Width, r.Height)
	}
	return nil
}

func (r Resolution) Aspect() float64 {
	return r.Width / r.Height
}

func (r Resolution) String() string {
	return fmt.Sprintf("%gx%g", r.Width, r.Height)
}

// WindowSize is the observed window size in physical pixels.
type WindowSize struct {
	Width  float64
	Height float64
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Max returns the bottom-right corner.
func (r Rect) Max() (float64, float64) {
	return r.X + r.W, r.Y + r.H
}

type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Sides lists every mask side in spawn order.
var Sides = [...]Side{SideLeft, SideRight, SideTop, SideBottom}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Axis reports which pair of bars carries the padding.
type Axis int

const (
	AxisNone       Axis = iota // window aspect matches the design
	AxisHorizontal             // left and right bars (pillarbox)
	AxisVertical               // top and bottom bars (letterbox)
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	}
	return "none"
}

type FitResult struct {
	Scale     float64
	BarTop    float64
	BarBottom float64
	BarLeft   float64
	BarRight  float64
	Content   Rect
	Window    WindowSize
}

// Fit scales res uniformly into win, fitting the constraining dimension and
// padding the other one symmetrically.
func Fit(res Resolution, win WindowSize) FitResult {
	sx := win.Width / res.Width
	sy := win.Height / res.Height

	scale := math.Min(sx, sy)
	if !(scale > MinScale) {
		scale = MinScale
	}

	f := FitResult{Scale: scale, Window: win}
	if sx <= sy {
		// Width constrains; the horizontal bars stay exactly zero.
		pad := orZero((win.Height - res.Height*scale) / 2)
		f.BarTop, f.BarBottom = pad, pad
	} else {
		pad := orZero((win.Width - res.Width*scale) / 2)
		f.BarLeft, f.BarRight = pad, pad
	}

	f.Content = Rect{
		X: f.BarLeft,
		Y: f.BarTop,
		W: orZero(win.Width - f.BarLeft - f.BarRight),
		H: orZero(win.Height - f.BarTop - f.BarBottom),
	}
	return f
}

// Bar returns the geometry of one mask bar in window pixels. Left and right
// bars span the full window height, top and bottom bars the full width.
func (f FitResult) Bar(side Side) Rect {
	w, h := orZero(f.Window.Width), orZero(f.Window.Height)
	switch side {
	case SideLeft:
		return Rect{X: 0, Y: 0, W: f.BarLeft, H: h}
	case SideRight:
		return Rect{X: w - f.BarRight, Y: 0, W: f.BarRight, H: h}
	case SideTop:
		return Rect{X: 0, Y: 0, W: w, H: f.BarTop}
	case SideBottom:
		return Rect{X: 0, Y: h - f.BarBottom, W: w, H: f.BarBottom}
	}
	return Rect{}
}

func (f FitResult) PaddedAxis() Axis {
	switch {
	case f.BarLeft+f.BarRight > 0:
		return AxisHorizontal
	case f.BarTop+f.BarBottom > 0:
		return AxisVertical
	}
	return AxisNone
}

// WindowToDesign maps a window point into design coordinates. ok is false
// when the point falls on a bar.
func (f FitResult) WindowToDesign(x, y float64) (float64, float64, bool) {
	dx := (x - f.Content.X) / f.Scale
	dy := (y - f.Content.Y) / f.Scale
	return dx, dy, f.Content.Contains(x, y)
}

func (f FitResult) DesignToWindow(x, y float64) (float64, float64) {
	return f.Content.X + x*f.Scale, f.Content.Y + y*f.Scale
}

func (f FitResult) String() string {
	return fmt.Sprintf("scale=%.4f bars(l=%.1f r=%.1f t=%.1f b=%.1f) content=%.0fx%.0f@%.0f,%.0f",
		f.Scale, f.BarLeft, f.BarRight, f.BarTop, f.BarBottom, f.Content.W, f.Content.H, f.Content.X, f.Content.Y)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// orZero maps negative, NaN and infinite lengths to zero.
func orZero(v float64) float64 {
	if !positiveFinite(v) {
		return 0
	}
	return v
}
