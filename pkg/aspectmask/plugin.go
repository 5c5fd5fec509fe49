package aspectmask

import (
	"fmt"
	"log"
)

// Plugin keeps a design resolution on screen. It owns the mask nodes, the
// HUD root and the UI scale, and rewrites all three whenever the window
// size changes.
type Plugin struct {
	opts Options

	stage     *Node
	maskLayer *Node
	masks     [len(Sides)]*Node
	hudParent *Node
	hud       *Node

	fit      FitResult
	applied  bool
	revision uint64
}

// New validates opts and builds the stage tree. Invalid configuration is
// rejected here so per-frame code never sees it.
func New(opts Options) (*Plugin, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("configure aspect mask: %w", err)
	}
	p := &Plugin{opts: opts}
	p.build()
	res := opts.Resolution
	p.apply(Fit(res, WindowSize{Width: res.Width, Height: res.Height}))
	return p, nil
}

func (p *Plugin) build() {
	p.stage = NewNode("Aspect Ratio Stage")
	p.stage.Width, p.stage.Height = Percent(100), Percent(100)

	p.maskLayer = fullSizeNode("Aspect Ratio Mask Parent")
	for i, side := range Sides {
		m := NewNode("Aspect Ratio Mask " + side.String())
		m.Background = p.opts.Mask.Color
		m.Width, m.Height = Px(0), Px(0)
		p.masks[i] = m
		p.maskLayer.Append(m)
	}

	p.hudParent = fullSizeNode("Aspect Ratio Hud Parent")
	p.hud = NewNode("Aspect Ratio Hud")
	p.hud.Width = Px(p.opts.Resolution.Width)
	p.hud.Height = Px(p.opts.Resolution.Height)
	p.hudParent.Append(p.hud)

	p.stage.Append(p.maskLayer, p.hudParent)
}

func fullSizeNode(name string) *Node {
	n := NewNode(name)
	n.Width, n.Height = Percent(100), Percent(100)
	return n
}

// Hud is the root that screen-space UI is attached to. Its children are laid
// out in design units and stay centred inside the content rectangle.
func (p *Plugin) Hud() *Node { return p.hud }

// Stage is the top of the node tree: the mask layer followed by the HUD.
func (p *Plugin) Stage() *Node { return p.stage }

func (p *Plugin) Resolution() Resolution { return p.opts.Resolution }
func (p *Plugin) Mask() Mask             { return p.opts.Mask }
func (p *Plugin) Fit() FitResult         { return p.fit }
func (p *Plugin) UIScale() float64       { return p.fit.Scale }

// Logger returns the configured logger, which may be nil.
func (p *Plugin) Logger() *log.Logger { return p.opts.Logger }

// Revision increments each time a resize is applied.
func (p *Plugin) Revision() uint64 { return p.revision }

func (p *Plugin) MaskNode(side Side) *Node {
	if side < 0 || int(side) >= len(p.masks) {
		return nil
	}
	return p.masks[side]
}

func (p *Plugin) IsMaskNode(n *Node) bool {
	if n == nil {
		return false
	}
	if n == p.maskLayer {
		return true
	}
	for _, m := range p.masks {
		if m == n {
			return true
		}
	}
	return false
}

// Resize handles a window resize notification. Nothing is recomputed when the
// size matches the last applied one; the first call always applies.
func (p *Plugin) Resize(width, height float64) bool {
	win := WindowSize{Width: width, Height: height}
	if p.applied && win == p.fit.Window {
		return false
	}
	p.apply(Fit(p.opts.Resolution, win))
	p.applied = true
	p.revision++
	if p.opts.Logger != nil {
		p.opts.Logger.Printf("aspectmask: window %gx%g design %s %s", width, height, p.opts.Resolution, p.fit)
	}
	return true
}

// apply writes f into the mask nodes and the HUD root. Node lengths are UI
// units, so window pixels are divided by the scale.
func (p *Plugin) apply(f FitResult) {
	s := f.Scale
	for i, side := range Sides {
		r := f.Bar(side)
		m := p.masks[i]
		m.Left, m.Top = Px(r.X/s), Px(r.Y/s)
		m.Width, m.Height = Px(r.W/s), Px(r.H/s)
	}
	p.hud.Left = Px(f.Content.X / s)
	p.hud.Top = Px(f.Content.Y / s)
	p.fit = f
}

// Layout resolves the whole stage into window pixels.
func (p *Plugin) Layout() []Box {
	s := p.fit.Scale
	bounds := Rect{W: p.fit.Window.Width / s, H: p.fit.Window.Height / s}
	return Resolve(p.stage, bounds, s)
}
