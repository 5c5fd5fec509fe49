package aspectmask

import (
	"image/color"

	"github.com/google/uuid"
)

// DefaultFontSize is the text size, in UI units, of nodes that leave
// FontSize unset.
const DefaultFontSize = 20

type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
)

// Val is a length in UI units, either absolute or relative to the parent.
type Val struct {
	Unit  Unit
	Value float64
}

var Auto = Val{}

func Px(v float64) Val      { return Val{Unit: UnitPx, Value: v} }
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Resolve converts v against the parent length. Auto resolves to fallback.
func (v Val) Resolve(parent, fallback float64) float64 {
	switch v.Unit {
	case UnitPx:
		return v.Value
	case UnitPercent:
		return parent * v.Value / 100
	}
	return fallback
}

type TextAlign int

const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

// Node is an absolutely positioned UI element. All lengths are in UI units;
// the plugin's UI scale maps them to window pixels.
type Node struct {
	ID   uuid.UUID
	Name string

	Left   Val
	Top    Val
	Width  Val
	Height Val

	// Background is not painted when nil.
	Background color.Color
	Text       string
	TextColor  color.Color
	FontSize   float64
	Align      TextAlign
	Hidden     bool

	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{ID: uuid.New(), Name: name}
}

// Append parents children under n and returns n for chaining. A child that
// already has a parent is moved.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) Parent() *Node { return n.parent }

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

func (n *Node) Find(id uuid.UUID) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

func (n *Node) fontSize() float64 {
	if n.FontSize > 0 {
		return n.FontSize
	}
	return DefaultFontSize
}

// Box is a laid out node. Rect is in window pixels; FontPx is the text size
// in window pixels.
type Box struct {
	Node   *Node
	Rect   Rect
	FontPx float64
	Depth  int
}

// Resolve lays out root inside bounds, given in UI units, and returns the
// visible boxes in paint order. scale maps UI units to window pixels.
func Resolve(root *Node, bounds Rect, scale float64) []Box {
	if root == nil {
		return nil
	}
	var boxes []Box
	resolveInto(&boxes, root, bounds, scale, 0)
	return boxes
}

func resolveInto(out *[]Box, n *Node, parent Rect, scale float64, depth int) {
	if n.Hidden {
		return
	}
	left := n.Left.Resolve(parent.W, 0)
	top := n.Top.Resolve(parent.H, 0)
	r := Rect{
		X: parent.X + left,
		Y: parent.Y + top,
		W: n.Width.Resolve(parent.W, parent.W-left),
		H: n.Height.Resolve(parent.H, parent.H-top),
	}
	*out = append(*out, Box{
		Node:   n,
		Rect:   Rect{X: r.X * scale, Y: r.Y * scale, W: r.W * scale, H: r.H * scale},
		FontPx: n.fontSize() * scale,
		Depth:  depth,
	})
	for _, c := range n.children {
		resolveInto(out, c, r, scale, depth+1)
	}
}
