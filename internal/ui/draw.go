package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"aspectmask/pkg/aspectmask"
)

// DrawBoxes paints laid out nodes in order: background first, then text.
// Boxes for which skip returns true are left out.
func DrawBoxes(screen *ebiten.Image, boxes []aspectmask.Box, fonts *FontBank, skip func(*aspectmask.Node) bool) {
	for _, b := range boxes {
		if skip != nil && skip(b.Node) {
			continue
		}
		if b.Node.Background != nil && !b.Rect.Empty() {
			vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), b.Node.Background, false)
		}
		if b.Node.Text != "" {
			drawText(screen, b, fonts)
		}
	}
}

func drawText(screen *ebiten.Image, b aspectmask.Box, fonts *FontBank) {
	face := fonts.Face(b.FontPx, false)
	m := face.Metrics()
	lineH := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	var clr color.Color = color.White
	if b.Node.TextColor != nil {
		clr = b.Node.TextColor
	}

	y := int(b.Rect.Y) + ascent
	for _, line := range strings.Split(b.Node.Text, "\n") {
		if line != "" {
			x := int(b.Rect.X)
			switch b.Node.Align {
			case aspectmask.AlignCenter:
				x += (int(b.Rect.W) - MeasureString(face, line)) / 2
			case aspectmask.AlignEnd:
				x += int(b.Rect.W) - MeasureString(face, line)
			}
			text.Draw(screen, line, face, x, y, clr)
		}
		y += lineH
	}
}
