package ui

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontKey struct {
	// px is the face size in 1/100 pixel so nearby scales share a face.
	px   int
	bold bool
}

// FontBank caches faces per pixel size. HUD text is re-rasterized at the
// current UI scale instead of being stretched.
type FontBank struct {
	regular *opentype.Font
	bold    *opentype.Font
	cache   map[fontKey]font.Face
}

// NewFontBank loads the Go fonts. The bank is always usable; on error it
// serves the basic bitmap face and the error says why.
func NewFontBank() (*FontBank, error) {
	return newFontBank(goregular.TTF, gobold.TTF)
}

func newFontBank(regular, bold []byte) (*FontBank, error) {
	bank := &FontBank{cache: map[fontKey]font.Face{}}
	reg, err := opentype.Parse(regular)
	if err != nil {
		return bank, fmt.Errorf("parse regular hud font: %w", err)
	}
	bol, err := opentype.Parse(bold)
	if err != nil {
		return bank, fmt.Errorf("parse bold hud font: %w", err)
	}
	bank.regular = reg
	bank.bold = bol
	return bank, nil
}

// Face returns a face for sizePx window pixels. It falls back to the basic
// bitmap face when the Go fonts could not be parsed.
func (b *FontBank) Face(sizePx float64, bold bool) font.Face {
	if sizePx < 1 {
		sizePx = 1
	}
	key := fontKey{px: int(math.Round(sizePx * 100)), bold: bold}
	if f, ok := b.cache[key]; ok {
		return f
	}
	base := b.regular
	if bold {
		base = b.bold
	}
	if base == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(base, &opentype.FaceOptions{Size: float64(key.px) / 100, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[key] = face
	return face
}

// Purge drops every cached face. Called after large scale changes so stale
// sizes do not pile up.
func (b *FontBank) Purge() {
	b.cache = map[fontKey]font.Face{}
}

func (b *FontBank) Len() int { return len(b.cache) }

// MeasureString returns the advance width of s in whole pixels.
func MeasureString(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	adv := font.MeasureString(face, s)
	px := (int(adv) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}
