package ui

import "image/color"

type Theme struct {
	WorldClear color.RGBA
	HudText    color.RGBA
	StatusText color.RGBA
	Accent     color.RGBA
	// FontSize is the HUD text size in design units.
	FontSize float64
}

func DefaultTheme() Theme {
	return Theme{
		WorldClear: color.RGBA{0x2B, 0x2B, 0x2B, 0xFF},
		HudText:    color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		StatusText: color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		Accent:     color.RGBA{0xFF, 0xA5, 0x00, 0xFF},
		FontSize:   20,
	}
}
