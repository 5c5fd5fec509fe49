package aspectmask

import (
	"errors"
	"fmt"
	"image/color"
	"log"
)

var (
	ErrInvalidResolution = errors.New("aspectmask: invalid resolution")
	ErrInvalidMask       = errors.New("aspectmask: invalid mask")
)

// Mask styles the bars painted outside the design area.
type Mask struct {
	Color color.RGBA
}

// DefaultMask paints bars in tailwind gray-950.
func DefaultMask() Mask {
	return Mask{Color: color.RGBA{0x03, 0x07, 0x12, 0xFF}}
}

func (m Mask) Validate() error {
	if m.Color.A == 0 {
		return fmt.Errorf("%w: color %#v is fully transparent", ErrInvalidMask, m.Color)
	}
	return nil
}

type Options struct {
	Resolution Resolution
	Mask       Mask
	// Logger receives one line per applied resize. Nil disables logging.
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Resolution: DefaultResolution(),
		Mask:       DefaultMask(),
	}
}

func (o Options) Validate() error {
	if err := o.Resolution.Validate(); err != nil {
		return err
	}
	if err := o.Mask.Validate(); err != nil {
		return err
	}
	return nil
}
