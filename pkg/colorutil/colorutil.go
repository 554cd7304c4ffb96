// Package colorutil provides shared color utilities for the ship editor.
package colorutil

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// RGB is a 3-channel color with 0-255 channels, the style unit used by
// shape layers. It carries no alpha; layers are always fully opaque.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewRGB creates an RGB from individual channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// ToRGBA converts to a standard library color with full opacity.
func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Lighten returns a perceptually lightened copy, used for highlighting the
// selected layer. amount is in [0,1]; 0 returns the color unchanged.
func (c RGB) Lighten(amount float64) RGB {
	h, s, l := c.colorful().Hsl()
	l += (1 - l) * amount
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
