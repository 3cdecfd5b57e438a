package svg

import (
	"image/color"
	"math"
	"strconv"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Colors are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA, undoing the
// alpha premultiplication of the color.Color contract.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

// Hex parses a CSS-style hex color. Supported forms are "RGB", "RGBA",
// "RRGGBB" and "RRGGBBAA", with or without a leading '#'. Malformed
// input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	var digits []uint64
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Black
			}
			digits = append(digits, v*17)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return Black
			}
			digits = append(digits, v)
		}
	default:
		return Black
	}
	if len(digits) == 3 {
		digits = append(digits, 255)
	}
	return RGBA{
		R: float64(digits[0]) / 255,
		G: float64(digits[1]) / 255,
		B: float64(digits[2]) / 255,
		A: float64(digits[3]) / 255,
	}
}

// WithAlpha returns a copy of the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// css renders the opaque part of the color as rgb(r,g,b).
func (c RGBA) css() string {
	b := make([]byte, 0, 20)
	b = append(b, "rgb("...)
	b = strconv.AppendUint(b, uint64(channel8(c.R)), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(channel8(c.G)), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(channel8(c.B)), 10)
	b = append(b, ')')
	return string(b)
}

// channel8 maps a [0,1] component to a rounded, clamped byte.
func channel8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Gray        = RGB(0.5, 0.5, 0.5)
	Transparent = RGBA2(0, 0, 0, 0)
)
