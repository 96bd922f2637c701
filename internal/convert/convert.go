package convert

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/munsell-tools-mcp/internal/munsell"
)

// hueOffset aligns the linear Munsell hue circle with the Lab hue angle so
// that 5R sits near the CIELAB red axis (~28 degrees).
const hueOffset = 10.0

// chromaScale converts Munsell chroma to C*ab. One Munsell chroma step is
// roughly five units of C*ab.
const chromaScale = 5.0

// ToColorful maps a Munsell color to an sRGB color, clamped into gamut.
func ToColorful(c munsell.Color) colorful.Color {
	l := lstarFromValue(c.Value()) / 100
	if c.IsNeutral() {
		return colorful.Hcl(0, 0, l).Clamped()
	}
	h := math.Mod(c.Degree()*3.6+hueOffset, 360)
	return colorful.Hcl(h, c.Chroma()*chromaScale/100, l).Clamped()
}

// ToHex returns the color as a lowercase "#rrggbb" string.
func ToHex(c munsell.Color) string {
	return ToColorful(c).Hex()
}

// ToRGB returns the color as 8-bit sRGB components.
func ToRGB(c munsell.Color) (r, g, b uint8) {
	return ToColorful(c).RGB255()
}

// FromHex returns the nearest Munsell notation for an sRGB color given as
// "#rrggbb" (or "#rgb"). Fields are snapped to one decimal place; colors
// with negligible chroma come back as neutral.
func FromHex(hex string) (munsell.Color, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return munsell.Color{}, fmt.Errorf("invalid sRGB color %q: %w", hex, err)
	}
	return FromColorful(col), nil
}

// FromColorful returns the nearest Munsell notation for an sRGB color.
func FromColorful(col colorful.Color) munsell.Color {
	h, cc, l := col.Hcl()

	value := math.Round(valueFromLstar(l*100)*10) / 10
	chroma := math.Round(cc*100/chromaScale*10) / 10

	if chroma <= 0 || value <= 0 || value >= 10 {
		if value < 0 {
			value = 0
		}
		if value > 10 {
			value = 10
		}
		c, _ := munsell.New("N", formatField(value), "")
		return c
	}

	deg := math.Mod(h-hueOffset+360, 360) / 3.6
	hue := munsell.Undegree(math.Round(deg*10) / 10)
	c, _ := munsell.New(hue, formatField(value), formatField(chroma))
	return c
}

// lstarFromValue converts a Munsell value in [0, 10] to CIE L* in [0, 100].
// Luminance comes from the ASTM D1535 quintic; the polynomial is exact at
// the endpoints (value 10 gives Y = 100%).
func lstarFromValue(v float64) float64 {
	y := (1.1914*v - 0.22533*v*v + 0.23352*v*v*v -
		0.020484*v*v*v*v + 0.00081939*v*v*v*v*v) / 100
	if y <= 0 {
		return 0
	}
	// CIE Y -> L*
	const eps = 216.0 / 24389.0
	if y > eps {
		return 116*math.Cbrt(y) - 16
	}
	return y * 24389.0 / 27.0
}

// valueFromLstar inverts lstarFromValue by bisection; the polynomial is
// strictly increasing on [0, 10].
func valueFromLstar(lstar float64) float64 {
	if lstar <= 0 {
		return 0
	}
	if lstar >= 100 {
		return 10
	}
	lo, hi := 0.0, 10.0
	for i := 0; i < 50; i++ {
		mid := (lo + hi) / 2
		if lstarFromValue(mid) < lstar {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// formatField renders a one-decimal field for the munsell constructor.
func formatField(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
