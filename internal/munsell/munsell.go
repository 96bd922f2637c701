package munsell

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Families lists the ten chromatic hue families in circular order. The
// successor of RP wraps around to R.
var Families = []string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

// FamilyIndex maps each family code to its position (0-9) in Families.
var FamilyIndex = map[string]int{
	"R": 0, "YR": 1, "Y": 2, "GY": 3, "G": 4,
	"BG": 5, "B": 6, "PB": 7, "P": 8, "RP": 9,
}

// Two-letter family codes are listed before their one-letter prefixes so the
// alternation matches "YR" rather than stopping at "Y".
var (
	hueRe     = regexp.MustCompile(`^([0-9]*\.?[0-9]+)(YR|GY|BG|PB|RP|R|Y|G|B|P)$`)
	decimalRe = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)
)

// Color is an immutable Munsell color: either the neutral variant (value
// only) or the chromatic variant (family, step, value, chroma). The zero
// Color is pure black, "N 0.0".
//
// All numeric fields are stored rounded to one decimal place. Colors are
// plain values with no interior mutability and may be copied and shared
// freely across goroutines.
type Color struct {
	neutral bool
	family  string
	step    float64
	value   float64
	chroma  float64
}

// White returns pure white, "N 10.0".
func White() Color { return Color{neutral: true, value: 10} }

// Black returns pure black, "N 0.0".
func Black() Color { return Color{neutral: true} }

// NearWhite returns the lightest near-white gray, "N 9.5".
func NearWhite() Color { return Color{neutral: true, value: 9.5} }

// NearBlack returns the darkest near-black gray, "N 1.0".
func NearBlack() Color { return Color{neutral: true, value: 1} }

// Parse constructs a Color from a combined spec string such as
// "9R 5.5/14" or "N 4.5". Tokens are separated by spaces and/or "/" in the
// order hue, value, chroma; the chroma token is ignored for neutral specs.
//
// On failure the returned error is a *ParseError and no Color is produced.
func Parse(spec string) (Color, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '/'
	})

	var hue, value, chroma string
	if len(fields) > 0 {
		hue = fields[0]
	}
	if len(fields) > 1 {
		value = fields[1]
	}
	if len(fields) > 2 {
		chroma = fields[2]
	}
	return New(hue, value, chroma)
}

// New constructs a Color from discrete fields. The hue spec is either the
// neutral marker "N" or "<step><family>" (e.g. "2.5GY"), case-insensitive.
// Value and chroma are decimal strings; an empty string means the field was
// not supplied. Chroma is required only when the hue spec is chromatic.
//
// On failure the returned error is a *ParseError and no Color is produced.
func New(hue, value, chroma string) (Color, error) {
	if hue == "" {
		return Color{}, undefinedErr(FieldHue)
	}

	var (
		neutral bool
		family  string
		step    float64
	)
	h := strings.ToUpper(hue)
	if h == "N" {
		neutral = true
	} else {
		m := hueRe.FindStringSubmatch(h)
		if m == nil {
			return Color{}, formatErr(FieldHue, hue)
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Color{}, formatErr(FieldHue, hue)
		}
		step = round1(n)
		if step > 10 {
			return Color{}, rangeErr(FieldHue, m[1])
		}
		family = m[2]
		if step == 0 {
			// Step 0 on a family is step 10 on its circular predecessor.
			family = Families[(FamilyIndex[family]+9)%10]
			step = 10
		}
	}

	if value == "" {
		return Color{}, undefinedErr(FieldValue)
	}
	if !decimalRe.MatchString(value) {
		return Color{}, formatErr(FieldValue, value)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Color{}, formatErr(FieldValue, value)
	}
	v = round1(v)
	if v > 10 {
		return Color{}, rangeErr(FieldValue, value)
	}
	// Absolute black and white carry no hue.
	if v == 0 || v == 10 {
		neutral = true
	}

	if neutral {
		return Color{neutral: true, value: v}, nil
	}

	if chroma == "" {
		return Color{}, undefinedErr(FieldChroma)
	}
	if !decimalRe.MatchString(chroma) {
		return Color{}, formatErr(FieldChroma, chroma)
	}
	c, err := strconv.ParseFloat(chroma, 64)
	if err != nil {
		return Color{}, formatErr(FieldChroma, chroma)
	}
	c = round1(c)
	if c == 0 {
		return Color{neutral: true, value: v}, nil
	}

	return Color{family: family, step: step, value: v, chroma: c}, nil
}

// IsNeutral reports whether the color is the neutral (gray) variant.
func (c Color) IsNeutral() bool { return c.neutral }

// IsChromatic reports whether the color carries a hue and chroma.
func (c Color) IsChromatic() bool { return !c.neutral }

// IsNearBlack reports whether the value is at most 1.0.
func (c Color) IsNearBlack() bool { return c.value <= 1.0 }

// IsNearWhite reports whether the value is at least 9.5.
func (c Color) IsNearWhite() bool { return c.value >= 9.5 }

// Family returns the hue family code, or "" for a neutral color.
func (c Color) Family() string { return c.family }

// Step returns the hue step in (0, 10], or 0 for a neutral color.
func (c Color) Step() float64 { return c.step }

// Value returns the lightness in [0, 10].
func (c Color) Value() float64 { return c.value }

// Chroma returns the saturation magnitude, or 0 for a neutral color.
func (c Color) Chroma() float64 { return c.chroma }

// Hue returns the canonical hue spec: "<step><family>" in minimal numeric
// form for a chromatic color, "N" for a neutral one.
func (c Color) Hue() string {
	if c.neutral {
		return "N"
	}
	return minimal(c.step) + c.family
}

// Code returns the canonical notation: "N <value>" with exactly one decimal
// for neutral colors, "<step><family> <value>/<chroma>" with minimal numeric
// form (no trailing ".0") for chromatic ones.
func (c Color) Code() string {
	if c.neutral {
		return fmt.Sprintf("N %.1f", c.value)
	}
	return fmt.Sprintf("%s%s %s/%s", minimal(c.step), c.family, minimal(c.value), minimal(c.chroma))
}

// String returns Code().
func (c Color) String() string { return c.Code() }

// round1 rounds to one decimal place, ties away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// minimal renders a one-decimal number without a superfluous ".0".
func minimal(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
