package munsell

import (
	"fmt"
	"math"
)

// Degree maps a chromatic hue spec such as "2.5YR" onto the linear hue
// circle: family index × 10 + step, in [0, 100). "10RP" closes the circle
// and maps to 0.
//
// The spec is run through the same validation and normalization as
// construction. This function is for pre-validated input from trusted call
// sites; a malformed or neutral hue spec is a usage-contract violation and
// panics. Use Parse or New when the input may be invalid.
func Degree(hue string) float64 {
	c, err := New(hue, "5", "5")
	if err != nil {
		panic(fmt.Sprintf("munsell: Degree(%q): %v", hue, err))
	}
	if c.IsNeutral() {
		panic(fmt.Sprintf("munsell: Degree(%q): neutral hue has no degree", hue))
	}
	return c.Degree()
}

// Degree returns the color's position on the linear hue circle, in [0, 100).
// It panics when called on a neutral color, which has no hue.
func (c Color) Degree() float64 {
	if c.neutral {
		panic("munsell: Degree of neutral color")
	}
	d := float64(FamilyIndex[c.family])*10 + c.step
	if d == 100 {
		return 0
	}
	return d
}

// Undegree is the inverse of Degree: it maps a degree in [0, 100] back to a
// canonical hue spec with step in (0, 10]. Degrees 0 and 100 both map to
// "10RP". The input is rounded to one decimal first.
//
// A NaN, negative, or greater-than-100 input is a usage-contract violation
// and panics.
func Undegree(degree float64) string {
	if math.IsNaN(degree) || degree < 0 {
		panic(fmt.Sprintf("munsell: Undegree(%v): not a non-negative decimal", degree))
	}
	d := round1(degree)
	if d > 100 {
		panic(fmt.Sprintf("munsell: Undegree(%v): exceeds 100.0", degree))
	}
	if d == 0 || d == 100 {
		return "10RP"
	}
	idx := int(d / 10)
	step := round1(d - float64(idx)*10)
	if step == 0 {
		// Exact multiples of 10 are step 10 on the preceding family,
		// never step 0; mirrors the rollback applied at construction.
		idx--
		step = 10
	}
	return minimal(step) + Families[idx]
}
