package convert

import (
	"math"
	"testing"

	"github.com/ironsheep/munsell-tools-mcp/internal/munsell"
)

func mustParse(t *testing.T, spec string) munsell.Color {
	t.Helper()
	c, err := munsell.Parse(spec)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", spec, err)
	}
	return c
}

func TestToHex_Extremes(t *testing.T) {
	if got := ToHex(munsell.Black()); got != "#000000" {
		t.Errorf("Black: got %s, want #000000", got)
	}
	if got := ToHex(munsell.White()); got != "#ffffff" {
		t.Errorf("White: got %s, want #ffffff", got)
	}
}

func TestToRGB_NeutralIsGray(t *testing.T) {
	for _, spec := range []string{"N 2", "N 4.5", "N 7", "N 9.5"} {
		t.Run(spec, func(t *testing.T) {
			r, g, b := ToRGB(mustParse(t, spec))
			if absDiff(r, g) > 1 || absDiff(g, b) > 1 {
				t.Errorf("neutral %s is not gray: (%d,%d,%d)", spec, r, g, b)
			}
		})
	}
}

func TestToRGB_LightnessIsMonotonic(t *testing.T) {
	prev := -1
	for _, spec := range []string{"N 0.0", "N 2.0", "N 4.0", "N 6.0", "N 8.0", "N 10.0"} {
		r, _, _ := ToRGB(mustParse(t, spec))
		if int(r) <= prev {
			t.Fatalf("lightness not increasing at %s: %d <= %d", spec, r, prev)
		}
		prev = int(r)
	}
}

func TestFromHex_Extremes(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#000000", "N 0.0"},
		{"#ffffff", "N 10.0"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := FromHex(tt.hex)
			if err != nil {
				t.Fatalf("FromHex failed: %v", err)
			}
			if got := c.Code(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromHex_GrayIsNeutral(t *testing.T) {
	c, err := FromHex("#808080")
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if !c.IsNeutral() {
		t.Errorf("mid gray is not neutral: %s", c.Code())
	}
	if c.Value() < 4 || c.Value() > 7 {
		t.Errorf("mid gray value out of range: %v", c.Value())
	}
}

func TestFromHex_Invalid(t *testing.T) {
	for _, hex := range []string{"", "808080", "#80808", "#gggggg"} {
		if _, err := FromHex(hex); err == nil {
			t.Errorf("FromHex(%q) succeeded, want error", hex)
		}
	}
}

// An in-gamut chromatic color survives a round trip through sRGB with its
// variant, family, and value intact.
func TestRoundTrip_InGamut(t *testing.T) {
	orig := mustParse(t, "5R 5/6")

	back, err := FromHex(ToHex(orig))
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if !back.IsChromatic() {
		t.Fatalf("round trip lost chroma: %s", back.Code())
	}
	if back.Family() != "R" {
		t.Errorf("family: got %s, want R", back.Family())
	}
	if math.Abs(back.Value()-orig.Value()) > 0.2 {
		t.Errorf("value drifted: got %v, want %v", back.Value(), orig.Value())
	}
	if math.Abs(back.Chroma()-orig.Chroma()) > 1 {
		t.Errorf("chroma drifted: got %v, want %v", back.Chroma(), orig.Chroma())
	}
}

func TestLstarFromValue_Endpoints(t *testing.T) {
	if got := lstarFromValue(0); got != 0 {
		t.Errorf("lstarFromValue(0) = %v, want 0", got)
	}
	if got := lstarFromValue(10); math.Abs(got-100) > 0.01 {
		t.Errorf("lstarFromValue(10) = %v, want 100", got)
	}
}

func TestValueFromLstar_InvertsPolynomial(t *testing.T) {
	for v := 0.5; v <= 9.5; v += 0.5 {
		got := valueFromLstar(lstarFromValue(v))
		if math.Abs(got-v) > 0.001 {
			t.Fatalf("valueFromLstar(lstarFromValue(%v)) = %v", v, got)
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
