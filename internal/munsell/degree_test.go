package munsell

import (
	"fmt"
	"math"
	"testing"
)

func TestDegree(t *testing.T) {
	tests := []struct {
		hue  string
		want float64
	}{
		{"5R", 5},
		{"10R", 10},
		{"2.5YR", 12.5},
		{"5Y", 25},
		{"10GY", 40},
		{"5BG", 55},
		{"7.5PB", 77.5},
		{"5RP", 95},
		{"10RP", 0}, // wraparound point coincides with the origin
		{"0R", 0},   // normalizes to 10RP first
	}

	for _, tt := range tests {
		t.Run(tt.hue, func(t *testing.T) {
			if got := Degree(tt.hue); got != tt.want {
				t.Errorf("Degree(%q) = %v, want %v", tt.hue, got, tt.want)
			}
		})
	}
}

func TestDegree_Method(t *testing.T) {
	c := mustParse(t, "2.5YR 5/5")
	if got := c.Degree(); got != 12.5 {
		t.Errorf("Degree() = %v, want 12.5", got)
	}
}

func TestDegree_PanicsOnBadInput(t *testing.T) {
	tests := []string{"BooR", "11R", "5Z", "N", ""}

	for _, hue := range tests {
		t.Run(fmt.Sprintf("%q", hue), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Degree(%q) did not panic", hue)
				}
			}()
			Degree(hue)
		})
	}
}

func TestDegree_PanicsOnNeutralColor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Degree() on neutral color did not panic")
		}
	}()
	Black().Degree()
}

func TestUndegree(t *testing.T) {
	tests := []struct {
		degree float64
		want   string
	}{
		{0, "10RP"},
		{100, "10RP"},
		{5, "5R"},
		{10, "10R"}, // multiples of 10 are step 10 on the preceding family
		{12.5, "2.5YR"},
		{20, "10YR"},
		{77.5, "7.5PB"},
		{99.9, "9.9RP"},
		{0.1, "0.1R"},
		{22.25, "2.3Y"}, // rounded to one decimal first, ties away from zero
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Undegree(tt.degree); got != tt.want {
				t.Errorf("Undegree(%v) = %q, want %q", tt.degree, got, tt.want)
			}
		})
	}
}

func TestUndegree_PanicsOnBadInput(t *testing.T) {
	tests := []struct {
		name   string
		degree float64
	}{
		{"negative", -0.1},
		{"over 100", 100.1},
		{"NaN", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Undegree(%v) did not panic", tt.degree)
				}
			}()
			Undegree(tt.degree)
		})
	}
}

// Degree and Undegree are inverses at one-decimal granularity over the
// whole hue circle.
func TestDegreeUndegree_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := float64(i) / 10
		got := Degree(Undegree(d))
		if math.Abs(got-d) > 1e-9 {
			t.Fatalf("Degree(Undegree(%v)) = %v", d, got)
		}
	}
}

func TestUndegreeDegree_RoundTrip(t *testing.T) {
	for _, family := range Families {
		for i := 1; i <= 100; i++ {
			step := float64(i) / 10
			code := minimal(step) + family
			if got := Undegree(Degree(code)); got != code {
				t.Fatalf("Undegree(Degree(%q)) = %q", code, got)
			}
		}
	}
}
