package picker

import (
	"fmt"
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/munsell-tools-mcp/internal/convert"
	"github.com/ironsheep/munsell-tools-mcp/internal/munsell"
)

// Sample names the color at a single pixel.
type Sample struct {
	X   int    `json:"x"`
	Y   int    `json:"y"`
	Hex string `json:"hex"` // sampled sRGB color, "#rrggbb"

	// Munsell is the nearest Munsell notation for the sampled color.
	Munsell   string  `json:"munsell"`
	Neutral   bool    `json:"neutral"`
	Value     float64 `json:"value"`
	Chroma    float64 `json:"chroma,omitempty"`
	NearBlack bool    `json:"near_black"`
	NearWhite bool    `json:"near_white"`
}

// At samples the pixel at (x, y) and returns it with its nearest Munsell
// notation. Coordinates are 0-based from the top-left corner.
func At(img image.Image, x, y int) (*Sample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, _ := img.At(x, y).RGBA()
	col := colorful.Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
	m := convert.FromColorful(col)

	return &Sample{
		X:         x,
		Y:         y,
		Hex:       col.Hex(),
		Munsell:   m.Code(),
		Neutral:   m.IsNeutral(),
		Value:     m.Value(),
		Chroma:    m.Chroma(),
		NearBlack: m.IsNearBlack(),
		NearWhite: m.IsNearWhite(),
	}, nil
}

// Region is a rectangle with inclusive top-left (X1, Y1) and exclusive
// bottom-right (X2, Y2).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// DominantEntry is one Munsell notation and its share of the analyzed pixels.
type DominantEntry struct {
	Munsell    string  `json:"munsell"`
	Hex        string  `json:"hex"` // preview of the notation, not of raw pixels
	Percentage float64 `json:"percentage"`
}

// Dominant names the most common colors of an image or region in Munsell
// terms. Pixels are first snapped to a coarse notation (whole value, chroma
// in steps of 2, hue in family halves) so perceptually close colors merge,
// then counted. At most count entries are returned, most frequent first.
func Dominant(img image.Image, count int, region *Region) ([]DominantEntry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid count %d", count)
	}
	bounds := img.Bounds()
	if region != nil {
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if !bounds.In(img.Bounds()) || bounds.Empty() {
			return nil, fmt.Errorf("region %v outside image bounds %v", bounds, img.Bounds())
		}
	}

	counts := make(map[string]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			col := colorful.Color{
				R: float64(r) / 65535,
				G: float64(g) / 65535,
				B: float64(b) / 65535,
			}
			counts[coarseCode(convert.FromColorful(col))]++
			total++
		}
	}

	entries := make([]DominantEntry, 0, len(counts))
	for code, n := range counts {
		c, err := munsell.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("internal: bad coarse code %q: %w", code, err)
		}
		entries = append(entries, DominantEntry{
			Munsell:    code,
			Hex:        convert.ToHex(c),
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Munsell < entries[j].Munsell
	})

	if len(entries) > count {
		entries = entries[:count]
	}
	return entries, nil
}

// coarseCode quantizes a notation so near-identical pixels bucket together:
// value to whole steps, chroma to even steps, hue to half families.
func coarseCode(c munsell.Color) string {
	value := roundTo(c.Value(), 1)
	if c.IsNeutral() || value == 0 || value == 10 {
		n, _ := munsell.New("N", fmtNum(value), "")
		return n.Code()
	}
	chroma := roundTo(c.Chroma(), 2)
	if chroma == 0 {
		n, _ := munsell.New("N", fmtNum(value), "")
		return n.Code()
	}
	hue := munsell.Undegree(roundTo(c.Degree(), 5))
	q, _ := munsell.New(hue, fmtNum(value), fmtNum(chroma))
	return q.Code()
}

func roundTo(x, step float64) float64 {
	n := int(x/step + 0.5)
	return float64(n) * step
}

func fmtNum(x float64) string {
	return fmt.Sprintf("%g", x)
}
