package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/munsell-tools-mcp/internal/convert"
	"github.com/ironsheep/munsell-tools-mcp/internal/munsell"
)

// Result contains a rendered image and the notation it depicts
type Result struct {
	Code        string `json:"code"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render produces a uniform square swatch of a single color.
//
// The swatch is drawn at a fixed base resolution and scaled to the requested
// size with nearest-neighbor resampling, which keeps the fill exact.
func Render(c munsell.Color, size int) (*Result, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid swatch size %d", size)
	}

	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fill(base, base.Bounds(), rgba(c))
	img := transform.Resize(base, size, size, transform.NearestNeighbor)

	return encode(c.Code(), img)
}

// ValueScale renders an 11-patch strip of the color's hue and chroma across
// values 0 through 10, each patch labeled with its value. Values 0 and 10
// collapse to black and white as always; a neutral input yields a gray ramp.
func ValueScale(c munsell.Color, patch int) (*Result, error) {
	if patch < 16 {
		return nil, fmt.Errorf("patch size %d too small for labels", patch)
	}

	img := image.NewRGBA(image.Rect(0, 0, 11*patch, patch))
	for i := 0; i <= 10; i++ {
		step, err := atValue(c, float64(i))
		if err != nil {
			return nil, err
		}
		rect := image.Rect(i*patch, 0, (i+1)*patch, patch)
		fill(img, rect, rgba(step))
		drawLabel(img, i*patch+2, patch-8, strconv.Itoa(i))
	}

	return encode(c.Code(), img)
}

// HuePage renders the chart of one chromatic hue: value 9 (top) down to
// value 1 (bottom) against chroma 2, 4, ... maxChroma (left to right), with
// a labeled margin row and column. scale != 1 resizes the finished chart
// with Lanczos resampling.
func HuePage(hue string, maxChroma float64, patch int, scale float64) (*Result, error) {
	anchor, err := munsell.New(hue, "5", "2")
	if err != nil {
		return nil, err
	}
	if anchor.IsNeutral() {
		return nil, fmt.Errorf("hue page needs a chromatic hue, got %q", hue)
	}
	if maxChroma < 2 {
		maxChroma = 2
	}
	if patch < 16 {
		return nil, fmt.Errorf("patch size %d too small for labels", patch)
	}

	cols := int(maxChroma / 2)
	rows := 9 // values 9..1

	// One extra row and column for the axis labels.
	w := (cols + 1) * patch
	h := (rows + 1) * patch
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), color.RGBA{32, 32, 32, 255})
	drawLabel(img, 4, 4, anchor.Hue())

	for col := 0; col < cols; col++ {
		chroma := float64((col + 1) * 2)
		drawLabel(img, (col+1)*patch+4, 4, fmtNum(chroma))

		for row := 0; row < rows; row++ {
			value := float64(9 - row)
			if col == 0 {
				drawLabel(img, 4, (row+1)*patch+4, fmtNum(value))
			}

			cell, err := munsell.New(anchor.Hue(), fmtNum(value), fmtNum(chroma))
			if err != nil {
				return nil, err
			}
			rect := image.Rect((col+1)*patch, (row+1)*patch, (col+2)*patch, (row+2)*patch)
			rect = rect.Inset(1)
			fill(img, rect, rgba(cell))
		}
	}

	if scale != 1.0 && scale > 0 {
		scaled := imaging.Resize(img, int(float64(w)*scale), int(float64(h)*scale), imaging.Lanczos)
		return encode(anchor.Hue(), scaled)
	}
	return encode(anchor.Hue(), img)
}

// atValue derives the color at a different value, keeping hue and chroma.
func atValue(c munsell.Color, value float64) (munsell.Color, error) {
	v := fmtNum(value)
	if c.IsNeutral() {
		return munsell.New("N", v, "")
	}
	return munsell.New(c.Hue(), v, fmtNum(c.Chroma()))
}

func rgba(c munsell.Color) color.RGBA {
	r, g, b := convert.ToRGB(c)
	return color.RGBA{r, g, b, 255}
}

func fill(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
}

func fmtNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func encode(code string, img image.Image) (*Result, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}
	bounds := img.Bounds()
	return &Result{
		Code:        code,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
