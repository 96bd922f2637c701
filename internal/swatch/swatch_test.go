package swatch

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/ironsheep/munsell-tools-mcp/internal/convert"
	"github.com/ironsheep/munsell-tools-mcp/internal/munsell"
)

// decodeResult decodes a Result's base64 PNG back into an image
func decodeResult(t *testing.T, res *Result) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	return img
}

func mustParse(t *testing.T, spec string) munsell.Color {
	t.Helper()
	c, err := munsell.Parse(spec)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", spec, err)
	}
	return c
}

func TestRender(t *testing.T) {
	c := mustParse(t, "5R 5/6")
	res, err := Render(c, 64)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if res.Width != 64 || res.Height != 64 {
		t.Errorf("dimensions: got %dx%d, want 64x64", res.Width, res.Height)
	}
	if res.MimeType != "image/png" {
		t.Errorf("mime type: got %s", res.MimeType)
	}
	if res.Code != "5R 5/6" {
		t.Errorf("code: got %q", res.Code)
	}

	img := decodeResult(t, res)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("decoded dimensions: got %v", img.Bounds())
	}

	// Uniform fill: center pixel matches the converted color exactly.
	wantR, wantG, wantB := convert.ToRGB(c)
	r, g, b, _ := img.At(32, 32).RGBA()
	if uint8(r>>8) != wantR || uint8(g>>8) != wantG || uint8(b>>8) != wantB {
		t.Errorf("center pixel: got (%d,%d,%d), want (%d,%d,%d)",
			uint8(r>>8), uint8(g>>8), uint8(b>>8), wantR, wantG, wantB)
	}
}

func TestRender_InvalidSize(t *testing.T) {
	if _, err := Render(munsell.Black(), 0); err == nil {
		t.Error("Render with size 0 succeeded, want error")
	}
}

func TestValueScale(t *testing.T) {
	res, err := ValueScale(mustParse(t, "5R 5/6"), 20)
	if err != nil {
		t.Fatalf("ValueScale failed: %v", err)
	}
	if res.Width != 11*20 || res.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want %dx%d", res.Width, res.Height, 11*20, 20)
	}

	img := decodeResult(t, res)

	// First patch is value 0 (black), last is value 10 (white); sample away
	// from the label corner.
	r, _, _, _ := img.At(15, 5).RGBA()
	if uint8(r>>8) != 0 {
		t.Errorf("value-0 patch not black: %d", uint8(r>>8))
	}
	r, _, _, _ = img.At(10*20+15, 5).RGBA()
	if uint8(r>>8) != 255 {
		t.Errorf("value-10 patch not white: %d", uint8(r>>8))
	}
}

func TestValueScale_Neutral(t *testing.T) {
	res, err := ValueScale(munsell.NearBlack(), 20)
	if err != nil {
		t.Fatalf("ValueScale failed: %v", err)
	}
	img := decodeResult(t, res)

	// A neutral ramp stays gray in every patch.
	for i := 0; i <= 10; i++ {
		r16, g16, b16, _ := img.At(i*20+15, 5).RGBA()
		r, g, b := int(r16>>8), int(g16>>8), int(b16>>8)
		if abs(r-g) > 1 || abs(g-b) > 1 {
			t.Errorf("patch %d not gray: (%d,%d,%d)", i, r, g, b)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestHuePage(t *testing.T) {
	res, err := HuePage("5R", 8, 20, 1.0)
	if err != nil {
		t.Fatalf("HuePage failed: %v", err)
	}

	// 4 chroma columns + label column, 9 value rows + label row.
	if res.Width != 5*20 || res.Height != 10*20 {
		t.Errorf("dimensions: got %dx%d, want %dx%d", res.Width, res.Height, 5*20, 10*20)
	}
	if res.Code != "5R" {
		t.Errorf("code: got %q", res.Code)
	}
	decodeResult(t, res)
}

func TestHuePage_Scaled(t *testing.T) {
	res, err := HuePage("5R", 4, 20, 2.0)
	if err != nil {
		t.Fatalf("HuePage failed: %v", err)
	}
	if res.Width != 3*20*2 || res.Height != 10*20*2 {
		t.Errorf("dimensions: got %dx%d", res.Width, res.Height)
	}
}

func TestHuePage_RejectsNeutralAndInvalid(t *testing.T) {
	if _, err := HuePage("N", 8, 20, 1.0); err == nil {
		t.Error("HuePage(N) succeeded, want error")
	}
	if _, err := HuePage("BooR", 8, 20, 1.0); err == nil {
		t.Error("HuePage(BooR) succeeded, want error")
	}
}
