package swatch

import (
	"image"
	"image/color"
)

// glyphs is a 3x5 bitmap font covering everything a Munsell label needs:
// digits, the decimal point, the separator, and the family letters.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'.': {"000", "000", "000", "000", "010"},
	'/': {"001", "001", "010", "100", "100"},
	'R': {"110", "101", "110", "101", "101"},
	'Y': {"101", "101", "010", "010", "010"},
	'G': {"111", "100", "101", "101", "111"},
	'B': {"110", "101", "110", "101", "110"},
	'P': {"111", "101", "111", "100", "100"},
	'N': {"101", "111", "111", "101", "101"},
}

// drawLabel renders text at (x, y) in white over a dark backing box so
// labels stay readable on any patch color.
func drawLabel(img *image.RGBA, x, y int, text string) {
	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 180}

	bounds := img.Bounds()
	const charWidth = 4
	labelWidth := len(text) * charWidth
	const labelHeight = 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if image.Pt(px, py).In(bounds) {
				img.Set(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if image.Pt(px, py).In(bounds) {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
