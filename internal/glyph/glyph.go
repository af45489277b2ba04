// Package glyph holds the 5x5 digit patterns shown on the LED matrix.
package glyph

const (
	// Grid dimensions
	Width  = 5
	Height = 5
	// Cells is the number of LEDs in one glyph
	Cells = Width * Height
	// Digits is the number of glyphs in the table
	Digits = 10
)

// Glyph is a row-major 5x5 on/off pattern in LED chain order
type Glyph [Cells]uint8

// Lit reports whether cell i is on
func (g Glyph) Lit(i int) bool {
	return g[i] != 0
}

// At reports whether the cell at row, col is on
func (g Glyph) At(row, col int) bool {
	return g.Lit(row*Width + col)
}

// Count returns the number of lit cells
func (g Glyph) Count() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

var digits = [Digits]Glyph{
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 0
	{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1, 1}, // 1
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 2
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1}, // 3
	{1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1}, // 4
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1}, // 5
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 6
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}, // 7
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 8
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1}, // 9
}

// Lookup returns the pattern for digit d. d must be in [0,9].
func Lookup(d int) Glyph {
	return digits[d]
}
