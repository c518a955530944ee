// Package font holds the 5x5 pixel face used to draw the clock letters.
// It covers A-Z plus the umlauts Ä, Ö and Ü that occur on the grid.
package font

// Size is the width and height of every glyph in pixels.
const Size = 5

// Each glyph is 5 rows of 5 bits; bit 4 is the leftmost pixel.
var glyphs = map[rune][Size]byte{
	'A': {0b01110, 0b10001, 0b11111, 0b10001, 0b10001},
	'B': {0b11110, 0b10001, 0b11110, 0b10001, 0b11110},
	'C': {0b01111, 0b10000, 0b10000, 0b10000, 0b01111},
	'D': {0b11110, 0b10001, 0b10001, 0b10001, 0b11110},
	'E': {0b11111, 0b10000, 0b11110, 0b10000, 0b11111},
	'F': {0b11111, 0b10000, 0b11110, 0b10000, 0b10000},
	'G': {0b01111, 0b10000, 0b10011, 0b10001, 0b01110},
	'H': {0b10001, 0b10001, 0b11111, 0b10001, 0b10001},
	'I': {0b11111, 0b00100, 0b00100, 0b00100, 0b11111},
	'J': {0b00111, 0b00010, 0b00010, 0b10010, 0b01100},
	'K': {0b10001, 0b10010, 0b11100, 0b10010, 0b10001},
	'L': {0b10000, 0b10000, 0b10000, 0b10000, 0b11111},
	'M': {0b10001, 0b11011, 0b10101, 0b10001, 0b10001},
	'N': {0b10001, 0b11001, 0b10101, 0b10011, 0b10001},
	'O': {0b01110, 0b10001, 0b10001, 0b10001, 0b01110},
	'P': {0b11110, 0b10001, 0b11110, 0b10000, 0b10000},
	'Q': {0b01110, 0b10001, 0b10101, 0b10010, 0b01101},
	'R': {0b11110, 0b10001, 0b11110, 0b10010, 0b10001},
	'S': {0b01111, 0b10000, 0b01110, 0b00001, 0b11110},
	'T': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100},
	'U': {0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'V': {0b10001, 0b10001, 0b10001, 0b01010, 0b00100},
	'W': {0b10001, 0b10001, 0b10101, 0b11011, 0b10001},
	'X': {0b10001, 0b01010, 0b00100, 0b01010, 0b10001},
	'Y': {0b10001, 0b01010, 0b00100, 0b00100, 0b00100},
	'Z': {0b11111, 0b00010, 0b00100, 0b01000, 0b11111},

	// Umlauts: dots in the top row, letter body compressed below.
	'Ä': {0b01010, 0b01110, 0b10001, 0b11111, 0b10001},
	'Ö': {0b01010, 0b01110, 0b10001, 0b10001, 0b01110},
	'Ü': {0b01010, 0b10001, 0b10001, 0b10001, 0b01110},
}

// Glyph returns the bitmap for r. ok is false for runes outside the face.
func Glyph(r rune) (rows [Size]byte, ok bool) {
	rows, ok = glyphs[r]
	return rows, ok
}

// Lit reports whether the pixel at (x, y) inside the glyph for r is set.
// Unknown runes render as empty cells.
func Lit(r rune, x, y int) bool {
	rows, ok := glyphs[r]
	if !ok || x < 0 || x >= Size || y < 0 || y >= Size {
		return false
	}
	return rows[y]&(1<<(Size-1-x)) != 0
}
