package render

// GlyphSize is the pixel width and height of every font glyph
const GlyphSize = 8

// digitFont holds 8x8 bitmaps for the clock characters
// One byte per row, LSB-first: bit 0 = column 0
var digitFont = map[rune][GlyphSize]uint8{
	'0': {0x3E, 0x63, 0x73, 0x7B, 0x6F, 0x67, 0x3E, 0x00},
	'1': {0x0C, 0x0E, 0x0C, 0x0C, 0x0C, 0x0C, 0x3F, 0x00},
	'2': {0x1E, 0x33, 0x30, 0x1C, 0x06, 0x33, 0x3F, 0x00},
	'3': {0x1E, 0x33, 0x30, 0x1C, 0x30, 0x33, 0x1E, 0x00},
	'4': {0x38, 0x3C, 0x36, 0x33, 0x7F, 0x30, 0x78, 0x00},
	'5': {0x3F, 0x03, 0x1F, 0x30, 0x30, 0x33, 0x1E, 0x00},
	'6': {0x1C, 0x06, 0x03, 0x1F, 0x33, 0x33, 0x1E, 0x00},
	'7': {0x3F, 0x33, 0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x00},
	'8': {0x1E, 0x33, 0x33, 0x1E, 0x33, 0x33, 0x1E, 0x00},
	'9': {0x1E, 0x33, 0x33, 0x3E, 0x30, 0x18, 0x0E, 0x00},
	':': {0x00, 0x0C, 0x0C, 0x00, 0x00, 0x0C, 0x0C, 0x00},
}

// Glyph returns the bitmap for r; characters outside the font render blank
func Glyph(r rune) ([GlyphSize]uint8, bool) {
	g, ok := digitFont[r]
	return g, ok
}

// pixel reports whether the glyph pixel at column x, row y is set
func pixel(g *[GlyphSize]uint8, x, y int) bool {
	if x < 0 || x >= GlyphSize || y < 0 || y >= GlyphSize {
		return false
	}
	return g[y]&(1<<x) != 0
}
