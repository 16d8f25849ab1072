package render

// PixelSize selects how many glyph pixels are packed into one terminal cell
type PixelSize int

const (
	PixelQuadrant PixelSize = iota // 2x2 pixels per cell
	PixelSextant                   // 2x3
)

// cellPixels returns the pixel columns and rows covered by one cell
func (p PixelSize) cellPixels() (int, int) {
	if p == PixelSextant {
		return 2, 3
	}
	return 2, 2
}

// Alignment positions a big-text line horizontally in its region
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// quadrantChars provides 2x2 sub-cell resolution
// Bitmap encoding: bit0=UL, bit1=UR, bit2=LL, bit3=LR
var quadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// sextantRune maps a 2x3 bitmap to its block character
// Bit order is row-major from the top-left: bit0=(0,0) bit1=(1,0) ... bit5=(1,2)
// The Unicode sextant block omits the four patterns that already exist as
// space, left half, right half and full block
func sextantRune(bits uint8) rune {
	switch bits {
	case 0:
		return ' '
	case 21:
		return '▌'
	case 42:
		return '▐'
	case 63:
		return '█'
	}
	switch {
	case bits < 21:
		return rune(0x1FB00 + int(bits) - 1)
	case bits < 42:
		return rune(0x1FB00 + int(bits) - 2)
	default:
		return rune(0x1FB00 + int(bits) - 3)
	}
}

// BigText renders a single line with the 8x8 font at reduced cell size
type BigText struct {
	Text  string
	Size  PixelSize
	Align Alignment
	Style Style
}

// GlyphCells returns the cell width and height of one glyph
func (t BigText) GlyphCells() (int, int) {
	px, py := t.Size.cellPixels()
	return (GlyphSize + px - 1) / px, (GlyphSize + py - 1) / py
}

// Width returns the rendered width in cells
func (t BigText) Width() int {
	gw, _ := t.GlyphCells()
	return len([]rune(t.Text)) * gw
}

// Height returns the rendered height in cells
func (t BigText) Height() int {
	_, gh := t.GlyphCells()
	return gh
}

// Draw renders the text into r, clipping anything outside it
func (t BigText) Draw(r Region) {
	if r.Empty() {
		return
	}

	x := 0
	if t.Align == AlignRight {
		x = r.W - t.Width()
	}

	gw, _ := t.GlyphCells()
	for _, ch := range t.Text {
		g, _ := Glyph(ch)
		t.drawGlyph(r, &g, x, 0)
		x += gw
	}
}

// drawGlyph writes every cell of one glyph at ox,oy, including blank ones
func (t BigText) drawGlyph(r Region, g *[GlyphSize]uint8, ox, oy int) {
	px, py := t.Size.cellPixels()
	gw, gh := t.GlyphCells()

	for cy := 0; cy < gh; cy++ {
		for cx := 0; cx < gw; cx++ {
			var bits uint8
			bit := 0
			for sy := 0; sy < py; sy++ {
				for sx := 0; sx < px; sx++ {
					if pixel(g, cx*px+sx, cy*py+sy) {
						bits |= 1 << bit
					}
					bit++
				}
			}
			r.Cell(ox+cx, oy+cy, t.cellRune(bits), t.Style)
		}
	}
}

// cellRune picks the block character for a cell's pixel bits
func (t BigText) cellRune(bits uint8) rune {
	if t.Size == PixelSextant {
		return sextantRune(bits & 0x3F)
	}
	return quadrantChars[bits&0xF]
}
