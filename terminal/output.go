package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// cellWidth measures runes as the viewport lays them out: East Asian ambiguous
// runes such as block elements occupy one column whatever the locale says
var cellWidth = narrowCondition()

func narrowCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}

// unknownCell never compares equal to a drawable cell, forcing a redraw
var unknownCell = Cell{Rune: -1}

// outputBuffer manages diffed output into the inline viewport.
// Cursor coordinates are relative to the viewport's top-left cell
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX int
	cursorY int

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 16384),
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions and marks every cell unknown
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = unknownCell
	}
	o.lastValid = false
}

// reserve claims height rows starting at the cursor's line, scrolling the terminal if the cursor is near the bottom.
// Leaves the cursor at the viewport origin with every row erased
func (o *outputBuffer) reserve() error {
	w := o.writer
	w.WriteByte('\r')
	for y := 0; y < o.height; y++ {
		w.Write(csiEraseLine)
		if y < o.height-1 {
			w.Write(crlf)
		}
	}
	writeCursorUp(w, o.height-1)
	w.WriteByte('\r')

	o.cursorX = 0
	o.cursorY = 0
	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Attrs: AttrFgDefault | AttrBgDefault}
	}
	return w.Flush()
}

// release parks the cursor on the line below the viewport so the shell prompt does not overwrite the last frame
func (o *outputBuffer) release() error {
	w := o.writer
	w.Write(csiSGR0)
	writeCursorMove(w, o.cursorY, 0, o.height-1)
	w.Write(crlf)
	o.cursorX = 0
	o.cursorY = o.height
	o.lastValid = false
	return w.Flush()
}

// cellEqual compares two cells for equality (standalone for inlining)
func cellEqual(a, b Cell) bool {
	return a.Rune == b.Rune && a.Attrs == b.Attrs && a.Fg == b.Fg && a.Bg == b.Bg
}

// flush writes the back buffer to terminal, diffing against front buffer
func (o *outputBuffer) flush(cells []Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}

	expectedSize := width * height
	if len(cells) < expectedSize {
		return nil
	}

	w := o.writer
	dirty := false

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			newCell := cells[idx]

			if cellEqual(newCell, o.front[idx]) {
				x++
				continue
			}

			// Position cursor once for this dirty region
			if x != o.cursorX || y != o.cursorY {
				if y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorMove(w, o.cursorY, x, y)
				}
				o.cursorX = x
				o.cursorY = y
			}

			// Write all contiguous dirty cells, emitting style only when changed
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]

				if cellEqual(c, o.front[cidx]) {
					break
				}

				o.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs)

				r := c.Rune
				if r <= 0 {
					r = ' '
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}

				o.front[cidx] = c
				o.cursorX++
				x++
				dirty = true

				// Wide rune occupies the following cell as well
				if r >= 0x80 && cellWidth.RuneWidth(r) == 2 && x < width {
					o.front[cidx+1] = cells[cidx+1]
					o.cursorX++
					x++
				}
			}

			// Auto-wrap is off: the cursor sticks at the last column instead of advancing past it
			if o.cursorX >= width {
				o.cursorX = width - 1
			}
		}
	}

	if !dirty {
		return nil
	}

	w.Write(csiSGR0)
	o.lastValid = false

	return w.Flush()
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyleCoalesced(w *bufio.Writer, fg, bg RGB, attr Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg || (attr&(AttrFg256|AttrFgDefault)) != (o.lastAttr&(AttrFg256|AttrFgDefault))
	bgChanged := !o.lastValid || bg != o.lastBg || (attr&(AttrBg256|AttrBgDefault)) != (o.lastAttr&(AttrBg256|AttrBgDefault))
	styleAttr := attr & AttrStyle
	lastStyleAttr := o.lastAttr & AttrStyle
	attrChanged := !o.lastValid || styleAttr != lastStyleAttr

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	if attrChanged {
		// Reset then re-apply everything in one sequence
		w.Write(csi)
		w.WriteByte('0')

		if styleAttr&AttrBold != 0 {
			w.Write([]byte(";1"))
		}
		if styleAttr&AttrDim != 0 {
			w.Write([]byte(";2"))
		}
		if styleAttr&AttrItalic != 0 {
			w.Write([]byte(";3"))
		}
		if styleAttr&AttrUnderline != 0 {
			w.Write([]byte(";4"))
		}
		if styleAttr&AttrBlink != 0 {
			w.Write([]byte(";5"))
		}
		if styleAttr&AttrReverse != 0 {
			w.Write([]byte(";7"))
		}

		o.writeFgInline(w, fg, attr)
		o.writeBgInline(w, bg, attr)

		w.WriteByte('m')
	} else {
		if fgChanged {
			o.writeFgFull(w, fg, attr)
		}
		if bgChanged {
			o.writeBgFull(w, bg, attr)
		}
	}

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeFgInline writes fg color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeFgInline(w *bufio.Writer, fg RGB, attr Attr) {
	switch {
	case attr&AttrFgDefault != 0:
		// SGR 0 already selected the default foreground
	case attr&AttrFg256 != 0:
		w.Write([]byte(";38;5;"))
		writeInt(w, int(fg.R))
	case o.colorMode == ColorModeTrueColor:
		w.Write([]byte(";38;2;"))
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	default:
		w.Write([]byte(";38;5;"))
		writeInt(w, int(RGBTo256(fg)))
	}
}

// writeBgInline writes bg color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeBgInline(w *bufio.Writer, bg RGB, attr Attr) {
	switch {
	case attr&AttrBgDefault != 0:
	case attr&AttrBg256 != 0:
		w.Write([]byte(";48;5;"))
		writeInt(w, int(bg.R))
	case o.colorMode == ColorModeTrueColor:
		w.Write([]byte(";48;2;"))
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	default:
		w.Write([]byte(";48;5;"))
		writeInt(w, int(RGBTo256(bg)))
	}
}

// writeFgFull writes complete fg color sequence
func (o *outputBuffer) writeFgFull(w *bufio.Writer, fg RGB, attr Attr) {
	switch {
	case attr&AttrFgDefault != 0:
		w.Write(csiDefaultFg)
	case attr&AttrFg256 != 0:
		w.Write(csiFg256)
		writeInt(w, int(fg.R))
		w.WriteByte('m')
	case o.colorMode == ColorModeTrueColor:
		w.Write(csiFgRGB)
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
		w.WriteByte('m')
	default:
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(fg)))
		w.WriteByte('m')
	}
}

// writeBgFull writes complete bg color sequence
func (o *outputBuffer) writeBgFull(w *bufio.Writer, bg RGB, attr Attr) {
	switch {
	case attr&AttrBgDefault != 0:
		w.Write(csiDefaultBg)
	case attr&AttrBg256 != 0:
		w.Write(csiBg256)
		writeInt(w, int(bg.R))
		w.WriteByte('m')
	case o.colorMode == ColorModeTrueColor:
		w.Write(csiBgRGB)
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
		w.WriteByte('m')
	default:
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(bg)))
		w.WriteByte('m')
	}
}
