package render

import (
	"github.com/lixenwraith/stopwatch/terminal"
)

// blankCell is an empty cell in the terminal's default colors
var blankCell = terminal.Cell{Rune: ' ', Attrs: terminal.AttrFgDefault | terminal.AttrBgDefault}

// Buffer is a frame of cells sized to the viewport, exported to the terminal as-is
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Cells returns the row-major backing slice
func (b *Buffer) Cells() []terminal.Cell {
	return b.cells
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Get returns the cell at x,y, or a blank cell outside bounds
func (b *Buffer) Get(x, y int) terminal.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// Region returns a region covering the whole buffer
func (b *Buffer) Region() Region {
	return NewRegion(b.cells, b.width, 0, 0, b.width, b.height)
}
