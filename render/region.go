package render

import "github.com/lixenwraith/stopwatch/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Cell sets a single cell, silently dropping writes outside the region
func (r Region) Cell(x, y int, ch rune, style Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: style.Fg, Bg: style.Bg, Attrs: style.Attr}
	}
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
