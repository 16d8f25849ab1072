package render

import "github.com/mattn/go-runewidth"

// textWidth keeps East Asian ambiguous runes at one column in every locale,
// the width the terminal package tracks them with
var textWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// DrawText writes s at x,y and returns the number of columns used.
// Text is cut at the region edge; a wide rune that would straddle the edge is dropped
func DrawText(r Region, x, y int, s string, style Style) int {
	if y < 0 || y >= r.H {
		return 0
	}

	col := x
	for _, ch := range s {
		w := textWidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		r.Cell(col, y, ch, style)
		if w == 2 {
			// Continuation cell, skipped by the terminal when the wide rune is written
			r.Cell(col+1, y, 0, style)
		}
		col += w
	}
	return col - x
}

// FitText truncates s with an ellipsis so it occupies at most width columns
func FitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if textWidth.StringWidth(s) <= width {
		return s
	}
	return textWidth.Truncate(s, width, "…")
}
