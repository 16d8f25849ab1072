package render

import (
	"testing"

	"github.com/lixenwraith/stopwatch/terminal"
	"github.com/mattn/go-runewidth"
)

func TestDrawText(t *testing.T) {
	b := NewBuffer(10, 2)
	n := DrawText(b.Region(), 1, 0, "hi", StatusStyle)
	if n != 2 {
		t.Errorf("Expected 2 columns, got %d", n)
	}
	if b.Get(1, 0).Rune != 'h' || b.Get(2, 0).Rune != 'i' {
		t.Error("Expected text at columns 1-2")
	}
	if b.Get(1, 0).Attrs != StatusStyle.Attr {
		t.Error("Expected status style applied")
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	b := NewBuffer(5, 1)
	n := DrawText(b.Region(), 0, 0, "世界x", StatusStyle)

	// 世 界 occupy 4 columns; x fits in the fifth
	if n != 5 {
		t.Errorf("Expected 5 columns, got %d", n)
	}
	if b.Get(0, 0).Rune != '世' || b.Get(1, 0).Rune != 0 || b.Get(2, 0).Rune != '界' {
		t.Errorf("Unexpected wide rune layout: %q %q %q", b.Get(0, 0).Rune, b.Get(1, 0).Rune, b.Get(2, 0).Rune)
	}

	b.Clear()
	n = DrawText(b.Region(), 0, 0, "abcd世", StatusStyle)
	if n != 4 {
		t.Errorf("Expected wide rune at the edge dropped, got %d columns", n)
	}
	if b.Get(4, 0) != blankCell {
		t.Error("Expected last column untouched")
	}
}

func TestDrawTextOutsideRows(t *testing.T) {
	b := NewBuffer(5, 1)
	if n := DrawText(b.Region(), 0, 1, "abc", StatusStyle); n != 0 {
		t.Errorf("Expected nothing drawn below region, got %d", n)
	}
}

func TestFitText(t *testing.T) {
	if got := FitText("running", 20); got != "running" {
		t.Errorf("Expected unchanged text, got %q", got)
	}
	if got := FitText("running", 4); got != "run…" {
		t.Errorf("Expected truncated text, got %q", got)
	}
	if got := FitText("running", 0); got != "" {
		t.Errorf("Expected empty text, got %q", got)
	}
}

func TestDrawTextAmbiguousInEastAsianLocale(t *testing.T) {
	old := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = old })

	b := NewBuffer(5, 1)
	n := DrawText(b.Region(), 0, 0, "·█b", StatusStyle)
	if n != 3 {
		t.Errorf("Expected ambiguous runes one column wide, got %d columns", n)
	}
	if b.Get(1, 0).Rune != '█' || b.Get(2, 0).Rune != 'b' {
		t.Errorf("Expected no continuation cells, got %q %q", b.Get(1, 0).Rune, b.Get(2, 0).Rune)
	}
	if got := FitText("paused · q", 8); got != "paused …" {
		t.Errorf("Expected truncation by narrow width, got %q", got)
	}
}

func TestStylesUseRGBGray(t *testing.T) {
	for name, s := range map[string]Style{"timer": TimerStyle, "status": StatusStyle} {
		if s.Attr&(terminal.AttrFg256|terminal.AttrFgDefault) != 0 {
			t.Errorf("%s: expected RGB foreground so the color mode decides the escape, got attr %b", name, s.Attr)
		}
		if s.Fg.R != s.Fg.G || s.Fg.G != s.Fg.B {
			t.Errorf("%s: expected gray, got %+v", name, s.Fg)
		}
	}
	if TimerStyle.Fg.R <= StatusStyle.Fg.R {
		t.Error("Expected digits brighter than the status line")
	}
}
