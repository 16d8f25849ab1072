package render

import (
	"github.com/lixenwraith/stopwatch/constant"
	"github.com/lixenwraith/stopwatch/terminal"
)

// Style bundles foreground, background, and attributes for drawing
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Gray returns a style with an RGB gray foreground on the default background.
// Truecolor terminals get the exact level, 256-color terminals the nearest palette entry
func Gray(level uint8) Style {
	return Style{Fg: terminal.RGB{R: level, G: level, B: level}, Attr: terminal.AttrBgDefault}
}

var (
	// TimerStyle draws the digits gray
	TimerStyle = Gray(constant.TimerGrayLevel)

	// StatusStyle draws the status line dark gray
	StatusStyle = Gray(constant.StatusGrayLevel)
)
