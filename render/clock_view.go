package render

import (
	"time"

	"github.com/lixenwraith/stopwatch/constant"
)

// ClockLayout holds the regions the clock view draws into
type ClockLayout struct {
	Seconds Region
	Millis  Region
	Status  Region
}

// LayoutClock places the fields inside the timer area at the left of body.
// The timer area is split into two equal columns; the millisecond column is
// shifted down so its glyph bottoms line up with the seconds field
func LayoutClock(body Region) ClockLayout {
	timer, _ := SplitHFixed(body, constant.TimerAreaWidth)
	cols := SplitH(timer, 1, 1)
	_, millis := SplitVFixed(cols[1], constant.MillisRowOffset)

	return ClockLayout{
		Seconds: cols[0],
		Millis:  millis,
		Status:  timer.Sub(0, constant.StatusRow, timer.W, 1),
	}
}

// ClockView draws the elapsed time as big text plus a status line
type ClockView struct {
	ShowStatus bool
}

// NewClockView creates a view with the status line enabled
func NewClockView() *ClockView {
	return &ClockView{ShowStatus: true}
}

// Draw clears buf and renders one frame; it reads the supplied values only
func (v *ClockView) Draw(buf *Buffer, elapsed time.Duration, paused bool) {
	buf.Clear()
	layout := LayoutClock(buf.Region())

	secs, millis := SplitClock(elapsed)

	BigText{Text: secs, Size: PixelQuadrant, Align: AlignRight, Style: TimerStyle}.Draw(layout.Seconds)
	BigText{Text: millis, Size: PixelSextant, Align: AlignLeft, Style: TimerStyle}.Draw(layout.Millis)

	if v.ShowStatus && !layout.Status.Empty() {
		DrawText(layout.Status, 0, 0, FitText(statusLine(paused), layout.Status.W), StatusStyle)
	}
}

// statusLine returns the run state followed by the key hints, hints stay in a fixed column
func statusLine(paused bool) string {
	state := constant.StatusRunning
	if paused {
		state = constant.StatusPaused
	}
	stateW := max(textWidth.StringWidth(constant.StatusRunning), textWidth.StringWidth(constant.StatusPaused))
	return textWidth.FillRight(state, stateW) + "  " + constant.StatusHints
}
