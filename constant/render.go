package constant

// Viewport Geometry
const (
	// ViewportHeight is the number of rows reserved below the cursor
	ViewportHeight = 10

	// TimerAreaWidth is the fixed width of the timer region, split into two equal columns
	TimerAreaWidth = 50

	// MillisRowOffset shifts the millisecond field down so both fields share a bottom row
	MillisRowOffset = 1

	// StatusRow is the viewport row of the state/key hint line
	StatusRow = 5
)

// Colors
const (
	// TimerGrayLevel is the RGB channel value of the digits, xterm's light gray
	TimerGrayLevel = 0xC0

	// StatusGrayLevel is the RGB channel value of the status line, xterm's dark gray
	StatusGrayLevel = 0x80
)

// Status Line
const (
	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusHints   = "space pause/resume · r reset · q quit"
)
