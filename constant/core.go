package constant

import "time"

// Loop Timing
const (
	// FramesPerSecond is the fixed redraw rate of the clock view
	FramesPerSecond = 60

	// FrameUpdateInterval is the rendering frame interval
	FrameUpdateInterval = time.Second / FramesPerSecond
)

// Input
const (
	// EventChannelSize is the buffered capacity of input event channels
	EventChannelSize = 256
)
