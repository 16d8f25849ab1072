package render

import (
	"fmt"
	"time"
)

// SplitClock formats d as the seconds field "MM:SS" and the millisecond field ":mmm".
// Minutes never roll over into hours; negative durations render as zero
func SplitClock(d time.Duration) (string, string) {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	minutes := total / 60
	seconds := total % 60
	millis := int64(d%time.Second) / int64(time.Millisecond)

	return fmt.Sprintf("%02d:%02d", minutes, seconds), fmt.Sprintf(":%03d", millis)
}

// FormatClock formats d as "MM:SS:mmm"
func FormatClock(d time.Duration) string {
	secs, millis := SplitClock(d)
	return secs + millis
}
