package audio

import "github.com/lixenwraith/stopwatch/constant"

// Config holds audio playback settings
type Config struct {
	Enabled    bool
	Volume     float64 // Master gain 0.0-1.0
	SampleRate int
}

// DefaultConfig returns audio disabled at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     float64(constant.AudioDefaultVolume) / 100.0,
		SampleRate: constant.AudioSampleRate,
	}
}
