// Package config resolves runtime settings from STOPWATCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/stopwatch/audio"
	"github.com/lixenwraith/stopwatch/constant"
)

// Color mode names accepted in STOPWATCH_COLOR
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

var validColors = []string{ColorAuto, ColorTrueColor, Color256}

// Config holds all runtime settings
type Config struct {
	Color string
	Audio AudioConfig
	Debug bool
}

// AudioConfig holds audible cue settings
type AudioConfig struct {
	Enabled bool
	Volume  int // Percent, 0-100
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Color: ColorAuto,
		Audio: AudioConfig{
			Enabled: false,
			Volume:  constant.AudioDefaultVolume,
		},
		Debug: false,
	}
}

// Validate reports every setting outside its accepted range
func (c *Config) Validate() error {
	var errs []error

	if !contains(validColors, c.Color) {
		errs = append(errs, fmt.Errorf("invalid color mode: %q (must be one of: %s)", c.Color, strings.Join(validColors, ", ")))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		errs = append(errs, fmt.Errorf("audio volume %d out of range (must be 0-100)", c.Audio.Volume))
	}

	return errors.Join(errs...)
}

// sanitize replaces invalid settings: unknown color falls back to auto, volume is clamped
func (c *Config) sanitize() {
	if !contains(validColors, c.Color) {
		c.Color = ColorAuto
	}
	c.Audio.Volume = max(0, min(100, c.Audio.Volume))
}

// ToAudioConfig converts to the audio package's configuration
func (c *Config) ToAudioConfig() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = c.Audio.Enabled
	cfg.Volume = float64(c.Audio.Volume) / 100.0
	return cfg
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
