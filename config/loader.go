package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables
const EnvPrefix = "STOPWATCH"

// Configuration keys
const (
	KeyColor        = "color"
	KeyAudioEnabled = "audio.enabled"
	KeyAudioVolume  = "audio.volume"
	KeyDebug        = "debug"
)

// Loader reads settings from the environment
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with its own viper instance
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load resolves the configuration. It always returns a usable config;
// a non-nil error lists the settings that were replaced by defaults
func (l *Loader) Load() (*Config, error) {
	l.setupEnvironmentVariables()
	l.setDefaults()

	cfg := DefaultConfig()
	var errs []error

	cfg.Color = strings.ToLower(strings.TrimSpace(l.v.GetString(KeyColor)))

	if b, err := l.parseBool(KeyAudioEnabled); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Audio.Enabled = b
	}

	if n, err := l.parseInt(KeyAudioVolume); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Audio.Volume = n
	}

	if b, err := l.parseBool(KeyDebug); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Debug = b
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
		cfg.sanitize()
	}

	return &cfg, errors.Join(errs...)
}

// setupEnvironmentVariables maps keys such as audio.volume to STOPWATCH_AUDIO_VOLUME
func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// setDefaults sets default values for all configuration options
func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault(KeyColor, defaults.Color)
	l.v.SetDefault(KeyAudioEnabled, defaults.Audio.Enabled)
	l.v.SetDefault(KeyAudioVolume, defaults.Audio.Volume)
	l.v.SetDefault(KeyDebug, defaults.Debug)
}

// parseBool reads a boolean key, rejecting values strconv cannot parse
func (l *Loader) parseBool(key string) (bool, error) {
	raw := strings.TrimSpace(l.v.GetString(key))
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", envName(key), raw, err)
	}
	return b, nil
}

// parseInt reads an integer key, rejecting values strconv cannot parse
func (l *Loader) parseInt(key string) (int, error) {
	raw := strings.TrimSpace(l.v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", envName(key), raw, err)
	}
	return n, nil
}

// envName returns the environment variable bound to key
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}
