package config

import (
	"strings"
	"testing"
)

// clearEnv unsets every STOPWATCH_* variable for the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STOPWATCH_COLOR", "STOPWATCH_AUDIO_ENABLED", "STOPWATCH_AUDIO_VOLUME", "STOPWATCH_DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Color != ColorAuto {
		t.Errorf("Expected color auto, got %q", cfg.Color)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Volume != 50 {
		t.Errorf("Expected volume 50, got %d", cfg.Audio.Volume)
	}
	if cfg.Debug {
		t.Error("Expected debug disabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config valid, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if *cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", *cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("STOPWATCH_COLOR", "TrueColor")
	t.Setenv("STOPWATCH_AUDIO_ENABLED", "true")
	t.Setenv("STOPWATCH_AUDIO_VOLUME", "80")
	t.Setenv("STOPWATCH_DEBUG", "1")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Color != ColorTrueColor {
		t.Errorf("Expected truecolor, got %q", cfg.Color)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled")
	}
	if cfg.Audio.Volume != 80 {
		t.Errorf("Expected volume 80, got %d", cfg.Audio.Volume)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(*Config) bool
		errPart string
	}{
		{
			name:    "unknown color",
			env:     map[string]string{"STOPWATCH_COLOR": "16"},
			check:   func(c *Config) bool { return c.Color == ColorAuto },
			errPart: "invalid color mode",
		},
		{
			name:    "volume above range",
			env:     map[string]string{"STOPWATCH_AUDIO_VOLUME": "150"},
			check:   func(c *Config) bool { return c.Audio.Volume == 100 },
			errPart: "out of range",
		},
		{
			name:    "volume below range",
			env:     map[string]string{"STOPWATCH_AUDIO_VOLUME": "-5"},
			check:   func(c *Config) bool { return c.Audio.Volume == 0 },
			errPart: "out of range",
		},
		{
			name:    "non-numeric volume",
			env:     map[string]string{"STOPWATCH_AUDIO_VOLUME": "loud"},
			check:   func(c *Config) bool { return c.Audio.Volume == 50 },
			errPart: "STOPWATCH_AUDIO_VOLUME",
		},
		{
			name:    "non-boolean audio flag",
			env:     map[string]string{"STOPWATCH_AUDIO_ENABLED": "maybe"},
			check:   func(c *Config) bool { return !c.Audio.Enabled },
			errPart: "STOPWATCH_AUDIO_ENABLED",
		},
		{
			name:    "non-boolean debug flag",
			env:     map[string]string{"STOPWATCH_DEBUG": "verbose"},
			check:   func(c *Config) bool { return !c.Debug },
			errPart: "STOPWATCH_DEBUG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := NewLoader().Load()
			if cfg == nil {
				t.Fatal("Expected usable config")
			}
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Expected error containing %q, got %v", tt.errPart, err)
			}
			if !tt.check(cfg) {
				t.Errorf("Expected fallback value, got %+v", *cfg)
			}
			if verr := cfg.Validate(); verr != nil {
				t.Errorf("Expected sanitized config valid, got %v", verr)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Config{Color: "mono", Audio: AudioConfig{Volume: 101}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "color") || !strings.Contains(msg, "volume") {
		t.Errorf("Expected both problems reported, got %q", msg)
	}
}

func TestToAudioConfig(t *testing.T) {
	cfg := Config{Color: ColorAuto, Audio: AudioConfig{Enabled: true, Volume: 25}}

	ac := cfg.ToAudioConfig()
	if !ac.Enabled {
		t.Error("Expected audio enabled")
	}
	if ac.Volume != 0.25 {
		t.Errorf("Expected gain 0.25, got %f", ac.Volume)
	}
	if ac.SampleRate != 44100 {
		t.Errorf("Expected default sample rate, got %d", ac.SampleRate)
	}
}

func TestEnvName(t *testing.T) {
	if got := envName(KeyAudioVolume); got != "STOPWATCH_AUDIO_VOLUME" {
		t.Errorf("Expected STOPWATCH_AUDIO_VOLUME, got %s", got)
	}
}
