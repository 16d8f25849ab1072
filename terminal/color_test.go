package terminal

import "testing"

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"red", RGB{255, 0, 0}, 196},
		{"green", RGB{0, 255, 0}, 46},
		{"blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
		{"dark gray", RGB{8, 8, 8}, 232},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func clearTerminalEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"COLORTERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "ALACRITTY_LOG", "WEZTERM_PANE",
	} {
		t.Setenv(k, "")
	}
}

func TestDetectColorMode(t *testing.T) {
	t.Run("plain 256 terminal", func(t *testing.T) {
		clearTerminalEnv(t)
		t.Setenv("TERM", "xterm-256color")
		if got := DetectColorMode(); got != ColorMode256 {
			t.Errorf("Expected 256, got %s", got)
		}
	})

	t.Run("known truecolor terminal", func(t *testing.T) {
		clearTerminalEnv(t)
		t.Setenv("TERM", "xterm-256color")
		t.Setenv("KITTY_WINDOW_ID", "1")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected truecolor, got %s", got)
		}
	})

	t.Run("direct color TERM", func(t *testing.T) {
		clearTerminalEnv(t)
		t.Setenv("TERM", "xterm-direct")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected truecolor, got %s", got)
		}
	})
}

func TestParseColorMode(t *testing.T) {
	if got := ParseColorMode("256"); got != ColorMode256 {
		t.Errorf("Expected 256, got %s", got)
	}
	for _, name := range []string{"truecolor", "TrueColor", " 24bit "} {
		if got := ParseColorMode(name); got != ColorModeTrueColor {
			t.Errorf("ParseColorMode(%q): expected truecolor, got %s", name, got)
		}
	}

	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-direct")
	if got := ParseColorMode("auto"); got != ColorModeTrueColor {
		t.Errorf("Expected auto to detect truecolor, got %s", got)
	}
}
