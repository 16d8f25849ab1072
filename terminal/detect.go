package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	if termenv.EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}

	// Terminals known to support 24-bit color without advertising COLORTERM
	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves a configured color mode name, "auto" and unknown values detect from environment
func ParseColorMode(name string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}
