package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/stopwatch/app"
	"github.com/lixenwraith/stopwatch/audio"
	"github.com/lixenwraith/stopwatch/config"
	"github.com/lixenwraith/stopwatch/constant"
	"github.com/lixenwraith/stopwatch/terminal"
)

var failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintln(os.Stderr, failureStyle.Render(fmt.Sprintf("STOPWATCH CRASHED: %v", r)))
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	cfg, cfgErr := config.NewLoader().Load()

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	if cfgErr != nil {
		logger.Warn("invalid settings replaced with defaults", "error", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	// Blank line between the prompt and the viewport
	fmt.Println()

	term := terminal.New(terminal.Options{
		ColorMode: terminal.ParseColorMode(cfg.Color),
		Height:    constant.ViewportHeight,
	})
	logger.Debug("terminal configured", "color", term.ColorMode(), "setting", cfg.Color)
	svc := terminal.NewService(term)

	opts := []app.Option{app.WithLogger(logger)}

	player := audio.NewPlayer(cfg.ToAudioConfig())
	if err := player.Init(); err != nil {
		logger.Error("audio unavailable, continuing without sound", "error", err)
	} else if player.Enabled() {
		opts = append(opts, app.WithCues(player))
	}
	defer player.Close()

	if err := app.New(svc, opts...).Run(ctx); err != nil {
		if errors.Is(err, app.ErrTerminalInit) {
			// Sentinel text already leads the wrapped message
			fmt.Println(failureStyle.Render(err.Error()))
		} else {
			fmt.Println(failureStyle.Render("something went wrong: " + err.Error()))
		}
		logger.Error("stopwatch failed", "error", err)
		return 1
	}
	return 0
}
