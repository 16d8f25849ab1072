// Package app runs the stopwatch: a fixed-rate redraw loop multiplexed with
// keyboard input over an inline terminal viewport.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/stopwatch/audio"
	"github.com/lixenwraith/stopwatch/clock"
	"github.com/lixenwraith/stopwatch/constant"
	"github.com/lixenwraith/stopwatch/render"
	"github.com/lixenwraith/stopwatch/stopwatch"
	"github.com/lixenwraith/stopwatch/terminal"
)

// ErrTerminalInit marks failures to acquire the terminal
var ErrTerminalInit = errors.New("failed to initialize terminal")

// Display is the terminal surface the loop draws into
type Display interface {
	Start() error
	Stop() error
	Events() <-chan terminal.Event
	Size() (width, height int)
	Flush(cells []terminal.Cell, width, height int) error
}

// CuePlayer receives audible cues for timer commands
type CuePlayer interface {
	Play(cue audio.Cue)
}

// App owns the stopwatch and is its only mutator
type App struct {
	display       Display
	watch         *stopwatch.Stopwatch
	view          *render.ClockView
	buf           *render.Buffer
	logger        *log.Logger
	cues          CuePlayer
	clock         clock.TimeProvider
	frameInterval time.Duration
	shouldQuit    bool
}

// Option configures an App
type Option func(*App)

// WithLogger sets the logger, default discards everything
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCues routes timer commands to an audio cue player
func WithCues(p CuePlayer) Option {
	return func(a *App) {
		a.cues = p
	}
}

// WithClock replaces the monotonic time source
func WithClock(tp clock.TimeProvider) Option {
	return func(a *App) {
		if tp != nil {
			a.clock = tp
		}
	}
}

// WithFrameInterval overrides the redraw period
func WithFrameInterval(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.frameInterval = d
		}
	}
}

// WithStatusLine toggles the state/key hint line
func WithStatusLine(show bool) Option {
	return func(a *App) {
		a.view.ShowStatus = show
	}
}

// New creates an app with a running stopwatch started at the current time
func New(display Display, opts ...Option) *App {
	a := &App{
		display:       display,
		view:          render.NewClockView(),
		logger:        log.New(io.Discard),
		clock:         clock.NewMonotonicTimeProvider(),
		frameInterval: constant.FrameUpdateInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.watch = stopwatch.New(a.clock)
	return a
}

// Run acquires the display, loops until quit, draw failure or ctx cancellation,
// and releases the display exactly once on every path
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.display.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalInit, err)
	}
	defer func() {
		if stopErr := a.display.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", stopErr)
		}
	}()

	w, h := a.display.Size()
	a.buf = render.NewBuffer(w, h)
	a.logger.Info("stopwatch started", "width", w, "height", h, "interval", a.frameInterval)

	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()

	// First frame immediately, the ticker only fires after one interval
	if err := a.draw(); err != nil {
		return err
	}

	events := a.display.Events()
	for !a.shouldQuit {
		select {
		case <-ctx.Done():
			a.logger.Info("stopwatch interrupted", "cause", context.Cause(ctx))
			return nil
		case <-ticker.C:
			if err := a.draw(); err != nil {
				return err
			}
		case ev := <-events:
			a.HandleEvent(ev)
		}
	}

	a.logger.Info("stopwatch quit", "elapsed", render.FormatClock(a.watch.Elapsed()))
	return nil
}

// draw renders the current elapsed time; it never mutates the stopwatch
func (a *App) draw() error {
	a.view.Draw(a.buf, a.watch.Elapsed(), a.watch.IsPaused())

	w, h := a.buf.Size()
	if err := a.display.Flush(a.buf.Cells(), w, h); err != nil {
		a.logger.Error("draw failed", "error", err)
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// Elapsed returns the stopwatch reading
func (a *App) Elapsed() time.Duration {
	return a.watch.Elapsed()
}

// State returns the stopwatch run state
func (a *App) State() stopwatch.State {
	return a.watch.State()
}

// ShouldQuit reports whether a quit key was pressed
func (a *App) ShouldQuit() bool {
	return a.shouldQuit
}
