// Package stopwatch tracks elapsed running time across pause, resume and reset.
package stopwatch

import (
	"time"

	"github.com/lixenwraith/stopwatch/clock"
)

// State is the run state of a Stopwatch
type State uint8

const (
	StateRunning State = iota
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Stopwatch accumulates running time from a monotonic "since" marker plus a frozen total.
// Not safe for concurrent use, the owning event loop is the only caller
type Stopwatch struct {
	clock clock.TimeProvider

	paused       bool
	accumulated  time.Duration // Time accrued in previous running intervals
	runningSince time.Time     // Start of current running interval, meaningful only while running
}

// New creates a running stopwatch starting at zero
func New(tp clock.TimeProvider) *Stopwatch {
	if tp == nil {
		tp = clock.NewMonotonicTimeProvider()
	}
	return &Stopwatch{
		clock:        tp,
		runningSince: tp.Now(),
	}
}

// Pause freezes elapsed time; no-op when already paused
func (s *Stopwatch) Pause() {
	if s.paused {
		return
	}
	s.accumulated += s.liveInterval()
	s.paused = true
}

// Resume starts a new running interval; no-op when already running
func (s *Stopwatch) Resume() {
	if !s.paused {
		return
	}
	s.runningSince = s.clock.Now()
	s.paused = false
}

// Toggle fires exactly one of Pause or Resume
func (s *Stopwatch) Toggle() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Reset zeroes elapsed time and rebases the running marker, run state is kept
func (s *Stopwatch) Reset() {
	s.accumulated = 0
	s.runningSince = s.clock.Now()
}

// Elapsed returns accumulated time plus the live interval when running
func (s *Stopwatch) Elapsed() time.Duration {
	if s.paused {
		return s.accumulated
	}
	return s.accumulated + s.liveInterval()
}

// IsPaused returns current pause state
func (s *Stopwatch) IsPaused() bool {
	return s.paused
}

// State returns the current run state
func (s *Stopwatch) State() State {
	if s.paused {
		return StatePaused
	}
	return StateRunning
}

// liveInterval is the length of the current running interval, never negative
func (s *Stopwatch) liveInterval() time.Duration {
	d := s.clock.Now().Sub(s.runningSince)
	if d < 0 {
		return 0
	}
	return d
}
