package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/stopwatch/constant"
)

// Service manages terminal lifecycle and input polling
type Service struct {
	term    Terminal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	stopped bool
}

// NewService creates a service around an uninitialized terminal
func NewService(term Terminal) *Service {
	return &Service{
		term:    term,
		eventCh: make(chan Event, constant.EventChannelSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start initializes the terminal and launches the input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.stopped {
		return nil
	}

	if err := s.term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.running = true

	go s.pollLoop()
	return nil
}

// pollLoop forwards input events until stop signal
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL POLL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.term.PollEvent()
		if ev.Type == EventClosed {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}

		// Input is gone for good; nothing more will arrive
		if ev.Type == EventError && permanentReadError(ev.Err) {
			return
		}
	}
}

// Stop ends polling and restores the terminal. Safe to call multiple times
func (s *Service) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.stopped = true
	s.mu.Unlock()

	close(s.stopCh)

	// Post synthetic close event to unblock PollEvent
	s.term.PostEvent(Event{Type: EventClosed})

	<-s.doneCh

	s.term.Fini()
	return nil
}

// Events returns the input event channel
func (s *Service) Events() <-chan Event {
	return s.eventCh
}

// Size returns the viewport dimensions
func (s *Service) Size() (int, int) {
	return s.term.Size()
}

// Flush writes a frame to the viewport
func (s *Service) Flush(cells []Cell, width, height int) error {
	return s.term.Flush(cells, width, height)
}
