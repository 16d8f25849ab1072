package app

import (
	"sync"

	"github.com/lixenwraith/stopwatch/audio"
	"github.com/lixenwraith/stopwatch/terminal"
)

// fakeDisplay records lifecycle calls and frames
type fakeDisplay struct {
	mu sync.Mutex

	events   chan terminal.Event
	startErr error
	flushErr error
	width    int
	height   int

	starts    int
	stops     int
	flushes   int
	lastFrame []terminal.Cell

	// Signalled on every flush
	flushed chan struct{}
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		events:  make(chan terminal.Event, 16),
		width:   80,
		height:  10,
		flushed: make(chan struct{}, 1024),
	}
}

func (d *fakeDisplay) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.starts++
	return d.startErr
}

func (d *fakeDisplay) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stops++
	return nil
}

func (d *fakeDisplay) Events() <-chan terminal.Event {
	return d.events
}

func (d *fakeDisplay) Size() (int, int) {
	return d.width, d.height
}

func (d *fakeDisplay) Flush(cells []terminal.Cell, width, height int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.flushErr != nil {
		return d.flushErr
	}
	d.flushes++
	d.lastFrame = append(d.lastFrame[:0], cells...)
	select {
	case d.flushed <- struct{}{}:
	default:
	}
	return nil
}

func (d *fakeDisplay) counts() (starts, stops, flushes int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.starts, d.stops, d.flushes
}

// cueRecorder collects played cues
type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(cue audio.Cue) {
	r.cues = append(r.cues, cue)
}

func keyRune(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func keyCode(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}
