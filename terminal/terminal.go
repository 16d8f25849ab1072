package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// DefaultViewportHeight is the number of rows reserved when Options.Height is unset
const DefaultViewportHeight = 10

// Options configures an inline terminal
type Options struct {
	ColorMode ColorMode
	Height    int // Rows reserved below the cursor
}

// Terminal provides low-level access to an inline viewport
type Terminal interface {
	// Init enters raw mode, hides cursor and reserves the viewport rows
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns viewport dimensions fixed at Init
	Size() (width, height int)

	// ColorMode returns the color capability used for output
	ColorMode() ColorMode

	// Flush writes cell buffer to the viewport
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int) error

	// PollEvent blocks until next input event
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend

	output      *outputBuffer
	input       *inputReader
	syntheticCh chan Event

	reqHeight int
	width     int
	height    int

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a new inline Terminal on stdin/stdout
func New(opts Options) Terminal {
	return newTerminal(newBackend(), opts)
}

func newTerminal(b Backend, opts Options) *termImpl {
	h := opts.Height
	if h <= 0 {
		h = DefaultViewportHeight
	}
	return &termImpl{
		backend:     b,
		syntheticCh: make(chan Event, 16),
		reqHeight:   h,
		output:      newOutputBuffer(backendWriter{b}, opts.ColorMode),
	}
}

// backendWriter adapts Backend to io.Writer for the buffered output
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

// Init enters raw mode and reserves the inline viewport
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return errors.New("terminal already finalized")
	}
	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	w, h := t.backend.Size()
	if h > t.reqHeight || h <= 0 {
		h = t.reqHeight
	}
	t.width, t.height = w, h
	t.output.resize(w, h)

	if err := t.writeRaw(csiCursorHide); err != nil {
		t.backend.Fini()
		return fmt.Errorf("hide cursor: %w", err)
	}

	// Prevents terminal scroll/wrap on last-column writes
	if err := t.writeRaw(csiAutoWrapOff); err != nil {
		t.backend.Fini()
		return fmt.Errorf("disable auto-wrap: %w", err)
	}

	// Release and repeat arrive as CSI u events with a kind field
	if err := t.writeRaw(csiKittyPush); err != nil {
		t.restoreModes()
		t.backend.Fini()
		return fmt.Errorf("enable key event reporting: %w", err)
	}

	if err := t.output.reserve(); err != nil {
		t.restoreModes()
		t.backend.Fini()
		return fmt.Errorf("reserve viewport: %w", err)
	}

	t.input = newInputReader(t.backend)
	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.input != nil {
		t.input.stop()
	}

	// Best effort: keep the last frame visible and move the cursor below it
	t.output.release()
	t.restoreModes()

	t.backend.Fini()

	t.finalized = true
}

// restoreModes undoes the mode changes made by Init
func (t *termImpl) restoreModes() {
	t.writeRaw(csiKittyPop)
	t.writeRaw(csiSGR0)
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiCursorShow)
}

// Size returns viewport dimensions
func (t *termImpl) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// ColorMode returns the color capability used for output
func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// Flush writes cell buffer to terminal
// Holds lock for entire operation to prevent race with Fini
func (t *termImpl) Flush(cells []Cell, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	// Viewport geometry is fixed at Init; drop mismatched frames
	if width != t.width || height != t.height {
		return nil
	}

	return t.output.flush(cells, width, height)
}

// PollEvent blocks until next input event
func (t *termImpl) PollEvent() Event {
	// Check synthetic events first
	select {
	case ev := <-t.syntheticCh:
		return ev
	default:
	}

	t.mu.Lock()
	input := t.input
	t.mu.Unlock()

	if input == nil {
		return <-t.syntheticCh
	}

	select {
	case ev := <-t.syntheticCh:
		return ev
	case ev := <-input.events():
		return ev
	}
}

// PostEvent injects a synthetic event
func (t *termImpl) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
		// Channel full, drop
	}
}

// writeRaw writes raw bytes to output
func (t *termImpl) writeRaw(data []byte) error {
	_, err := t.backend.Write(data)
	return err
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiKittyPop)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiCursorShow)
	w.Write(crlf)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
