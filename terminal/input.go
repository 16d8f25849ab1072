package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/stopwatch/constant"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey    EventType = iota
	EventError            // Read error
	EventClosed           // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Kind      KeyKind // Press unless the terminal reports otherwise
	Err       error   // For EventError
}

// inputReader handles raw stdin parsing
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Persistent buffer for stream assembly, not fixed size zero-alloc to avoid corrupting partial UTF-8 at boundary
	buf []byte
}

// Transient read errors back off from readRetryMin, doubling up to readRetryMax
const (
	readRetryMin = 10 * time.Millisecond
	readRetryMax = time.Second
)

// readRetryDelay returns the wait before the next read after n consecutive failures
func readRetryDelay(n int) time.Duration {
	d := readRetryMin
	for i := 1; i < n && d < readRetryMax; i++ {
		d *= 2
	}
	return min(d, readRetryMax)
}

// permanentReadError reports whether the input source can never deliver again
func permanentReadError(err error) bool {
	return errors.Is(err, ErrInputClosed) || errors.Is(err, io.EOF) || errors.Is(err, ErrNotTerminal)
}

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// newInputReader creates a new input reader
func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, constant.EventChannelSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Wait with timeout - don't block forever if read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
	}
}

// events returns the event channel
func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

// readLoop is the main input reading goroutine
func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Time the buffer has held a lone ESC
	var escPendingSince time.Time

	// Consecutive transient read errors
	var failures int

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			if permanentReadError(err) {
				return
			}

			failures++
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			case <-time.After(readRetryDelay(failures)):
			}
			continue
		}
		failures = 0

		if len(data) == 0 {
			// Timeout (poll) or empty read: a lone ESC older than escapeTimeout is a standalone Escape
			if len(r.buf) == 1 && r.buf[0] == 0x1b && !escPendingSince.IsZero() && time.Since(escPendingSince) >= escapeTimeout {
				r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
				escPendingSince = time.Time{}
			}
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)

		consumed := r.parseInput(r.buf)

		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}

		if len(r.buf) == 1 && r.buf[0] == 0x1b {
			if escPendingSince.IsZero() {
				escPendingSince = time.Now()
			}
		} else {
			escPendingSince = time.Time{}
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		select {
		case <-r.stopCh:
			return i
		default:
		}

		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}

			consumed, ev := r.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}

			// Only emit if not a swallowed unknown sequence
			if ev.Key != KeyNone || ev.Type != EventKey {
				r.sendEvent(ev)
			}
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			r.sendEvent(r.parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		if b >= 0x80 {
			if !utf8.FullRune(data[i:]) {
				return i
			}

			rn, size := utf8.DecodeRune(data[i:])
			if rn == utf8.RuneError && size <= 1 {
				// Invalid or overlong encoding, surrogate, or beyond U+10FFFF
				i++
				continue
			}
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			i += size
			continue
		}

		i++
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func (r *inputReader) parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	}

	if data[1] == '[' {
		return r.parseCSI(data)
	}
	if data[1] == 'O' {
		return r.parseSS3(data)
	}

	// Alt+Control character (ESC + 0x00-0x1F)
	if data[1] < 0x20 {
		ev := r.parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	return 2, Event{Type: EventKey, Key: KeyNone}
}

// parseCSI parses CSI sequence without allocation
func (r *inputReader) parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	end := 2
	maxScan := len(data)
	if maxScan > 32 {
		maxScan = 32
	}

	found := false
	for end < maxScan {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			found = true
			break
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}

	if !found {
		if maxScan == 32 {
			// Overlong without terminator, discard
			return maxScan, Event{Type: EventKey, Key: KeyNone}
		}
		return 0, Event{} // Incomplete
	}

	params := data[2:end]

	// Kitty keyboard protocol: CSI code[:alt] ; mods[:kind] ; text u
	if params[len(params)-1] == 'u' {
		return end, parseKittyKey(params[:len(params)-1])
	}

	if key, mod, ok := lookupCSI(params); ok {
		return end, Event{Type: EventKey, Key: key, Modifiers: mod}
	}

	// Unknown but valid CSI syntax - consume and return KeyNone
	return end, Event{Type: EventKey, Key: KeyNone}
}

// parseSS3 parses SS3 sequence without allocation, returns length even for unknown sequences
func (r *inputReader) parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// parseKittyKey decodes the parameter bytes of a CSI ... u key report
func parseKittyKey(params []byte) Event {
	// field 0: key code, field 1: modifiers, sub-field 1 of field 1: event kind
	var code, mods, kind int
	field, sub := 0, 0
	val, hasVal := 0, false

	commit := func() {
		if !hasVal {
			return
		}
		switch {
		case field == 0 && sub == 0:
			code = val
		case field == 1 && sub == 0:
			mods = val
		case field == 1 && sub == 1:
			kind = val
		}
	}

	for _, b := range params {
		switch {
		case b >= '0' && b <= '9':
			if val < 1<<20 {
				val = val*10 + int(b-'0')
			}
			hasVal = true
		case b == ':':
			commit()
			sub++
			val, hasVal = 0, false
		case b == ';':
			commit()
			field++
			sub = 0
			val, hasVal = 0, false
		default:
			return Event{Type: EventKey, Key: KeyNone}
		}
	}
	commit()

	ev := Event{Type: EventKey}

	// Modifier value is 1 + bitmask
	if mods > 1 {
		bits := mods - 1
		if bits&1 != 0 {
			ev.Modifiers |= ModShift
		}
		if bits&2 != 0 {
			ev.Modifiers |= ModAlt
		}
		if bits&4 != 0 {
			ev.Modifiers |= ModCtrl
		}
	}

	switch kind {
	case 2:
		ev.Kind = KeyRepeat
	case 3:
		ev.Kind = KeyRelease
	default:
		ev.Kind = KeyPress
	}

	if key, ok := kittyFunctional[code]; ok {
		ev.Key = key
		return ev
	}
	if (code >= 0x20 && code < 0x7f) || (code >= 0xa0 && code < 0xe000) || code > 0xf8ff {
		ev.Key = KeyRune
		ev.Rune = rune(code)
		return ev
	}
	// Private-use codepoints are kitty functional keys this parser does not map
	ev.Key = KeyNone
	return ev
}

// parseControl maps control characters to keys
func (r *inputReader) parseControl(b byte) Event {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x01:
		return Event{Type: EventKey, Key: KeyCtrlA}
	case 0x02:
		return Event{Type: EventKey, Key: KeyCtrlB}
	case 0x03:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case 0x04:
		return Event{Type: EventKey, Key: KeyCtrlD}
	case 0x05:
		return Event{Type: EventKey, Key: KeyCtrlE}
	case 0x06:
		return Event{Type: EventKey, Key: KeyCtrlF}
	case 0x07:
		return Event{Type: EventKey, Key: KeyCtrlG}
	case 0x08: // Ctrl+H or Backspace
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x0b:
		return Event{Type: EventKey, Key: KeyCtrlK}
	case 0x0c:
		return Event{Type: EventKey, Key: KeyCtrlL}
	case 0x0e:
		return Event{Type: EventKey, Key: KeyCtrlN}
	case 0x0f:
		return Event{Type: EventKey, Key: KeyCtrlO}
	case 0x10:
		return Event{Type: EventKey, Key: KeyCtrlP}
	case 0x11:
		return Event{Type: EventKey, Key: KeyCtrlQ}
	case 0x12:
		return Event{Type: EventKey, Key: KeyCtrlR}
	case 0x13:
		return Event{Type: EventKey, Key: KeyCtrlS}
	case 0x14:
		return Event{Type: EventKey, Key: KeyCtrlT}
	case 0x15:
		return Event{Type: EventKey, Key: KeyCtrlU}
	case 0x16:
		return Event{Type: EventKey, Key: KeyCtrlV}
	case 0x17:
		return Event{Type: EventKey, Key: KeyCtrlW}
	case 0x18:
		return Event{Type: EventKey, Key: KeyCtrlX}
	case 0x19:
		return Event{Type: EventKey, Key: KeyCtrlY}
	case 0x1a:
		return Event{Type: EventKey, Key: KeyCtrlZ}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// sendEvent sends an event to the channel, non-blocking
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop event
	}
}
