package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Line control
	csiEraseLine = []byte("\x1b[2K")
	crlf         = []byte("\r\n")

	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll when writing to the last column
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Kitty keyboard protocol: push disambiguate + report event types, pop on exit
	// Terminals without support ignore both
	csiKittyPush = []byte("\x1b[>3u")
	csiKittyPop  = []byte("\x1b[<u")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiBg256     = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B;m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [10]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorUp moves cursor up n rows without scrolling
func writeCursorUp(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('A')
}

// writeCursorDown moves cursor down n rows without scrolling
func writeCursorDown(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('B')
}

// writeCursorForward writes cursor forward N positions
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write([]byte("\x1b[C"))
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('C')
}

// writeCursorColumn moves cursor to column x (0-indexed) on the current row
func writeCursorColumn(w *bufio.Writer, x int) {
	w.Write(csi)
	writeInt(w, x+1)
	w.WriteByte('G')
}

// writeCursorMove moves cursor between viewport-relative positions using only relative vertical motion
// Absolute positioning is never used so the viewport stays anchored wherever the shell left the cursor
func writeCursorMove(w *bufio.Writer, fromY, toX, toY int) {
	if toY < fromY {
		writeCursorUp(w, fromY-toY)
	} else if toY > fromY {
		writeCursorDown(w, toY-fromY)
	}
	writeCursorColumn(w, toX)
}
