package terminal

import "errors"

// ErrInputClosed is returned by Read once input can never deliver again (EOF, hangup)
var ErrInputClosed = errors.New("stdin closed")

// Backend abstracts platform-specific terminal operations.
// Tests substitute an in-memory implementation.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs.
	// A nil slice with nil error means timeout or stop.
	// Errors wrapping ErrInputClosed are permanent; any other error may be transient.
	Read(stopCh <-chan struct{}) ([]byte, error)
}
