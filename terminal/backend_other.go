//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "errors"

// ErrNotTerminal is returned by Init when no supported terminal is attached
var ErrNotTerminal = errors.New("inline terminal requires a unix tty")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error { return ErrNotTerminal }

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Size() (int, int) { return 80, 24 }

func (unsupportedBackend) Write(p []byte) (int, error) { return 0, ErrNotTerminal }

func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error) { return nil, ErrNotTerminal }

func resetTerminalMode() {}
