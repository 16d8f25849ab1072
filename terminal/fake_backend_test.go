package terminal

import (
	"bytes"
	"sync"
	"time"
)

// fakeBackend is an in-memory Backend for tests
type fakeBackend struct {
	mu     sync.Mutex
	out    bytes.Buffer
	width  int
	height int

	initErr  error
	writeErr error
	readErr  error

	inCh chan []byte

	initCalls int
	finiCalls int
}

func newFakeBackend(width, height int) *fakeBackend {
	return &fakeBackend{
		width:  width,
		height: height,
		inCh:   make(chan []byte, 16),
	}
}

func (b *fakeBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initCalls++
	return b.initErr
}

func (b *fakeBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finiCalls++
}

func (b *fakeBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return 0, b.writeErr
	}
	return b.out.Write(p)
}

func (b *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	b.mu.Lock()
	readErr := b.readErr
	b.mu.Unlock()
	if readErr != nil {
		return nil, readErr
	}

	select {
	case <-stopCh:
		return nil, nil
	case data := <-b.inCh:
		return data, nil
	case <-time.After(10 * time.Millisecond):
		return nil, nil
	}
}

func (b *fakeBackend) setReadErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readErr = err
}

func (b *fakeBackend) setWriteErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
}

func (b *fakeBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

func (b *fakeBackend) resetOutput() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Reset()
}

func (b *fakeBackend) finiCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finiCalls
}
