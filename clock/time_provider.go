// Package clock supplies time sources for elapsed-time accounting.
package clock

import "time"

// TimeProvider is the time source consulted by the stopwatch
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time; the value carries a monotonic reading so Sub is immune to wall clock jumps
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
