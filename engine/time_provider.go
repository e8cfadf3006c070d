package engine

import "time"

// TimeProvider abstracts the clock the tick scheduler runs on
type TimeProvider interface {
	Now() time.Time
	// After delivers once d has elapsed on this clock
	After(d time.Duration) <-chan time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// After wraps time.After
func (p *MonotonicTimeProvider) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
