package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing.
// Channels from After fire only when SetTime or Advance moves past their deadline
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	waiters     []mockWaiter
}

type mockWaiter struct {
	deadline time.Time
	ch       chan time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// After returns a channel that fires once mocked time reaches now+d
func (m *MockTimeProvider) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- m.currentTime
		return ch
	}
	m.waiters = append(m.waiters, mockWaiter{deadline: m.currentTime.Add(d), ch: ch})
	return ch
}

// Waiters returns the number of pending After channels
func (m *MockTimeProvider) Waiters() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiters)
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
	m.fireLocked()
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.fireLocked()
}

func (m *MockTimeProvider) fireLocked() {
	pending := m.waiters[:0]
	for _, w := range m.waiters {
		if !w.deadline.After(m.currentTime) {
			w.ch <- m.currentTime
			continue
		}
		pending = append(pending, w)
	}
	m.waiters = pending
}
