package engine

import "time"

// MockTimeProvider is a hand-stepped clock for tests. Now never moves on
// its own; tests advance it between frames, which keeps every timer
// comparison deterministic. Like the rest of the engine it is meant for
// the single loop goroutine.
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
