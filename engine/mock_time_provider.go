package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually stepped clock for frame loop tests
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

// NewMockTimeProvider creates a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Millis returns milliseconds since the start time
func (m *MockTimeProvider) Millis() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start).Milliseconds()
}

// SetTime jumps to t, earlier than start is allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
