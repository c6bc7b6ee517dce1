package engine

import "time"

// TimeProvider supplies wall-clock time to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct {
	epoch time.Time
}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{epoch: time.Now()}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Millis returns milliseconds elapsed since epoch using the monotonic reading
// Immune to wall-clock adjustments
func (p *MonotonicTimeProvider) Millis() int64 {
	return time.Since(p.epoch).Milliseconds()
}

// UnixMillis converts any provider reading to the frame loop's millisecond timestamp
func UnixMillis(tp TimeProvider) int64 {
	if m, ok := tp.(interface{ Millis() int64 }); ok {
		return m.Millis()
	}
	return tp.Now().UnixMilli()
}
