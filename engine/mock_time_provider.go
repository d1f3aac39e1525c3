package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually stepped clock for frame-loop tests
// Time is the start instant plus an atomic nanosecond offset, so tests may step it from any goroutine
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.offset.Load()))
}

// Elapsed returns the total step since the start instant
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}

// SetTime jumps to t; moving before the start instant yields a negative Elapsed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// AdvanceSeconds steps by a float64 frame delta, the unit the scene clock works in
func (m *MockTimeProvider) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}

// StepFrames advances n frames at the given rate and returns the new elapsed time
func (m *MockTimeProvider) StepFrames(n, fps int) time.Duration {
	if fps > 0 && n > 0 {
		m.Advance(time.Duration(n) * time.Second / time.Duration(fps))
	}
	return m.Elapsed()
}
