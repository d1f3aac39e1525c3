package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides scene time that stops while paused
// Animation and starfield motion read it; the frame monitor reads real time
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	realStart time.Time

	isPaused        atomic.Bool
	pauseStart      time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a clock starting at zero elapsed scene time
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source:    source,
		realStart: source.Now(),
	}
}

// Elapsed returns scene time since creation, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStart.Sub(pc.realStart) - pc.totalPausedTime
	}
	return pc.source.Now().Sub(pc.realStart) - pc.totalPausedTime
}

// Seconds is Elapsed as float seconds
func (pc *PausableClock) Seconds() float64 {
	return pc.Elapsed().Seconds()
}

// RealTime returns the underlying source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops scene time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStart = pc.source.Now()
	}
}

// Resume continues scene time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStart.IsZero() {
			pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
			pc.pauseStart = time.Time{}
		}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStart.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
