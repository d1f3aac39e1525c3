package engine

import (
	"log"
	"time"
)

// FrameStats summarizes one monitor interval
type FrameStats struct {
	Frames     int
	FPS        float64
	MeanFrame  time.Duration
	LongFrames int
}

// FrameMonitor measures frame rate over fixed real-time intervals
// Not safe for concurrent use; the frame loop owns it
type FrameMonitor struct {
	source    TimeProvider
	interval  time.Duration
	longFrame time.Duration
	warnFPS   float64

	windowStart time.Time
	last        time.Time
	frames      int
	long        int
	busy        time.Duration

	latest FrameStats
}

// NewFrameMonitor starts the first interval now
func NewFrameMonitor(source TimeProvider, interval, longFrame time.Duration, warnFPS float64) *FrameMonitor {
	now := source.Now()
	return &FrameMonitor{
		source:      source,
		interval:    interval,
		longFrame:   longFrame,
		warnFPS:     warnFPS,
		windowStart: now,
		last:        now,
	}
}

// Frame records one completed frame; at the end of an interval it returns the summary and true
func (m *FrameMonitor) Frame() (FrameStats, bool) {
	now := m.source.Now()
	dt := now.Sub(m.last)
	m.last = now

	m.frames++
	m.busy += dt
	if dt > m.longFrame {
		m.long++
	}

	window := now.Sub(m.windowStart)
	if window < m.interval {
		return FrameStats{}, false
	}

	stats := FrameStats{
		Frames:     m.frames,
		FPS:        float64(m.frames) / window.Seconds(),
		MeanFrame:  m.busy / time.Duration(m.frames),
		LongFrames: m.long,
	}
	m.latest = stats

	if stats.FPS < m.warnFPS {
		log.Printf("[monitor] low frame rate: %.1f fps, mean %v, %d long frames", stats.FPS, stats.MeanFrame, stats.LongFrames)
	} else {
		log.Printf("[monitor] %.1f fps, mean %v, %d long frames", stats.FPS, stats.MeanFrame, stats.LongFrames)
	}

	m.windowStart = now
	m.frames, m.long, m.busy = 0, 0, 0
	return stats, true
}

// Latest returns the most recent completed interval
func (m *FrameMonitor) Latest() FrameStats {
	return m.latest
}
