// Package animation holds the per-instance formation and effect state machine
// All transitions go through Advance; State is a plain value owned by one instance
package animation

import (
	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

// Phase is the formation lifecycle stage
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseForming
	PhaseFormed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseForming:
		return "forming"
	case PhaseFormed:
		return "formed"
	default:
		return "unknown"
	}
}

// Timing holds the phase and effect durations in seconds
type Timing struct {
	FormationDuration float64
	InitialDelay      float64
	SettleDelay       float64
	CollapseWindow    float64
	BurstDelay        float64
	BurstWindow       float64
}

func DefaultTiming() Timing {
	return Timing{
		FormationDuration: parameter.FormationDuration,
		InitialDelay:      parameter.InitialFormDelay,
		SettleDelay:       parameter.SettleDelay,
		CollapseWindow:    parameter.CollapseWindow,
		BurstDelay:        parameter.BurstDelay,
		BurstWindow:       parameter.BurstWindow,
	}
}

// Inputs are the external signals sampled once per tick
type Inputs struct {
	// Scroll is the secondary morph fraction, clamped to [0,1]
	Scroll float64
	// TextChanged reports a new primary or secondary field for this instance
	TextChanged bool
	// Trigger starts the collapse window and schedules the burst
	Trigger bool
}

// Events are edge notifications produced by one Advance call
type Events struct {
	Formed          bool
	CollapseStarted bool
	BurstStarted    bool
}

// Any reports whether at least one event fired
func (e Events) Any() bool {
	return e.Formed || e.CollapseStarted || e.BurstStarted
}

// Timer is one effect window on the instance clock
type Timer struct {
	Start   float64
	Window  float64
	Active  bool
	Started bool
}

// Value samples the envelope at clock; inactive or not-yet-open timers are 0
func (tm Timer) Value(clock float64) float64 {
	if !tm.Active || clock < tm.Start {
		return 0
	}
	return Envelope(clock-tm.Start, tm.Window)
}

// Envelope is the symmetric triangle over one window: 0 -> 1 at the midpoint -> 0
// Outside [0, window) it is latched at 0 for any elapsed value
func Envelope(elapsed, window float64) float64 {
	if window <= 0 || elapsed < 0 || elapsed >= window {
		return 0
	}
	u := elapsed / window
	if u < 0.5 {
		return 2 * u
	}
	return 2 - 2*u
}

// State is the animation state of one mounted instance
type State struct {
	Phase Phase
	// Clock is the instance time in seconds since mount
	Clock float64
	// FormStart is the clock value at which the current formation begins
	FormStart float64

	Formation float64
	Secondary float64
	Collapse  float64
	Burst     float64

	CollapseTimer Timer
	BurstTimer    Timer

	// Formed latches once per formation cycle
	Formed bool
	// Epoch increments on every text change; deferred work stamped with an older epoch is stale
	Epoch uint64
}

// Advance returns the state dt seconds later under the given inputs
// Negative dt is treated as zero
func Advance(s State, dt float64, in Inputs, t Timing) (State, Events) {
	var ev Events
	if dt > 0 {
		s.Clock += dt
	}

	s.Secondary = vmath.Clamp01(in.Scroll)

	if in.TextChanged {
		delay := t.SettleDelay
		if s.Phase == PhaseIdle {
			delay = t.InitialDelay
		}
		s.Phase = PhasePending
		s.FormStart = s.Clock + delay
		s.Formation = 0
		s.Formed = false
		s.Epoch++
	}

	if in.Trigger {
		s.CollapseTimer = Timer{Start: s.Clock, Window: t.CollapseWindow, Active: true}
		s.BurstTimer = Timer{Start: s.Clock + t.BurstDelay, Window: t.BurstWindow, Active: true}
	}

	if s.Phase == PhasePending && s.Clock >= s.FormStart {
		s.Phase = PhaseForming
	}

	if s.Phase == PhaseForming {
		s.Formation = formationAt(s.Clock-s.FormStart, t.FormationDuration)
		if s.Formation >= 1 {
			s.Phase = PhaseFormed
		}
	}

	if !s.Formed && s.Formation >= 1 {
		s.Formed = true
		ev.Formed = true
	}

	s.Collapse, ev.CollapseStarted = stepTimer(&s.CollapseTimer, s.Clock)
	s.Burst, ev.BurstStarted = stepTimer(&s.BurstTimer, s.Clock)

	return s, ev
}

// Ready reports whether the instance has begun showing its shape
func (s State) Ready() bool {
	return s.Phase == PhaseForming || s.Phase == PhaseFormed
}

func formationAt(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return vmath.Clamp01(elapsed / duration)
}

// stepTimer samples the timer, reports the start edge, and retires it after its window
func stepTimer(tm *Timer, clock float64) (float64, bool) {
	if !tm.Active || clock < tm.Start {
		return 0, false
	}
	started := !tm.Started
	tm.Started = true
	v := tm.Value(clock)
	if clock-tm.Start >= tm.Window {
		tm.Active = false
	}
	return v, started
}
