package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/field"
)

// PointerTracker smooths pointer velocity with an exponential filter
// Call Update once per frame with the latest position, even when the pointer did not move
type PointerTracker struct {
	smoothing float64

	pos    mgl64.Vec2
	vel    mgl64.Vec2
	active bool
	primed bool
}

// NewPointerTracker creates a tracker; smoothing is the filter rate in 1/sec
func NewPointerTracker(smoothing float64) *PointerTracker {
	return &PointerTracker{smoothing: smoothing}
}

// Update feeds one frame; an inactive pointer resets velocity so re-entry does not spike
func (p *PointerTracker) Update(pos mgl64.Vec2, active bool, dt float64) {
	if !active {
		p.active, p.primed = false, false
		p.vel = mgl64.Vec2{}
		return
	}
	p.active = true
	if !p.primed || dt <= 0 {
		p.pos = pos
		p.primed = true
		return
	}

	raw := pos.Sub(p.pos).Mul(1 / dt)
	alpha := 1 - math.Exp(-p.smoothing*dt)
	p.vel = p.vel.Add(raw.Sub(p.vel).Mul(alpha))
	p.pos = pos
}

// Pointer returns the per-frame kernel input
func (p *PointerTracker) Pointer() field.Pointer {
	return field.Pointer{Position: p.pos, Velocity: p.vel, Active: p.active}
}
