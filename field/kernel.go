package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

// Progress carries the animation scalars for one frame, each in [0,1]
type Progress struct {
	Formation float64
	Secondary float64
	Collapse  float64
	Burst     float64
}

// Effect returns the stronger of the two effect values
func (p Progress) Effect() float64 {
	return math.Max(p.Collapse, p.Burst)
}

// Pointer is the per-frame pointer sample in the particles' local XY plane
type Pointer struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2 // smoothed, units/sec
	Active   bool
}

// FrameInputs are read-only for the duration of one evaluation
type FrameInputs struct {
	Time     float64
	Progress Progress
	Pointer  Pointer

	// Eye and View are the camera position and unit view direction in local space
	Eye  mgl64.Vec3
	View mgl64.Vec3
}

// Sample is the evaluated render state of one particle
type Sample struct {
	Position mgl64.Vec3
	Color    colorful.Color
	Size     float64
	Alpha    float64
	Visible  bool
}

// Kernel holds the tunables of the displacement, size and color terms
type Kernel struct {
	Turbulence float64

	CollapseRadius      float64
	CollapseSpin        float64
	CollapseSpinFalloff float64

	BurstForce  float64
	BurstJitter float64

	PointerRadius       float64
	PointerStrength     float64
	PointerVelocityGain float64
	PointerVelocityCap  float64
	PointerMaxPull      float64
	PointerTrail        float64

	Breathing float64

	Pulse          float64
	PulseSizeGain  float64
	PulseAlphaGain float64

	SwayThreshold float64
	SwayYaw       float64
	SwayYawRate   float64
	SwayPitch     float64
	SwayPitchRate float64

	SizeBase       float64
	PerspectiveRef float64
	PerspectiveMin float64
	PerspectiveMax float64
	FormingScale   float64
	EffectSize     float64
	DepthNear      float64

	MinOpacity float64
}

func DefaultKernel() Kernel {
	return Kernel{
		Turbulence:          parameter.TurbulenceAmplitude,
		CollapseRadius:      parameter.CollapseRadius,
		CollapseSpin:        parameter.CollapseSpin,
		CollapseSpinFalloff: parameter.CollapseSpinFalloff,
		BurstForce:          parameter.BurstForce,
		BurstJitter:         parameter.BurstJitter,
		PointerRadius:       parameter.PointerRadius,
		PointerStrength:     parameter.PointerStrength,
		PointerVelocityGain: parameter.PointerVelocityGain,
		PointerVelocityCap:  parameter.PointerVelocityCap,
		PointerMaxPull:      parameter.PointerMaxPull,
		PointerTrail:        parameter.PointerTrail,
		Breathing:           parameter.BreathingAmplitude,
		Pulse:               parameter.PulseAmplitude,
		PulseSizeGain:       parameter.PulseSizeGain,
		PulseAlphaGain:      parameter.PulseAlphaGain,
		SwayThreshold:       parameter.SwayThreshold,
		SwayYaw:             parameter.SwayYaw,
		SwayYawRate:         parameter.SwayYawRate,
		SwayPitch:           parameter.SwayPitch,
		SwayPitchRate:       parameter.SwayPitchRate,
		SizeBase:            parameter.PointSizeBase,
		PerspectiveRef:      parameter.PerspectiveRef,
		PerspectiveMin:      parameter.PerspectiveMin,
		PerspectiveMax:      parameter.PerspectiveMax,
		FormingScale:        parameter.FormingSizeScale,
		EffectSize:          parameter.EffectSizeBoost,
		DepthNear:           parameter.DepthNear,
		MinOpacity:          parameter.MinimumOpacity,
	}
}

// EvaluateParticle computes one particle's render state
// Pure: depends only on its arguments. Displacement order is fixed; each term sees the previous result
func EvaluateParticle(p Particle, in FrameInputs, k Kernel) Sample {
	pos := Displace(p, in, k)
	pulse := k.pulse(p, in)
	a := k.alpha(in.Progress, pulse)
	return Sample{
		Position: pos,
		Color:    ParticleColor(p, in),
		Size:     k.pointSize(pos, in, pulse),
		Alpha:    a,
		Visible:  a*parameter.AlphaPeakCover >= k.MinOpacity,
	}
}

// Displace applies turbulence, primary morph, secondary morph, collapse, burst, pointer, pulse, idle and sway terms in order
func Displace(p Particle, in FrameInputs, k Kernel) mgl64.Vec3 {
	t := in.Progress.Formation
	time := in.Time

	pos := p.Start
	if t < 1 {
		pos = k.turbulence(pos, p, t, time)
	}

	e := vmath.EaseInOutCubic(t)
	pos = mix3(pos, p.Target, e)

	if s := in.Progress.Secondary; s > 0 {
		pos = mix3(pos, p.Secondary, s)
	}

	if c := in.Progress.Collapse; c > 0 {
		pos = k.collapse(pos, c)
	}

	if b := in.Progress.Burst; b > 0 {
		pos = k.burst(pos, p, b)
	}

	if t > 0 && in.Pointer.Active {
		pos = k.attract(pos, in.Pointer)
	}

	if pulse := k.pulse(p, in); pulse != 0 {
		pos = pos.Mul(1 + pulse)
	}

	if t >= 1 {
		pos = k.breathe(pos, p, time)
	}

	if t > k.SwayThreshold {
		pos = k.sway(pos, time)
	}
	return pos
}

// pulse is the per-particle radial beat, growing with formation
func (k Kernel) pulse(p Particle, in FrameInputs) float64 {
	return math.Sin(in.Time*3+p.Phase*10) * k.Pulse * in.Progress.Formation
}

// sway turns the whole shape about Y, then X
func (k Kernel) sway(pos mgl64.Vec3, time float64) mgl64.Vec3 {
	yaw := math.Sin(time*k.SwayYawRate) * k.SwayYaw
	pitch := math.Cos(time*k.SwayPitchRate) * k.SwayPitch
	return vmath.RotateYZ(vmath.RotateXZ(pos, -yaw), pitch)
}

func (k Kernel) turbulence(pos mgl64.Vec3, p Particle, t, time float64) mgl64.Vec3 {
	fade := (1 - t) * (1 - t)
	amp := math.Sin(time*p.Speed+p.Phase*parameter.TwoPi) * fade * p.Randomness * k.Turbulence
	return mgl64.Vec3{
		pos[0] + math.Sin(time*0.5+p.Phase*math.Pi)*amp,
		pos[1] + math.Cos(time*0.3+p.Phase*2)*amp,
		pos[2] + math.Sin(time*0.7+p.Phase*4)*amp*0.5,
	}
}

// collapse pulls toward the origin, fading to nothing at CollapseRadius, then spirals in XZ
func (k Kernel) collapse(pos mgl64.Vec3, c float64) mgl64.Vec3 {
	d := pos.Len()
	pull := c * (1 - vmath.Smoothstep(0, k.CollapseRadius, d))
	pos = pos.Sub(pos.Mul(pull))

	angle := c * (k.CollapseSpin + d*k.CollapseSpinFalloff)
	return vmath.RotateXZ(pos, angle)
}

// burst pushes radially outward with a self-damping force curve plus phase-keyed jitter
func (k Kernel) burst(pos mgl64.Vec3, p Particle, b float64) mgl64.Vec3 {
	s := vmath.Smoothstep(0, 1, b)
	force := s * k.BurstForce * (1 - s*0.5)
	pos = pos.Add(vmath.SafeNormalize(pos).Mul(force))

	j := s * k.BurstJitter
	return mgl64.Vec3{
		pos[0] + math.Sin(p.Phase*10)*j,
		pos[1] + math.Cos(p.Phase*7)*j,
		pos[2] + math.Sin(p.Phase*13)*j*0.5,
	}
}

// attract pulls toward the pointer within PointerRadius, harder when the pointer moves fast
func (k Kernel) attract(pos mgl64.Vec3, ptr Pointer) mgl64.Vec3 {
	delta := ptr.Position.Sub(mgl64.Vec2{pos[0], pos[1]})
	d := delta.Len()
	if d >= k.PointerRadius {
		return pos
	}

	falloff := 1 - d/k.PointerRadius
	speed := math.Min(ptr.Velocity.Len(), k.PointerVelocityCap)
	boost := 1 + k.PointerVelocityGain*speed
	pull := math.Min(k.PointerStrength*falloff*boost, k.PointerMaxPull)
	trail := k.PointerTrail * falloff

	return mgl64.Vec3{
		pos[0] + delta[0]*pull + ptr.Velocity[0]*trail,
		pos[1] + delta[1]*pull + ptr.Velocity[1]*trail,
		pos[2],
	}
}

func (k Kernel) breathe(pos mgl64.Vec3, p Particle, time float64) mgl64.Vec3 {
	amp := k.Breathing * (0.5 + p.Randomness)
	return mgl64.Vec3{
		pos[0] + math.Sin(time*1.3+p.Phase)*amp,
		pos[1] + math.Cos(time*1.1+p.Phase*1.7)*amp,
		pos[2] + math.Sin(time*0.9+p.Phase*2.3)*amp,
	}
}

// pointSize combines the clamped perspective factor, formation scale, pulse and effect boost
func (k Kernel) pointSize(pos mgl64.Vec3, in FrameInputs, pulse float64) float64 {
	t := in.Progress.Formation
	depth := pos.Sub(in.Eye).Dot(in.View)
	if depth < k.DepthNear {
		depth = k.DepthNear
	}
	perspective := vmath.Clamp(k.PerspectiveRef/depth, k.PerspectiveMin, k.PerspectiveMax)
	effect := 1 + in.Progress.Effect()*k.EffectSize
	return k.SizeBase * perspective * vmath.Mix(k.FormingScale, 1, t) * (1 + pulse*k.PulseSizeGain) * effect
}

func (k Kernel) alpha(pr Progress, pulse float64) float64 {
	a := vmath.Mix(parameter.AlphaForming, parameter.AlphaFormed, pr.Formation) * (parameter.AlphaPulseBase + pulse*k.PulseAlphaGain)
	return vmath.Mix(a, parameter.AlphaEffect, pr.Effect()*0.5)
}

func mix3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		vmath.Mix(a[0], b[0], t),
		vmath.Mix(a[1], b[1], t),
		vmath.Mix(a[2], b[2], t),
	}
}
