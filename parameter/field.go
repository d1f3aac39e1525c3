package parameter

import "math"

// Particle field generation
const (
	// StartRadiusMin/Span place scattered start positions on a disk rim around the framing
	StartRadiusMin  = 20.0
	StartRadiusSpan = 30.0

	// StartDepthSpan is the full z range of scattered start positions
	StartDepthSpan = 20.0

	// DepthEnvelopeMax is the half-range of target z at the horizontal center of the shape
	DepthEnvelopeMax = 1.0

	// DepthEnvelopeEdge is the fraction of DepthEnvelopeMax kept at the horizontal extremes
	DepthEnvelopeEdge = 0.15

	// SpeedMin/Span bound the per-particle turbulence frequency
	SpeedMin  = 0.5
	SpeedSpan = 2.0
)

// Per-frame evaluator
const (
	TwoPi = 2 * math.Pi

	// TurbulenceAmplitude scales the pre-formation wander
	TurbulenceAmplitude = 5.0

	// CollapseRadius is the distance at which the collapse pull fades to zero
	CollapseRadius = 30.0
	// CollapseSpin is the XZ rotation (radians) at full collapse independent of distance
	CollapseSpin = 10.0
	// CollapseSpinFalloff adds rotation per unit distance from the origin
	CollapseSpinFalloff = 0.5

	// BurstForce is the peak outward displacement before self-damping
	BurstForce = 30.0
	// BurstJitter is the per-particle direction jitter at full burst
	BurstJitter = 2.0

	// PointerRadius is the attraction radius in local XY units
	PointerRadius = 5.0
	// PointerStrength is the pull fraction at zero distance with a still pointer
	PointerStrength = 0.2
	// PointerVelocityGain scales the pull by smoothed pointer speed (units/sec)
	PointerVelocityGain = 0.05
	// PointerVelocityCap bounds the speed used for the boost
	PointerVelocityCap = 40.0
	// PointerMaxPull keeps the pull below a full snap onto the pointer
	PointerMaxPull = 0.9
	// PointerTrail drags particles along with the pointer velocity (seconds of travel)
	PointerTrail = 0.02

	// BreathingAmplitude is the idle oscillation per axis at randomness 0
	BreathingAmplitude = 0.03

	// PulseAmplitude is the peak radial scale of the formed pulse; size and alpha follow it by their gains
	PulseAmplitude = 0.02
	PulseSizeGain  = 0.2
	PulseAlphaGain = 0.1

	// Sway turns the formed text about Y then X once formation passes SwayThreshold
	SwayThreshold = 0.5
	SwayYaw       = 0.05
	SwayYawRate   = 0.2
	SwayPitch     = 0.02
	SwayPitchRate = 0.3

	// Point size
	PointSizeBase    = 3.0
	PerspectiveRef   = 300.0
	PerspectiveMin   = 0.1
	PerspectiveMax   = 5.0
	FormingSizeScale = 2.0 / 3.0
	EffectSizeBoost  = 0.5
	DepthNear        = 0.1

	// Color
	ColorSweepWidth   = 30.0
	ColorSweepSpeed   = 0.2
	ColorEffectSpeed  = 5.0
	ShimmerAmplitude  = 0.1
	EffectTintAmount  = 0.2
	EffectBrightBoost = 0.3

	// Opacity
	AlphaForming   = 0.1
	AlphaFormed    = 0.3
	AlphaEffect    = 0.4
	// AlphaPulseBase is the alpha multiplier at zero pulse
	AlphaPulseBase = 0.8
	AlphaPeakCover = 0.8
	MinimumOpacity = 0.01
)
