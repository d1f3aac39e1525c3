package field

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

// Palette is the 5-stop color cycle swept across the text
var Palette = [5]colorful.Color{
	{R: 0.0, G: 1.0, B: 0.53}, // cyan
	{R: 0.0, G: 0.53, B: 1.0}, // blue
	{R: 1.0, G: 0.0, B: 0.43}, // magenta
	{R: 1.0, G: 0.67, B: 0.0}, // orange
	{R: 0.67, G: 0.0, B: 1.0}, // purple
}

// EffectTint is the golden tint blended in during collapse/burst
var EffectTint = colorful.Color{R: 1.0, G: 0.5, B: 0.0}

// CycleColor returns the palette color at a cycle position in [0, 5)
func CycleColor(phase float64) colorful.Color {
	phase = vmath.Mod(phase, float64(len(Palette)))
	idx := int(math.Floor(phase))
	if idx >= len(Palette) {
		idx = len(Palette) - 1
	}
	next := (idx + 1) % len(Palette)
	return Palette[idx].BlendRgb(Palette[next], phase-float64(idx))
}

// ParticleColor computes the swept gradient color with shimmer and effect boost
// Components may exceed 1 under boost; presentation clamps
func ParticleColor(p Particle, in FrameInputs) colorful.Color {
	t := in.Progress.Formation
	boost := in.Progress.Effect()

	nx := (p.Target[0] + parameter.ColorSweepWidth/2) / parameter.ColorSweepWidth
	gradient := nx + in.Time*parameter.ColorSweepSpeed + boost*parameter.ColorEffectSpeed
	c := CycleColor(gradient * 2)

	shimmer := parameter.ShimmerAmplitude * math.Sin(in.Time*8+nx*10+p.ColorSeed*parameter.TwoPi) * t
	c = colorful.Color{R: c.R + shimmer, G: c.G + shimmer, B: c.B + shimmer}

	if boost > 0 {
		c = c.BlendRgb(EffectTint, boost*parameter.EffectTintAmount)
		gain := 1 + boost*parameter.EffectBrightBoost
		c = colorful.Color{R: c.R * gain, G: c.G * gain, B: c.B * gain}
	}
	return c
}
