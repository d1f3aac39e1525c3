package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/glyph"
	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

// GenParams configures scatter and depth distributions
type GenParams struct {
	StartRadiusMin  float64
	StartRadiusSpan float64
	StartDepthSpan  float64

	// DepthMax is the target z half-range at the horizontal center
	DepthMax float64
	// DepthEdge is the fraction of DepthMax left at the horizontal extremes
	DepthEdge float64

	SpeedMin  float64
	SpeedSpan float64
}

func DefaultGenParams() GenParams {
	return GenParams{
		StartRadiusMin:  parameter.StartRadiusMin,
		StartRadiusSpan: parameter.StartRadiusSpan,
		StartDepthSpan:  parameter.StartDepthSpan,
		DepthMax:        parameter.DepthEnvelopeMax,
		DepthEdge:       parameter.DepthEnvelopeEdge,
		SpeedMin:        parameter.SpeedMin,
		SpeedSpan:       parameter.SpeedSpan,
	}
}

// DepthEnvelope returns the allowed z half-range at shape-space x
// Cubic falloff of normalized distance from center: DepthMax at x=0, DepthMax*DepthEdge at |x|=halfWidth
func DepthEnvelope(x, halfWidth float64, p GenParams) float64 {
	nx := 0.0
	if halfWidth > 0 {
		nx = vmath.Clamp01(math.Abs(x) / halfWidth)
	}
	return p.DepthMax * (p.DepthEdge + (1-p.DepthEdge)*(1-nx*nx*nx))
}

// Generate allocates one particle per primary sample
// secondary may be nil; indices past its end fall back to a scatter point
func Generate(primary, secondary *glyph.SampleSet, p GenParams, rng *vmath.FastRand) *Field {
	n := primary.Len()
	f := NewField(n)

	for i := 0; i < n; i++ {
		pt := primary.Points[i]
		env := DepthEnvelope(pt[0], primary.HalfWidth, p)
		f.Target[i] = mgl64.Vec3{pt[0], pt[1], rng.Centered(2 * env)}
		f.Start[i] = scatterPoint(rng, p)

		f.Randomness[i] = rng.Float64()
		f.Speed[i] = rng.Range(p.SpeedMin, p.SpeedSpan)
		f.Phase[i] = rng.Angle()
		f.ColorSeed[i] = rng.Float64()

		switch {
		case secondary == nil:
			f.Secondary[i] = f.Target[i]
		case i < secondary.Len():
			sp := secondary.Points[i]
			senv := DepthEnvelope(sp[0], secondary.HalfWidth, p)
			f.Secondary[i] = mgl64.Vec3{sp[0], sp[1], rng.Centered(2 * senv)}
		default:
			f.Secondary[i] = scatterPoint(rng, p)
		}
	}
	return f
}

// scatterPoint draws a point on a randomized-radius disk plus random depth
func scatterPoint(rng *vmath.FastRand, p GenParams) mgl64.Vec3 {
	angle := rng.Angle()
	radius := rng.Range(p.StartRadiusMin, p.StartRadiusSpan)
	return mgl64.Vec3{
		math.Cos(angle) * radius,
		math.Sin(angle) * radius,
		rng.Centered(p.StartDepthSpan),
	}
}
