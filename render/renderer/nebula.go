package renderer

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/render"
	"github.com/lixenwraith/starglyph/vmath"
)

// Nebula palette: deep purple, dark blue, dark magenta
var (
	nebulaPurple  = colorful.Color{R: 0.23, G: 0.06, B: 0.38}
	nebulaBlue    = colorful.Color{R: 0.06, G: 0.12, B: 0.36}
	nebulaMagenta = colorful.Color{R: 0.36, G: 0.06, B: 0.29}
)

// NebulaRenderer paints drifting fractal noise into the background plane
type NebulaRenderer struct {
	noise   *perlin.Perlin
	visible bool
}

// NewNebulaRenderer seeds the noise field
func NewNebulaRenderer(seed int64) *NebulaRenderer {
	return &NebulaRenderer{
		noise:   perlin.NewPerlin(parameter.NebulaPerlinA, parameter.NebulaPerlinB, parameter.NebulaPerlinN, seed),
		visible: true,
	}
}

func (r *NebulaRenderer) IsVisible() bool    { return r.visible }
func (r *NebulaRenderer) SetVisible(on bool) { r.visible = on }

// fbm sums octaves of noise, normalized to roughly [0,1]
func (r *NebulaRenderer) fbm(x, y, z float64) float64 {
	sum, amp, norm := 0.0, 1.0, 0.0
	for o := 0; o < parameter.NebulaOctaves; o++ {
		sum += amp * r.noise.Noise3D(x, y, z)
		norm += amp
		x, y, z = x*2, y*2, z*2
		amp *= 0.5
	}
	return vmath.Clamp01(0.5 + 0.5*sum/norm)
}

// Sample returns the nebula color and opacity at a cell
func (r *NebulaRenderer) Sample(x, y, cols, rows int, t float64) (colorful.Color, float64) {
	// Aspect-corrected coordinates so the clouds are not stretched vertically
	fx := float64(x) * parameter.NebulaScale
	fy := float64(y) * parameter.NebulaScale * parameter.CellAspect
	drift := t * parameter.NebulaDrift

	n1 := r.fbm(fx+drift, fy, drift)
	n2 := r.fbm(fx+5.2, fy-1.3-drift, drift*0.5)

	c := nebulaPurple.BlendRgb(nebulaBlue, n1).BlendRgb(nebulaMagenta, n2*n2)

	// Radial falloff from the screen center, 1 at the nearest edge
	half := 0.5 * math.Min(float64(cols), float64(rows)*parameter.CellAspect)
	if half <= 0 {
		return c, 0
	}
	dx := (float64(x) + 0.5 - 0.5*float64(cols)) / half
	dy := (float64(y) + 0.5 - 0.5*float64(rows)) * parameter.CellAspect / half
	mask := 1 - vmath.Smoothstep(0, parameter.NebulaRadialEnd, math.Hypot(dx, dy))

	return c, parameter.NebulaAlpha * mask * (0.4 + 0.6*n1)
}

// Render implements SystemRenderer
func (r *NebulaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for y := 0; y < ctx.Rows; y++ {
		for x := 0; x < ctx.Cols; x++ {
			c, a := r.Sample(x, y, ctx.Cols, ctx.Rows, ctx.Time)
			if a <= 0 {
				continue
			}
			buf.SetBg(x, y, render.FromColorful(c).Scale(2), render.BlendAdd, a)
		}
	}
}
