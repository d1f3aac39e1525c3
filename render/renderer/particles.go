package renderer

import (
	"github.com/lixenwraith/starglyph/field"
	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/render"
	"github.com/lixenwraith/starglyph/scene"
)

// InstanceSource lists the mounted text instances in draw order
type InstanceSource interface {
	Instances() []*scene.Instance
}

// ParticleRenderer splats the evaluated frames of every visible instance
type ParticleRenderer struct {
	source InstanceSource
}

func NewParticleRenderer(src InstanceSource) *ParticleRenderer {
	return &ParticleRenderer{source: src}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, inst := range r.source.Instances() {
		if !inst.Visible() {
			continue
		}
		DrawFrame(ctx, buf, inst.Frame)
	}
}

// DrawFrame splats one evaluated frame; discarded samples are skipped
func DrawFrame(ctx render.RenderContext, buf *render.RenderBuffer, fr *field.Frame) {
	for i := 0; i < fr.Len(); i++ {
		s := &fr.Samples[i]
		if !s.Visible {
			continue
		}
		x, y, _, ok := ctx.ProjectToCell(s.Position)
		if !ok {
			continue
		}
		buf.AddLightF(x, y, s.Color, s.Alpha, s.Size*parameter.CellSizeScale*s.Alpha)
	}
}
