package renderer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/galaxy"
	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/render"
)

// GalaxyRenderer splats the rotating spiral additively behind the stars
type GalaxyRenderer struct {
	galaxy    *galaxy.Galaxy
	positions []mgl64.Vec3
	visible   bool
}

func NewGalaxyRenderer(g *galaxy.Galaxy) *GalaxyRenderer {
	return &GalaxyRenderer{
		galaxy:    g,
		positions: make([]mgl64.Vec3, 0, len(g.Points)),
		visible:   true,
	}
}

func (r *GalaxyRenderer) IsVisible() bool    { return r.visible }
func (r *GalaxyRenderer) SetVisible(on bool) { r.visible = on }

// Render implements SystemRenderer
func (r *GalaxyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.positions = r.galaxy.Positions(ctx.Time, r.positions)
	for i, pos := range r.positions {
		x, y, _, ok := ctx.ProjectToCell(pos)
		if !ok {
			continue
		}
		buf.AddLightF(x, y, r.galaxy.Points[i].Color, parameter.GalaxyOpacity, parameter.GalaxyCover)
	}
}
