package renderer

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/render"
	"github.com/lixenwraith/starglyph/starfield"
)

// streakColor is a cold white for motion lines
var streakColor = colorful.Color{R: 0.75, G: 0.85, B: 1.0}

// StarRenderer splats every projected star into the light plane
type StarRenderer struct {
	field *starfield.Field
}

func NewStarRenderer(f *starfield.Field) *StarRenderer {
	return &StarRenderer{field: f}
}

// Render implements SystemRenderer
func (r *StarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range r.field.Stars {
		s := &r.field.Stars[i]
		x, y, depth, ok := ctx.ProjectToCell(s.Position)
		if !ok {
			continue
		}
		intensity := s.Intensity(ctx.Time)
		cover := s.PointSize(depth, ctx.Time) * parameter.CellSizeScale * intensity
		buf.AddLightF(x, y, starfield.StarColor(s.ColorTemp), intensity*parameter.StarCellBrightness, cover)
	}
}

// StreakRenderer draws each streak as a line fading from head to tail
type StreakRenderer struct {
	field *starfield.Field
}

func NewStreakRenderer(f *starfield.Field) *StreakRenderer {
	return &StreakRenderer{field: f}
}

// Render implements SystemRenderer
func (r *StreakRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range r.field.Streaks {
		s := &r.field.Streaks[i]
		hx, hy, _, okHead := ctx.ProjectToCell(s.Head)
		tx, ty, _, okTail := ctx.ProjectToCell(s.Tail)
		if !okHead || !okTail {
			continue
		}
		DrawLine(buf, hx, hy, tx, ty, streakColor, s.Opacity*parameter.StreakBrightness)
	}
}

// DrawLine steps one cell at a time from (x0,y0) to (x1,y1), fading linearly to zero
func DrawLine(buf *render.RenderBuffer, x0, y0, x1, y1 float64, c colorful.Color, peak float64) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		buf.AddLightF(x0, y0, c, peak, peak)
		return
	}
	inv := 1 / float64(steps)
	for i := 0; i <= steps; i++ {
		t := float64(i) * inv
		w := peak * (1 - t)
		buf.AddLightF(x0+dx*t, y0+dy*t, c, w, w)
	}
}
