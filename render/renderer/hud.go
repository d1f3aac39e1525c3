package renderer

import (
	"fmt"

	"github.com/lixenwraith/starglyph/render"
)

var (
	hudFg     = render.RGB{R: 169, G: 177, B: 214}
	hudBg     = render.RGB{R: 22, G: 22, B: 30}
	hudAccent = render.RGB{R: 125, G: 207, B: 255}
	hudWarn   = render.RGB{R: 247, G: 118, B: 142}
	hudEdit   = render.RGB{R: 224, G: 175, B: 104}
)

// Status is the HUD snapshot the host refreshes every frame
type Status struct {
	Text      string
	Editing   bool
	Draft     string
	Secondary bool
	Phase     string
	Formation float64
	FPS       float64
	Particles int
	Stars     int
	Paused    bool
	Muted     bool
	Message   string // last notable event, e.g. font fallback
}

// HUDRenderer draws the status row below the scene area
type HUDRenderer struct {
	status  Status
	visible bool
}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{visible: true}
}

func (r *HUDRenderer) IsVisible() bool    { return r.visible }
func (r *HUDRenderer) SetVisible(on bool) { r.visible = on }

// Update replaces the snapshot
func (r *HUDRenderer) Update(s Status) {
	r.status = s
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.Rows
	if y >= ctx.ScreenHeight {
		return
	}
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetText(x, y, ' ', hudFg, hudBg)
	}

	s := r.status
	x := 1
	if s.Editing {
		x = buf.DrawString(x, y, "> "+s.Draft+"_", hudEdit, hudBg)
	} else {
		x = buf.DrawString(x, y, fmt.Sprintf("%q", s.Text), hudAccent, hudBg)
	}
	if s.Secondary {
		x = buf.DrawString(x, y, " [2nd]", hudAccent, hudBg)
	}

	x = buf.DrawString(x+2, y, fmt.Sprintf("%s %3.0f%%", s.Phase, s.Formation*100), hudFg, hudBg)
	x = buf.DrawString(x+2, y, fmt.Sprintf("%dp %ds", s.Particles, s.Stars), hudFg, hudBg)
	x = buf.DrawString(x+2, y, fmt.Sprintf("%.0ffps", s.FPS), hudFg, hudBg)

	if s.Paused {
		x = buf.DrawString(x+2, y, "PAUSED", hudWarn, hudBg)
	}
	if s.Muted {
		x = buf.DrawString(x+2, y, "MUTE", hudWarn, hudBg)
	}
	if s.Message != "" {
		buf.DrawString(x+2, y, s.Message, hudWarn, hudBg)
	}
}
