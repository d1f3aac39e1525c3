package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/camera"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.log = append(*r.log, r.name)
}

func (r *recordingRenderer) IsVisible() bool { return r.visible }

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Expected simulation screen init, got %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	var calls []string
	o := NewRenderOrchestrator(simScreen(t, 8, 4), ColorModeTrueColor)

	o.Register(&recordingRenderer{name: "hud", log: &calls, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "stars", log: &calls, visible: true}, PriorityStars)
	o.Register(&recordingRenderer{name: "nebula", log: &calls, visible: true}, PriorityBackground)
	o.Register(&recordingRenderer{name: "stars2", log: &calls, visible: true}, PriorityStars)
	o.Register(&recordingRenderer{name: "hidden", log: &calls, visible: false}, PriorityParticles)

	o.RenderFrame(NewRenderContext(camera.New(), 0, false, 8, 4, 1))

	want := []string{"nebula", "stars", "stars2", "hud"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, calls[i])
		}
	}
}

func TestOrchestratorResize(t *testing.T) {
	o := NewRenderOrchestrator(simScreen(t, 8, 4), ColorModeTrueColor)
	o.Resize(20, 10)

	if o.Buffer().Width() != 20 || o.Buffer().Height() != 10 {
		t.Errorf("Expected 20x10 buffer, got %dx%d", o.Buffer().Width(), o.Buffer().Height())
	}
}

func TestRenderContextReservesHUD(t *testing.T) {
	ctx := NewRenderContext(camera.New(), 1.5, true, 80, 24, 1)

	if ctx.Rows != 23 || ctx.Cols != 80 {
		t.Errorf("Expected 80x23 scene area, got %dx%d", ctx.Cols, ctx.Rows)
	}
	if !ctx.IsPaused || ctx.Time != 1.5 {
		t.Errorf("Expected paused at 1.5, got %v at %f", ctx.IsPaused, ctx.Time)
	}
}

func TestProjectToCellCenter(t *testing.T) {
	cam := camera.New()
	cam.SetViewport(80, 23)
	ctx := NewRenderContext(cam, 0, false, 80, 24, 1)

	x, y, depth, ok := ctx.ProjectToCell(cam.Target)
	if !ok {
		t.Fatal("Expected target to project")
	}
	if x < 39 || x > 41 || y < 10.5 || y > 12.5 {
		t.Errorf("Expected target near the center cell, got %.2f,%.2f", x, y)
	}
	if depth <= 0 {
		t.Errorf("Expected positive depth, got %f", depth)
	}

	// Behind the eye
	behind := cam.Position().Add(cam.Position().Sub(cam.Target))
	if _, _, _, ok := ctx.ProjectToCell(behind); ok {
		t.Error("Expected point behind the eye to be rejected")
	}

	// Far off to the side
	if _, _, _, ok := ctx.ProjectToCell(mgl64.Vec3{1000, 0, 0}); ok {
		t.Error("Expected point outside the frustum to be rejected")
	}
}
