package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/parameter"
)

func TestDefaultFraming(t *testing.T) {
	c := New()
	pos := c.Position()
	if pos.Sub(mgl64.Vec3{0, 0, parameter.CameraDistance}).Len() > 1e-9 {
		t.Errorf("Expected eye on +Z at %f, got %v", parameter.CameraDistance, pos)
	}
	if c.Direction().Sub(mgl64.Vec3{0, 0, -1}).Len() > 1e-9 {
		t.Errorf("Expected view -Z, got %v", c.Direction())
	}
}

func TestOrbitKeepsDistanceAndClampsPitch(t *testing.T) {
	c := New()
	c.Orbit(0.7, 10)
	if c.Pitch != parameter.CameraPitchLimit {
		t.Errorf("Expected pitch clamped to %f, got %f", parameter.CameraPitchLimit, c.Pitch)
	}
	if d := c.Position().Sub(c.Target).Len(); math.Abs(d-c.Distance) > 1e-9 {
		t.Errorf("Expected distance %f, got %f", c.Distance, d)
	}
	if math.Abs(c.Direction().Len()-1) > 1e-9 {
		t.Errorf("Expected unit direction, got length %f", c.Direction().Len())
	}
}

func TestProjectTargetAtCenter(t *testing.T) {
	c := New()
	c.SetViewport(120, 40)

	ndc, depth, ok := c.Projector().Project(c.Target)
	if !ok {
		t.Fatal("Expected target in front of the camera")
	}
	if ndc.Len() > 1e-9 {
		t.Errorf("Expected target at NDC origin, got %v", ndc)
	}
	if math.Abs(depth-c.Distance) > 1e-6 {
		t.Errorf("Expected depth %f, got %f", c.Distance, depth)
	}

	if _, _, ok := c.Projector().Project(c.Position().Add(mgl64.Vec3{0, 0, 5})); ok {
		t.Error("Expected point behind the eye to be rejected")
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	c := New()
	c.SetViewport(160, 48)
	c.Orbit(0.3, -0.2)

	for _, pt := range []mgl64.Vec2{{0, 0}, {4, -2}, {-7.5, 3}} {
		ndc, _, ok := c.Projector().Project(mgl64.Vec3{pt[0], pt[1], 0})
		if !ok {
			t.Fatalf("Expected %v to project", pt)
		}
		back, ok := c.Unproject(ndc)
		if !ok {
			t.Fatalf("Expected %v to unproject", ndc)
		}
		if back.Sub(pt).Len() > 1e-6 {
			t.Errorf("Expected %v, got %v", pt, back)
		}
	}
}

func TestCellMapping(t *testing.T) {
	ndc := CellToNDC(0, 0, 100, 50)
	x, y := NDCToCell(ndc, 100, 50)
	if math.Abs(x-0.5) > 1e-9 || math.Abs(y-0.5) > 1e-9 {
		t.Errorf("Expected cell center (0.5, 0.5), got (%f, %f)", x, y)
	}
	if ndc[1] <= 0 {
		t.Errorf("Expected top row to have positive NDC y, got %f", ndc[1])
	}
}
