package main

import (
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/starglyph/animation"
)

func TestSampleEdges(t *testing.T) {
	timing := animation.DefaultTiming()
	step := 0.01
	c := Sample(timing, 10, step, 5)

	wantFormed := timing.InitialDelay + timing.FormationDuration
	if math.Abs(c.FormedAt-wantFormed) > 2*step {
		t.Errorf("Expected formed at %.2f, got %.2f", wantFormed, c.FormedAt)
	}
	if math.Abs(c.CollapseAt-5) > 2*step {
		t.Errorf("Expected collapse at 5, got %.2f", c.CollapseAt)
	}
	if math.Abs(c.BurstAt-(5+timing.BurstDelay)) > 2*step {
		t.Errorf("Expected burst at %.2f, got %.2f", 5+timing.BurstDelay, c.BurstAt)
	}

	if len(c.Formation) < 1000 || len(c.Collapse) != len(c.Formation) || len(c.Burst) != len(c.Formation) {
		t.Fatalf("Expected about 1000 samples per series, got %d/%d/%d", len(c.Formation), len(c.Collapse), len(c.Burst))
	}
	for i := range c.Formation {
		for _, v := range []float64{c.Formation[i], c.Collapse[i], c.Burst[i]} {
			if v < 0 || v > 1 {
				t.Fatalf("Expected values in [0,1], got %f at sample %d", v, i)
			}
		}
	}
}

func TestSampleWithoutTrigger(t *testing.T) {
	c := Sample(animation.DefaultTiming(), 3, 0.1, -1)
	if c.CollapseAt != -1 || c.BurstAt != -1 {
		t.Errorf("Expected no effect edges, got collapse %.2f burst %.2f", c.CollapseAt, c.BurstAt)
	}
	for i, v := range c.Collapse {
		if v != 0 {
			t.Fatalf("Expected flat collapse, got %f at sample %d", v, i)
		}
	}
}

func TestRender(t *testing.T) {
	out := Render(Sample(animation.DefaultTiming(), 8, 0.05, 5), 40, 6)
	for _, want := range []string{"formation", "collapse", "burst", "formed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}

	if empty := Render(Sample(animation.DefaultTiming(), 0, 0.05, 5), 40, 6); !strings.Contains(empty, "no samples") {
		t.Errorf("Expected empty notice, got %q", empty)
	}
}
