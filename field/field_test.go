package field

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/glyph"
	"github.com/lixenwraith/starglyph/vmath"
)

func gridSet(cols, rows int) *glyph.SampleSet {
	set := &glyph.SampleSet{}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			x := float64(c) - float64(cols-1)/2
			y := float64(r) - float64(rows-1)/2
			set.Points = append(set.Points, mgl64.Vec2{x, y})
		}
	}
	set.HalfWidth = float64(cols-1) / 2
	set.HalfHeight = float64(rows-1) / 2
	return set
}

func TestGenerateCountMatchesPrimary(t *testing.T) {
	primary := gridSet(12, 5)
	f := Generate(primary, nil, DefaultGenParams(), vmath.NewFastRand(1))

	if f.Len() != primary.Len() {
		t.Errorf("Expected %d particles, got %d", primary.Len(), f.Len())
	}
	if err := f.Validate(); err != nil {
		t.Errorf("Expected valid field, got %v", err)
	}
}

func TestGenerateEmpty(t *testing.T) {
	f := Generate(&glyph.SampleSet{}, nil, DefaultGenParams(), vmath.NewFastRand(1))
	if f.Len() != 0 {
		t.Errorf("Expected 0 particles, got %d", f.Len())
	}

	f = Generate(nil, nil, DefaultGenParams(), vmath.NewFastRand(1))
	if f.Len() != 0 {
		t.Errorf("Expected 0 particles for nil set, got %d", f.Len())
	}
}

func TestGenerateDepthWithinEnvelope(t *testing.T) {
	p := DefaultGenParams()
	primary := gridSet(31, 3)
	f := Generate(primary, nil, p, vmath.NewFastRand(7))

	for i := 0; i < f.Len(); i++ {
		env := DepthEnvelope(f.Target[i][0], primary.HalfWidth, p)
		if math.Abs(f.Target[i][2]) > env+1e-12 {
			t.Errorf("Particle %d: expected |z| <= %f, got %f", i, env, f.Target[i][2])
		}
	}
}

func TestDepthEnvelopeShape(t *testing.T) {
	p := DefaultGenParams()

	if got := DepthEnvelope(0, 10, p); math.Abs(got-p.DepthMax) > 1e-12 {
		t.Errorf("Expected %f at center, got %f", p.DepthMax, got)
	}
	if got := DepthEnvelope(10, 10, p); math.Abs(got-p.DepthMax*p.DepthEdge) > 1e-12 {
		t.Errorf("Expected %f at edge, got %f", p.DepthMax*p.DepthEdge, got)
	}
	if got := DepthEnvelope(25, 10, p); math.Abs(got-p.DepthMax*p.DepthEdge) > 1e-12 {
		t.Errorf("Expected clamp beyond edge, got %f", got)
	}

	prev := math.Inf(1)
	for x := 0.0; x <= 10; x += 0.5 {
		v := DepthEnvelope(x, 10, p)
		if v > prev {
			t.Fatalf("Expected non-increasing envelope, rose at x=%f", x)
		}
		prev = v
	}
}

func TestGenerateStartDistribution(t *testing.T) {
	p := DefaultGenParams()
	f := Generate(gridSet(20, 10), nil, p, vmath.NewFastRand(3))

	for i, s := range f.Start {
		r := math.Hypot(s[0], s[1])
		if r < p.StartRadiusMin-1e-9 || r > p.StartRadiusMin+p.StartRadiusSpan+1e-9 {
			t.Errorf("Particle %d: start radius %f out of range", i, r)
		}
		if math.Abs(s[2]) > p.StartDepthSpan/2+1e-9 {
			t.Errorf("Particle %d: start depth %f out of range", i, s[2])
		}
		if f.Phase[i] < 0 || f.Phase[i] >= 2*math.Pi {
			t.Errorf("Particle %d: phase %f out of range", i, f.Phase[i])
		}
		if f.Speed[i] < p.SpeedMin || f.Speed[i] >= p.SpeedMin+p.SpeedSpan {
			t.Errorf("Particle %d: speed %f out of range", i, f.Speed[i])
		}
	}
}

func TestGenerateSecondaryMapping(t *testing.T) {
	p := DefaultGenParams()
	primary := gridSet(10, 4)
	secondary := gridSet(5, 4)
	f := Generate(primary, secondary, p, vmath.NewFastRand(11))

	for i := 0; i < f.Len(); i++ {
		sec := f.Secondary[i]
		if i < secondary.Len() {
			want := secondary.Points[i]
			if sec[0] != want[0] || sec[1] != want[1] {
				t.Errorf("Particle %d: expected secondary xy %v, got %v", i, want, sec)
			}
			continue
		}
		r := math.Hypot(sec[0], sec[1])
		if r < p.StartRadiusMin-1e-9 {
			t.Errorf("Particle %d: expected scatter fallback, got radius %f", i, r)
		}
	}
}

func TestGenerateNoSecondaryCopiesTarget(t *testing.T) {
	f := Generate(gridSet(6, 6), nil, DefaultGenParams(), vmath.NewFastRand(5))
	for i := 0; i < f.Len(); i++ {
		if f.Secondary[i] != f.Target[i] {
			t.Fatalf("Particle %d: expected secondary == target, got %v vs %v", i, f.Secondary[i], f.Target[i])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(gridSet(8, 8), nil, DefaultGenParams(), vmath.NewFastRand(42))
	b := Generate(gridSet(8, 8), nil, DefaultGenParams(), vmath.NewFastRand(42))
	for i := 0; i < a.Len(); i++ {
		if a.Particle(i) != b.Particle(i) {
			t.Fatalf("Particle %d differs between identical seeds", i)
		}
	}
}

func TestValidateMismatch(t *testing.T) {
	f := NewField(4)
	f.Phase = f.Phase[:3]

	err := f.Validate()
	if !errors.Is(err, ErrBufferMismatch) {
		t.Errorf("Expected ErrBufferMismatch, got %v", err)
	}
}

func TestValidateNil(t *testing.T) {
	var f *Field
	if err := f.Validate(); err != nil {
		t.Errorf("Expected nil field to validate, got %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("Expected 0 length, got %d", f.Len())
	}
}
