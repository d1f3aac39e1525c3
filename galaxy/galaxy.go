// Package galaxy generates a fixed spiral of colored points that turns slowly about the Y axis
package galaxy

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

var ErrInvalidConfig = errors.New("invalid galaxy config")

type Config struct {
	Count           int
	Radius          float64
	Branches        int
	Spin            float64
	Randomness      float64
	RandomnessPower float64
	RotationSpeed   float64

	// InsideColor and OutsideColor are hex strings blended by radius
	InsideColor  string
	OutsideColor string
}

func DefaultConfig() Config {
	return Config{
		Count:           parameter.GalaxyCountDesktop,
		Radius:          parameter.GalaxyRadius,
		Branches:        parameter.GalaxyBranches,
		Spin:            parameter.GalaxySpin,
		Randomness:      parameter.GalaxyRandomness,
		RandomnessPower: parameter.GalaxyRandomnessPower,
		RotationSpeed:   parameter.GalaxyRotationSpeed,
		InsideColor:     parameter.GalaxyInsideColor,
		OutsideColor:    parameter.GalaxyOutsideColor,
	}
}

// Point is one galaxy particle in the unrotated frame
type Point struct {
	Base  mgl64.Vec3
	Color colorful.Color
}

type Galaxy struct {
	cfg    Config
	Points []Point
}

// New lays out cfg.Count points along cfg.Branches arms; the same seed gives the same galaxy
func New(cfg Config, seed uint64) (*Galaxy, error) {
	switch {
	case cfg.Count < 0:
		return nil, fmt.Errorf("%w: count %d", ErrInvalidConfig, cfg.Count)
	case cfg.Branches <= 0:
		return nil, fmt.Errorf("%w: branches %d", ErrInvalidConfig, cfg.Branches)
	case cfg.Radius <= 0:
		return nil, fmt.Errorf("%w: radius %f", ErrInvalidConfig, cfg.Radius)
	}
	inside, err := colorful.Hex(cfg.InsideColor)
	if err != nil {
		return nil, fmt.Errorf("%w: inside color: %v", ErrInvalidConfig, err)
	}
	outside, err := colorful.Hex(cfg.OutsideColor)
	if err != nil {
		return nil, fmt.Errorf("%w: outside color: %v", ErrInvalidConfig, err)
	}

	rng := vmath.NewFastRand(seed)
	g := &Galaxy{cfg: cfg, Points: make([]Point, cfg.Count)}
	for i := range g.Points {
		r := rng.Float64() * cfg.Radius
		branch := float64(i%cfg.Branches) / float64(cfg.Branches) * parameter.TwoPi
		angle := branch + r*cfg.Spin

		g.Points[i] = Point{
			Base: mgl64.Vec3{
				math.Cos(angle)*r + scatter(rng, cfg, r),
				scatter(rng, cfg, r),
				math.Sin(angle)*r + scatter(rng, cfg, r),
			},
			Color: inside.BlendRgb(outside, r/cfg.Radius),
		}
	}
	return g, nil
}

// scatter is a signed offset that clusters near zero for powers above 1
func scatter(rng *vmath.FastRand, cfg Config, r float64) float64 {
	v := math.Pow(rng.Float64(), cfg.RandomnessPower) * cfg.Randomness * r
	if rng.Float64() < 0.5 {
		return -v
	}
	return v
}

// Angle is the Y rotation at time t
func (g *Galaxy) Angle(t float64) float64 {
	return math.Mod(t*g.cfg.RotationSpeed, parameter.TwoPi)
}

// Positions writes every point rotated to time t into dst, reusing its capacity
func (g *Galaxy) Positions(t float64, dst []mgl64.Vec3) []mgl64.Vec3 {
	dst = dst[:0]
	angle := g.Angle(t)
	for i := range g.Points {
		dst = append(dst, vmath.RotateXZ(g.Points[i].Base, angle))
	}
	return dst
}
