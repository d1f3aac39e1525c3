// Package starfield keeps a fixed pool of stars and motion streaks around a moving camera
// Elements that fall too far away or behind the camera are respawned ahead of it in the same update
package starfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/vmath"
)

// Viewer supplies the camera pose for one update
type Viewer interface {
	Position() mgl64.Vec3
	Direction() mgl64.Vec3
}

// Star has a fixed look; only Position cycles
type Star struct {
	Position     mgl64.Vec3
	Size         float64
	Brightness   float64
	ColorTemp    float64 // 0 hot blue, 0.5 white, 1 cool red
	TwinklePhase float64
}

// Streak is a short line segment aligned with the view at respawn
type Streak struct {
	Head    mgl64.Vec3
	Tail    mgl64.Vec3
	Opacity float64
}

// Stats counts recycle events since creation
type Stats struct {
	Updates        uint64
	StarRespawns   uint64
	StreakRespawns uint64
}

// Field owns both pools; counts never change after New
type Field struct {
	cfg Config
	rng *vmath.FastRand

	Stars   []Star
	Streaks []Streak

	stats Stats
}

// sizeClass is one bucket of the star size distribution
type sizeClass struct {
	share float64 // cumulative
	min   float64
	span  float64
}

var sizeClasses = [...]sizeClass{
	{0.70, 1, 1}, // tiny
	{0.95, 2, 2}, // medium
	{1.00, 4, 3}, // bright
}

// tempClass is one bucket of the color temperature distribution
var tempClasses = [...]sizeClass{
	{0.15, 0, 0.3},     // blue-white
	{0.80, 0.3, 0.36},  // white-yellow
	{1.00, 0.66, 0.34}, // orange-red
}

func pick(classes []sizeClass, roll, u float64) float64 {
	for _, c := range classes {
		if roll < c.share {
			return c.min + u*c.span
		}
	}
	last := classes[len(classes)-1]
	return last.min + u*last.span
}

// New allocates both pools around the viewer
func New(cfg Config, view Viewer, seed uint64) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Field{
		cfg:     cfg,
		rng:     vmath.NewFastRand(seed),
		Stars:   make([]Star, cfg.Count),
		Streaks: make([]Streak, cfg.StreakCount),
	}

	eye := view.Position()
	for i := range f.Stars {
		f.Stars[i] = f.allocStar(eye)
	}

	dir := vmath.SafeNormalize(view.Direction())
	for i := range f.Streaks {
		f.Streaks[i].Opacity = f.rng.Range(cfg.StreakOpacityMin, cfg.StreakOpacitySpan)
		// Spread initial heads over the whole forward band so streaks do not arrive in lockstep
		d := f.rng.Float64() * (cfg.Streaks.SpawnMin + cfg.Streaks.SpawnSpan)
		f.placeStreak(&f.Streaks[i], eye, dir, d)
	}
	return f, nil
}

func (f *Field) allocStar(eye mgl64.Vec3) Star {
	r := f.cfg.ShellMin + f.cfg.ShellSpan*math.Pow(f.rng.Float64(), f.cfg.ShellBias)
	theta := f.rng.Angle()
	phi := math.Acos(2*f.rng.Float64() - 1)

	sp := math.Sin(phi)
	offset := mgl64.Vec3{r * sp * math.Cos(theta), r * sp * math.Sin(theta), r * math.Cos(phi)}

	return Star{
		Position:     eye.Add(offset),
		Size:         pick(sizeClasses[:], f.rng.Float64(), f.rng.Float64()),
		Brightness:   f.rng.Range(0.3, 0.7),
		ColorTemp:    pick(tempClasses[:], f.rng.Float64(), f.rng.Float64()),
		TwinklePhase: f.rng.Angle(),
	}
}

// Config returns the validated configuration
func (f *Field) Config() Config {
	return f.cfg
}

// Stats returns the recycle counters
func (f *Field) Stats() Stats {
	return f.stats
}

// Update moves every element against the view direction and respawns those outside the recycle region
func (f *Field) Update(view Viewer) {
	f.stats.Updates++
	eye := view.Position()
	dir := vmath.SafeNormalize(view.Direction())

	move := dir.Mul(-f.cfg.Speed)
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Position = s.Position.Add(move)
		if recycle(s.Position.Sub(eye), dir, f.cfg.Stars) {
			s.Position = f.spawn(eye, dir, f.cfg.Stars, f.rng.Range(f.cfg.Stars.SpawnMin, f.cfg.Stars.SpawnSpan))
			f.stats.StarRespawns++
		}
	}

	streakMove := move.Mul(f.cfg.StreakSpeedFactor)
	for i := range f.Streaks {
		s := &f.Streaks[i]
		s.Head = s.Head.Add(streakMove)
		s.Tail = s.Tail.Add(streakMove)
		if recycle(s.Head.Sub(eye), dir, f.cfg.Streaks) {
			f.placeStreak(s, eye, dir, f.rng.Range(f.cfg.Streaks.SpawnMin, f.cfg.Streaks.SpawnSpan))
			f.stats.StreakRespawns++
		}
	}
}

func recycle(rel, dir mgl64.Vec3, r Recycle) bool {
	return rel.LenSqr() > r.MaxRadiusSq || rel.Dot(dir) < -r.BehindLimit
}

// spawn places a point at distance d inside the cone, outside the donut hole
// cos(polar) is uniform so the cone is filled with even solid-angle density
func (f *Field) spawn(eye, dir mgl64.Vec3, r Recycle, d float64) mgl64.Vec3 {
	minCos := math.Cos(r.MaxAngle)
	maxCos := math.Cos(r.MinAngle)
	polar := math.Acos(vmath.Clamp(minCos+f.rng.Float64()*(maxCos-minCos), -1, 1))
	return eye.Add(vmath.ConeDirection(dir, polar, f.rng.Angle()).Mul(d))
}

func (f *Field) placeStreak(s *Streak, eye, dir mgl64.Vec3, d float64) {
	s.Head = f.spawn(eye, dir, f.cfg.Streaks, d)
	s.Tail = s.Head.Add(dir.Mul(f.rng.Range(f.cfg.StreakLengthMin, f.cfg.StreakLengthSpan)))
}
