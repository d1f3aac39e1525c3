package starfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/starglyph/parameter"
)

// ErrInvalidConfig reports a configuration whose respawn band can land outside the recycle limits
var ErrInvalidConfig = errors.New("invalid starfield config")

// Recycle describes the keep-alive region and the forward respawn cone of one pool
type Recycle struct {
	// MaxRadiusSq is the squared camera distance beyond which an element is recycled
	MaxRadiusSq float64
	// BehindLimit is how far behind the camera plane an element may drift
	BehindLimit float64

	SpawnMin  float64
	SpawnSpan float64

	// MinAngle is the donut-hole half-angle around the view axis
	MinAngle float64
	// MaxAngle bounds the cone; placement is uniform in cos(polar) between the two
	MaxAngle float64
}

func (r Recycle) validate(name string) error {
	spawnMax := r.SpawnMin + r.SpawnSpan
	switch {
	case r.SpawnMin <= 0 || r.SpawnSpan < 0:
		return fmt.Errorf("%w: %s spawn band [%f, %f]", ErrInvalidConfig, name, r.SpawnMin, spawnMax)
	case r.MinAngle < 0 || r.MinAngle >= r.MaxAngle || r.MaxAngle > math.Pi:
		return fmt.Errorf("%w: %s cone angles [%f, %f]", ErrInvalidConfig, name, r.MinAngle, r.MaxAngle)
	case spawnMax*spawnMax > r.MaxRadiusSq:
		return fmt.Errorf("%w: %s spawn distance %f exceeds max radius %f", ErrInvalidConfig, name, spawnMax, math.Sqrt(r.MaxRadiusSq))
	}

	// Worst-case forward component of a fresh spawn
	worst := r.SpawnMin * math.Cos(r.MaxAngle)
	if c := math.Cos(r.MaxAngle); c < 0 {
		worst = spawnMax * c
	}
	if worst < -r.BehindLimit {
		return fmt.Errorf("%w: %s cone reaches %f behind the camera, limit %f", ErrInvalidConfig, name, -worst, r.BehindLimit)
	}
	return nil
}

// Config holds both pools
type Config struct {
	Count int
	// Speed is the per-update displacement opposite the view direction
	Speed float64

	ShellMin  float64
	ShellSpan float64
	// ShellBias is the exponent on the uniform radius roll; < 1 pushes stars outward
	ShellBias float64

	Stars Recycle

	StreakCount       int
	StreakSpeedFactor float64
	StreakLengthMin   float64
	StreakLengthSpan  float64
	StreakOpacityMin  float64
	StreakOpacitySpan float64

	Streaks Recycle
}

// DefaultConfig returns the desktop pool sizes and thresholds
func DefaultConfig() Config {
	return Config{
		Count:     parameter.StarCountDesktop,
		Speed:     parameter.StarSpeed,
		ShellMin:  parameter.StarShellMin,
		ShellSpan: parameter.StarShellSpan,
		ShellBias: parameter.StarShellBias,
		Stars: Recycle{
			MaxRadiusSq: parameter.StarMaxRadiusSq,
			BehindLimit: parameter.StarBehindLimit,
			SpawnMin:    parameter.StarSpawnMin,
			SpawnSpan:   parameter.StarSpawnSpan,
			MinAngle:    parameter.StarMinAngle,
			MaxAngle:    parameter.StarMaxAngle,
		},
		StreakCount:       parameter.StreakCountDesktop,
		StreakSpeedFactor: parameter.StreakSpeedFactor,
		StreakLengthMin:   parameter.StreakLengthMin,
		StreakLengthSpan:  parameter.StreakLengthSpan,
		StreakOpacityMin:  parameter.StreakOpacityMin,
		StreakOpacitySpan: parameter.StreakOpacitySpan,
		Streaks: Recycle{
			MaxRadiusSq: parameter.StreakMaxRadiusSq,
			BehindLimit: parameter.StreakBehindLimit,
			SpawnMin:    parameter.StreakSpawnMin,
			SpawnSpan:   parameter.StreakSpawnSpan,
			MinAngle:    parameter.StarMinAngle,
			MaxAngle:    parameter.StreakMaxAngle,
		},
	}
}

// Validate rejects configurations that could leave an element outside its recycle region after respawn
func (c Config) Validate() error {
	if c.Count < 0 || c.StreakCount < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidConfig)
	}
	if c.Speed < 0 || c.StreakSpeedFactor < 0 {
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	}
	if c.ShellBias <= 0 {
		return fmt.Errorf("%w: shell bias %f", ErrInvalidConfig, c.ShellBias)
	}
	if shell := c.ShellMin + c.ShellSpan; c.ShellMin < 0 || shell*shell > c.Stars.MaxRadiusSq {
		return fmt.Errorf("%w: allocation shell %f exceeds max radius", ErrInvalidConfig, shell)
	}
	if err := c.Stars.validate("stars"); err != nil {
		return err
	}
	if c.StreakCount > 0 {
		if err := c.Streaks.validate("streaks"); err != nil {
			return err
		}
	}
	return nil
}
