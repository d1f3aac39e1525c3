// Package field holds per-particle attribute buffers and the per-frame displacement kernel
package field

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrBufferMismatch reports parallel buffers of unequal length
var ErrBufferMismatch = errors.New("particle buffer length mismatch")

// Field is a structure of arrays: index i of every slice describes particle i
// Slices are allocated together and never resized; a new shape means a new Field
type Field struct {
	Start     []mgl64.Vec3
	Target    []mgl64.Vec3
	Secondary []mgl64.Vec3

	Randomness []float64
	Speed      []float64
	Phase      []float64
	ColorSeed  []float64
}

// NewField allocates all buffers for n particles
func NewField(n int) *Field {
	return &Field{
		Start:      make([]mgl64.Vec3, n),
		Target:     make([]mgl64.Vec3, n),
		Secondary:  make([]mgl64.Vec3, n),
		Randomness: make([]float64, n),
		Speed:      make([]float64, n),
		Phase:      make([]float64, n),
		ColorSeed:  make([]float64, n),
	}
}

// Len returns the particle count; a nil field has none
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Target)
}

// Validate checks the parallel-array invariant
func (f *Field) Validate() error {
	if f == nil {
		return nil
	}
	n := len(f.Target)
	lengths := [...]struct {
		name string
		len  int
	}{
		{"start", len(f.Start)},
		{"secondary", len(f.Secondary)},
		{"randomness", len(f.Randomness)},
		{"speed", len(f.Speed)},
		{"phase", len(f.Phase)},
		{"colorSeed", len(f.ColorSeed)},
	}
	for _, l := range lengths {
		if l.len != n {
			return fmt.Errorf("%w: %s has %d, target has %d", ErrBufferMismatch, l.name, l.len, n)
		}
	}
	return nil
}

// Particle is a read-only view of one index across all buffers
type Particle struct {
	Start      mgl64.Vec3
	Target     mgl64.Vec3
	Secondary  mgl64.Vec3
	Randomness float64
	Speed      float64
	Phase      float64
	ColorSeed  float64
}

// Particle gathers index i; callers must have validated the field
func (f *Field) Particle(i int) Particle {
	return Particle{
		Start:      f.Start[i],
		Target:     f.Target[i],
		Secondary:  f.Secondary[i],
		Randomness: f.Randomness[i],
		Speed:      f.Speed[i],
		Phase:      f.Phase[i],
		ColorSeed:  f.ColorSeed[i],
	}
}
