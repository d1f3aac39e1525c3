package vmath

import "math"

// FastRand is a xorshift64 generator
// Seeded instances are reproducible, which the sampler and generator tests rely on
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, lo+span)
func (r *FastRand) Range(lo, span float64) float64 {
	return lo + r.Float64()*span
}

// Centered returns a uniform value in [-span/2, span/2)
func (r *FastRand) Centered(span float64) float64 {
	return (r.Float64() - 0.5) * span
}

// Angle returns a uniform angle in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}
