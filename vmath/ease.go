package vmath

import "math"

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Mix is GLSL mix: a*(1-t) + b*t
func Mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Smoothstep is GLSL smoothstep: Hermite ramp between edge0 and edge1
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// EaseInOutCubic is cubic near both ends with the steepest slope at t=0.5
// Exact at the endpoints: 0 -> 0, 1 -> 1
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// Mod returns x mod m in [0, m) for positive m, GLSL-style for negative x
func Mod(x, m float64) float64 {
	return x - m*math.Floor(x/m)
}
