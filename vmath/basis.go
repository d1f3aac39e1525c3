package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the default up reference for camera-relative bases
var WorldUp = mgl64.Vec3{0, 1, 0}

// parallelEpsilon is the squared cross-product length below which view and up are treated as parallel
const parallelEpsilon = 1e-12

// SafeNormalize returns the unit vector, or zero for a zero-length input
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Basis returns right and up vectors perpendicular to a unit view direction
// Falls back to +X as the up reference when view is parallel to WorldUp
func Basis(view mgl64.Vec3) (right, up mgl64.Vec3) {
	ref := WorldUp
	cross := view.Cross(ref)
	if cross.LenSqr() < parallelEpsilon {
		ref = mgl64.Vec3{1, 0, 0}
		cross = view.Cross(ref)
	}
	right = SafeNormalize(cross)
	up = SafeNormalize(right.Cross(view))
	return right, up
}

// ConeDirection returns the unit vector at polar angle from view, rotated by azimuth around it
func ConeDirection(view mgl64.Vec3, polar, azimuth float64) mgl64.Vec3 {
	right, up := Basis(view)
	s := math.Sin(polar)
	lateral := right.Mul(math.Cos(azimuth) * s).Add(up.Mul(math.Sin(azimuth) * s))
	return view.Mul(math.Cos(polar)).Add(lateral)
}

// AngleBetween returns the angle in radians between two non-zero vectors
func AngleBetween(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	return math.Acos(Clamp(a.Dot(b)/(la*lb), -1, 1))
}

// RotateYZ rotates v around the X axis by angle radians
func RotateYZ(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return mgl64.Vec3{v[0], v[1]*c - v[2]*s, v[1]*s + v[2]*c}
}

// RotateXZ rotates v around the Y axis by angle radians
func RotateXZ(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return mgl64.Vec3{v[0]*c - v[2]*s, v[1], v[0]*s + v[2]*c}
}
