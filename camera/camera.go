// Package camera is the orbit camera shared by the text centerpiece and the starfield
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

// Camera orbits Target at Distance; Yaw 0 and Pitch 0 look down -Z
type Camera struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64
	Pitch    float64

	FOV    float64 // vertical, degrees
	Aspect float64 // width/height
	Near   float64
	Far    float64
}

// New returns the default framing for the text centerpiece
func New() Camera {
	return Camera{
		Distance: parameter.CameraDistance,
		FOV:      parameter.CameraFOV,
		Aspect:   1,
		Near:     parameter.CameraNear,
		Far:      parameter.CameraFar,
	}
}

// Position returns the eye in world space
func (c Camera) Position() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	offset := mgl64.Vec3{
		c.Distance * cp * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Cos(c.Yaw),
	}
	return c.Target.Add(offset)
}

// Direction returns the unit view direction
func (c Camera) Direction() mgl64.Vec3 {
	dir := vmath.SafeNormalize(c.Target.Sub(c.Position()))
	if dir.LenSqr() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return dir
}

// Orbit changes yaw and pitch, keeping pitch inside the pole limit
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw = vmath.Mod(c.Yaw+dyaw, parameter.TwoPi)
	c.Pitch = vmath.Clamp(c.Pitch+dpitch, -parameter.CameraPitchLimit, parameter.CameraPitchLimit)
}

// Translate moves the orbit target, and so the eye, by d
func (c *Camera) Translate(d mgl64.Vec3) {
	c.Target = c.Target.Add(d)
}

// SetViewport derives the aspect ratio from a cell grid; cells are CellAspect times taller than wide
func (c *Camera) SetViewport(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	c.Aspect = float64(cols) / (float64(rows) * parameter.CellAspect)
}

func (c Camera) View() mgl64.Mat4 {
	up := vmath.WorldUp
	if math.Abs(c.Direction().Dot(up)) > 0.999 {
		up = mgl64.Vec3{0, 0, -1}
	}
	return mgl64.LookAtV(c.Position(), c.Target, up)
}

func (c Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection is Projection * View
func (c Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Projector caches the view-projection matrix for a frame of projections
type Projector struct {
	vp mgl64.Mat4
}

func (c Camera) Projector() Projector {
	return Projector{vp: c.ViewProjection()}
}

// Project maps a world point to NDC; depth is the clip w (view-space distance along the view axis)
// ok is false for points at or behind the eye
func (p Projector) Project(world mgl64.Vec3) (ndc mgl64.Vec2, depth float64, ok bool) {
	clip := p.vp.Mul4x1(world.Vec4(1))
	if clip[3] <= 0 {
		return mgl64.Vec2{}, clip[3], false
	}
	inv := 1 / clip[3]
	return mgl64.Vec2{clip[0] * inv, clip[1] * inv}, clip[3], true
}

// Unproject casts the NDC pointer through the camera and intersects the z=0 plane
// ok is false when the ray is parallel to the plane or the hit lies behind the eye
func (c Camera) Unproject(ndc mgl64.Vec2) (mgl64.Vec2, bool) {
	inv := c.ViewProjection().Inv()
	near := unprojectPoint(inv, ndc, -1)
	far := unprojectPoint(inv, ndc, 1)
	dir := far.Sub(near)
	if math.Abs(dir[2]) < 1e-12 {
		return mgl64.Vec2{}, false
	}
	t := -near[2] / dir[2]
	if t < 0 {
		return mgl64.Vec2{}, false
	}
	hit := near.Add(dir.Mul(t))
	return mgl64.Vec2{hit[0], hit[1]}, true
}

func unprojectPoint(inv mgl64.Mat4, ndc mgl64.Vec2, z float64) mgl64.Vec3 {
	v := inv.Mul4x1(mgl64.Vec4{ndc[0], ndc[1], z, 1})
	return v.Vec3().Mul(1 / v[3])
}

// CellToNDC maps a cell center on a cols x rows grid to NDC, Y up
func CellToNDC(col, row, cols, rows int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(col)+0.5)/float64(cols)*2 - 1,
		1 - (float64(row)+0.5)/float64(rows)*2,
	}
}

// NDCToCell maps NDC to fractional cell coordinates
func NDCToCell(ndc mgl64.Vec2, cols, rows int) (x, y float64) {
	return (ndc[0] + 1) * 0.5 * float64(cols), (1 - ndc[1]) * 0.5 * float64(rows)
}
