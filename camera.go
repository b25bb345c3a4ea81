package atelier

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// poleEpsilon keeps the polar angle away from the spherical poles where the
// view basis degenerates.
const poleEpsilon = 0.01

// OrbitCamera is a Z-up spherical camera around a pivot point. Position is
// derived from (radius, polar, azimuth) and never stored.
type OrbitCamera struct {
	Radius  float32
	Polar   float32 // radians, clamped to [poleEpsilon, pi-poleEpsilon]
	Azimuth float32 // radians, wrapped to [0, 2*pi)
	Pivot   mgl32.Vec3
	Near    float32
	Far     float32
	FovDeg  float32

	settings Settings
}

func NewOrbitCamera(s Settings) *OrbitCamera {
	c := &OrbitCamera{settings: s, FovDeg: s.FieldOfViewDeg}
	c.Reset()
	return c
}

// Reset restores the default pose: pivot at the origin, default radius and
// angles.
func (c *OrbitCamera) Reset() {
	c.Radius = c.settings.DefaultRadius
	c.Polar = clampPolar(c.settings.DefaultPolar)
	c.Azimuth = wrapAngle(c.settings.DefaultAzimuth)
	c.Pivot = mgl32.Vec3{}
	c.RefreshClipRange()
}

// Orbit adjusts the spherical angles by the given radian deltas. Polar is
// clamped away from the poles, azimuth wraps.
func (c *OrbitCamera) Orbit(dAzimuth, dPolar float32) {
	c.Azimuth = wrapAngle(c.Azimuth + dAzimuth)
	c.Polar = clampPolar(c.Polar + dPolar)
	c.RefreshClipRange()
}

// Pan translates the pivot in the view plane. Deltas are in pixels; the
// world-space step scales with the current radius so panning feels uniform
// at any zoom.
func (c *OrbitCamera) Pan(dRightPx, dUpPx float32) {
	forward := c.ViewDir()
	right := forward.Cross(c.Up())
	if right.Len() < geomEpsilon {
		return
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	step := c.settings.PanSensitivity * c.Radius * 0.1
	c.Pivot = c.Pivot.Add(right.Mul(dRightPx * step)).Add(up.Mul(dUpPx * step))
	c.RefreshClipRange()
}

// Dolly scales the radius by the given factor and clamps it to the
// configured range.
func (c *OrbitCamera) Dolly(factor float32) {
	c.Radius = mgl32.Clamp(c.Radius*factor, c.settings.MinRadius, c.settings.MaxRadius)
	c.RefreshClipRange()
}

// SetPose points the camera from an explicit position toward a focal point
// by decomposing the offset into spherical coordinates.
func (c *OrbitCamera) SetPose(position, focal mgl32.Vec3) {
	c.Pivot = focal
	offset := position.Sub(focal)
	r := offset.Len()
	if r < geomEpsilon {
		r = c.settings.MinRadius
		offset = mgl32.Vec3{0, 0, r}
	}
	c.Radius = mgl32.Clamp(r, c.settings.MinRadius, c.settings.MaxRadius)
	c.Polar = clampPolar(float32(math.Acos(float64(offset.Z() / r))))
	c.Azimuth = wrapAngle(float32(math.Atan2(float64(offset.Y()), float64(offset.X()))))
	c.RefreshClipRange()
}

func (c *OrbitCamera) Position() mgl32.Vec3 {
	sp, cp := math.Sincos(float64(c.Polar))
	sa, ca := math.Sincos(float64(c.Azimuth))
	offset := mgl32.Vec3{
		float32(sp * ca),
		float32(sp * sa),
		float32(cp),
	}.Mul(c.Radius)
	return c.Pivot.Add(offset)
}

func (c *OrbitCamera) FocalPoint() mgl32.Vec3 { return c.Pivot }

// Up is +Z everywhere except near the poles, where it flips to +Y so the
// view basis stays well defined.
func (c *OrbitCamera) Up() mgl32.Vec3 {
	if c.Polar <= poleEpsilon+1e-4 || c.Polar >= math.Pi-poleEpsilon-1e-4 {
		return mgl32.Vec3{0, 1, 0}
	}
	return mgl32.Vec3{0, 0, 1}
}

// ViewDir is the unit vector from the camera position toward the pivot.
func (c *OrbitCamera) ViewDir() mgl32.Vec3 {
	return c.Pivot.Sub(c.Position()).Normalize()
}

func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Pivot, c.Up())
}

func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovDeg), aspect, c.Near, c.Far)
}

// RefreshClipRange recomputes the near/far planes from the current radius.
// Every pose mutation calls this so depth precision follows the zoom level.
func (c *OrbitCamera) RefreshClipRange() {
	c.Near = max(0.001, c.Radius*0.01)
	c.Far = c.Radius * 100
}

// Named view presets.

func (c *OrbitCamera) TopView()    { c.setAngles(poleEpsilon, c.Azimuth) }
func (c *OrbitCamera) BottomView() { c.setAngles(math.Pi-poleEpsilon, c.Azimuth) }
func (c *OrbitCamera) FrontView()  { c.setAngles(math.Pi/2, 3*math.Pi/2) }
func (c *OrbitCamera) BackView()   { c.setAngles(math.Pi/2, math.Pi/2) }
func (c *OrbitCamera) RightView()  { c.setAngles(math.Pi/2, 0) }
func (c *OrbitCamera) LeftView()   { c.setAngles(math.Pi/2, math.Pi) }

func (c *OrbitCamera) setAngles(polar, azimuth float32) {
	c.Polar = clampPolar(polar)
	c.Azimuth = wrapAngle(azimuth)
	c.RefreshClipRange()
}

func clampPolar(p float32) float32 {
	return mgl32.Clamp(p, poleEpsilon, math.Pi-poleEpsilon)
}

func wrapAngle(a float32) float32 {
	m := math.Mod(float64(a), 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return float32(m)
}
