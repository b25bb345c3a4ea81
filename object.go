package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type ObjectId string

func newObjectId() ObjectId { return ObjectId(uuid.NewString()) }

type ObjectKind int

const (
	KindPrimitive ObjectKind = iota
	KindImported
	KindLight
	KindCamera
)

type LightKind int

const (
	LightPoint LightKind = iota
	LightSun
	LightSpot
	LightArea
)

// LightParams is the role payload carried by light icon objects. Direction
// is re-derived from the icon position whenever the object moves.
type LightParams struct {
	Kind       LightKind
	Color      [3]float32
	Intensity  float32
	FocalPoint mgl32.Vec3
	Direction  mgl32.Vec3
}

// CameraParams is the role payload carried by scene-camera icon objects. The
// focal point tracks the icon at a fixed look-ahead distance along ViewDir.
type CameraParams struct {
	ViewDir    mgl32.Vec3
	ViewUp     mgl32.Vec3
	FocalPoint mgl32.Vec3
	FovDeg     float32
}

// SceneObject is one manipulable entry in the scene registry. Orientation is
// Euler angles in degrees, applied in X, Y, Z order.
type SceneObject struct {
	Id          ObjectId
	Name        string
	Kind        ObjectKind
	TypeName    string
	Position    mgl32.Vec3
	Orientation mgl32.Vec3
	Scale       mgl32.Vec3
	Visible     bool
	Opacity     float32
	Surface     Surface
	Light       *LightParams
	Camera      *CameraParams
}

func newSceneObject(name string, kind ObjectKind, surface Surface) *SceneObject {
	return &SceneObject{
		Id:      newObjectId(),
		Name:    name,
		Kind:    kind,
		Scale:   mgl32.Vec3{1, 1, 1},
		Visible: true,
		Opacity: 1,
		Surface: surface,
	}
}

// NewPrimitiveObject wraps a surface produced by a MeshSource for the given
// primitive type name.
func NewPrimitiveObject(typeName string, surface Surface) *SceneObject {
	o := newSceneObject(typeName, KindPrimitive, surface)
	o.TypeName = typeName
	return o
}

func NewImportedObject(name string, surface Surface) *SceneObject {
	return newSceneObject(name, KindImported, surface)
}

// NewLightObject creates a light icon aimed at the world origin.
func NewLightObject(kind LightKind, icon Surface) *SceneObject {
	o := newSceneObject("light", KindLight, icon)
	o.Position = mgl32.Vec3{0, 0, 5}
	o.Light = &LightParams{
		Kind:      kind,
		Color:     [3]float32{1, 1, 1},
		Intensity: 1,
	}
	o.syncRolePayload(0)
	return o
}

// NewCameraObject creates a scene-camera icon looking at the world origin.
func NewCameraObject(icon Surface) *SceneObject {
	o := newSceneObject("camera", KindCamera, icon)
	o.Position = mgl32.Vec3{0, 5, 15}
	dir := o.Position.Mul(-1).Normalize()
	o.Camera = &CameraParams{
		ViewDir: dir,
		ViewUp:  mgl32.Vec3{0, 0, 1},
		FovDeg:  30,
	}
	return o
}

// Rotation converts the Euler orientation to a quaternion.
func (o *SceneObject) Rotation() mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(o.Orientation.X()),
		mgl32.DegToRad(o.Orientation.Y()),
		mgl32.DegToRad(o.Orientation.Z()),
		mgl32.XYZ,
	)
}

func (o *SceneObject) ObjectToWorld() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	r := o.Rotation().Mat4()
	s := mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

func (o *SceneObject) WorldToObject() mgl32.Mat4 {
	sx, sy, sz := o.Scale.X(), o.Scale.Y(), o.Scale.Z()
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	s := mgl32.Scale3D(1/sx, 1/sy, 1/sz)
	r := o.Rotation().Conjugate().Mat4()
	t := mgl32.Translate3D(-o.Position.X(), -o.Position.Y(), -o.Position.Z())
	return s.Mul4(r).Mul4(t)
}

// WorldBounds returns the axis-aligned box that encloses the transformed
// local bounds.
func (o *SceneObject) WorldBounds() (mgl32.Vec3, mgl32.Vec3) {
	bmin, bmax := o.Surface.Bounds()
	o2w := o.ObjectToWorld()

	corners := [8]mgl32.Vec3{
		{bmin.X(), bmin.Y(), bmin.Z()},
		{bmax.X(), bmin.Y(), bmin.Z()},
		{bmin.X(), bmax.Y(), bmin.Z()},
		{bmax.X(), bmax.Y(), bmin.Z()},
		{bmin.X(), bmin.Y(), bmax.Z()},
		{bmax.X(), bmin.Y(), bmax.Z()},
		{bmin.X(), bmax.Y(), bmax.Z()},
		{bmax.X(), bmax.Y(), bmax.Z()},
	}

	wmin := mgl32.TransformCoordinate(corners[0], o2w)
	wmax := wmin
	for _, c := range corners[1:] {
		w := mgl32.TransformCoordinate(c, o2w)
		wmin = vecMin(wmin, w)
		wmax = vecMax(wmax, w)
	}
	return wmin, wmax
}

// IntersectRay tests the world-space ray against the object's oriented
// bounding box and returns the distance along the ray to the nearest hit.
func (o *SceneObject) IntersectRay(r Ray) (float32, bool) {
	w2o := o.WorldToObject()
	localOrigin := mgl32.TransformCoordinate(r.Origin, w2o)
	localDir := mgl32.TransformNormal(r.Direction, w2o)
	if localDir.Len() < geomEpsilon {
		return 0, false
	}

	bmin, bmax := o.Surface.Bounds()
	tNear, ok := intersectAABB(localOrigin, localDir, bmin, bmax)
	if !ok {
		return 0, false
	}

	localHit := localOrigin.Add(localDir.Mul(tNear))
	worldHit := mgl32.TransformCoordinate(localHit, o.ObjectToWorld())
	return worldHit.Sub(r.Origin).Len(), true
}

// syncRolePayload recomputes the derived light/camera payload fields after a
// position change. Plain geometry objects are unaffected.
func (o *SceneObject) syncRolePayload(lookAhead float32) {
	switch {
	case o.Light != nil:
		aim := o.Light.FocalPoint
		if o.Light.Kind == LightSun {
			aim = mgl32.Vec3{}
		}
		dir := aim.Sub(o.Position)
		if dir.Len() > geomEpsilon {
			o.Light.Direction = dir.Normalize()
		}
	case o.Camera != nil:
		o.Camera.FocalPoint = o.Position.Add(o.Camera.ViewDir.Mul(lookAhead))
	}
}
