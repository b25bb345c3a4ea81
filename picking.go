package atelier

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const geomEpsilon = 1e-6

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// ObjectSource yields the objects eligible for picking. The scene registry
// implements it; hidden objects are never returned.
type ObjectSource interface {
	VisibleObjects() []*SceneObject
}

// Picker converts pointer coordinates into world-space rays, object hits and
// world points, using the renderer's projection and the orbit camera's
// reference plane.
type Picker struct {
	renderer Renderer
	camera   *OrbitCamera
	objects  ObjectSource
}

func NewPicker(renderer Renderer, camera *OrbitCamera, objects ObjectSource) *Picker {
	return &Picker{renderer: renderer, camera: camera, objects: objects}
}

// ScreenRay builds the world-space ray under the given screen point.
func (p *Picker) ScreenRay(x, y float32) (Ray, bool) {
	return screenRay(p.renderer, x, y)
}

// screenRay unprojects the screen point at the near and far planes and spans
// a ray between them.
func screenRay(r Renderer, x, y float32) (Ray, bool) {
	screen := mgl32.Vec2{x, y}
	near, ok := r.Unproject(screen, 0)
	if !ok {
		return Ray{}, false
	}
	far, ok := r.Unproject(screen, 1)
	if !ok {
		return Ray{}, false
	}
	dir := far.Sub(near)
	if dir.Len() < geomEpsilon {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, true
}

// PickObject returns the visible object whose bounding box is hit nearest
// along the ray under the screen point, or nil when nothing is hit.
func (p *Picker) PickObject(x, y float32) *SceneObject {
	obj, _, ok := p.pickSurface(x, y)
	if !ok {
		return nil
	}
	return obj
}

// PickWorldPoint resolves the screen point to a world point: the nearest
// object-surface hit when one exists, otherwise the intersection with the
// view-facing reference plane through the camera focal point. Returns false
// when neither resolves (near-parallel plane or unprojection failure).
func (p *Picker) PickWorldPoint(x, y float32) (mgl32.Vec3, bool) {
	if _, hit, ok := p.pickSurface(x, y); ok {
		return hit, true
	}
	return p.PickPlanePoint(x, y)
}

// PickPlanePoint intersects the screen ray with the plane through the camera
// focal point facing the view direction. Near-parallel rays and
// intersections behind the ray origin yield no point.
func (p *Picker) PickPlanePoint(x, y float32) (mgl32.Vec3, bool) {
	ray, ok := p.ScreenRay(x, y)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return intersectRayPlane(ray, p.camera.ViewDir(), p.camera.FocalPoint())
}

func (p *Picker) pickSurface(x, y float32) (*SceneObject, mgl32.Vec3, bool) {
	ray, ok := p.ScreenRay(x, y)
	if !ok {
		return nil, mgl32.Vec3{}, false
	}

	var best *SceneObject
	bestT := float32(math.MaxFloat32)
	for _, obj := range p.objects.VisibleObjects() {
		t, hit := obj.IntersectRay(ray)
		if hit && t < bestT {
			bestT = t
			best = obj
		}
	}
	if best == nil {
		return nil, mgl32.Vec3{}, false
	}
	return best, ray.Origin.Add(ray.Direction.Mul(bestT)), true
}

func intersectRayPlane(ray Ray, normal, point mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := ray.Direction.Dot(normal)
	if float32(math.Abs(float64(denom))) <= geomEpsilon {
		return mgl32.Vec3{}, false
	}
	t := point.Sub(ray.Origin).Dot(normal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return ray.Origin.Add(ray.Direction.Mul(t)), true
}

// intersectAABB is a slab test returning the entry distance along the ray,
// clamped to zero when the origin is inside the box.
func intersectAABB(origin, dir, bmin, bmax mgl32.Vec3) (float32, bool) {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))

	for i := 0; i < 3; i++ {
		d := dir[i]
		if float32(math.Abs(float64(d))) < geomEpsilon {
			if origin[i] < bmin[i] || origin[i] > bmax[i] {
				return 0, false
			}
			continue
		}
		t1 := (bmin[i] - origin[i]) / d
		t2 := (bmax[i] - origin[i]) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
	}

	if tMin > tMax || tMax < 0 {
		return 0, false
	}
	return max(tMin, 0), true
}

// closestPointsOnLines finds the parameters of the closest approach between
// the ray and an infinite line, plus the distance between those points.
func closestPointsOnLines(rayOrigin, rayDir, lineOrigin, lineDir mgl32.Vec3) (tRay, tLine, dist float32) {
	w := rayOrigin.Sub(lineOrigin)
	a := rayDir.Dot(rayDir)
	b := rayDir.Dot(lineDir)
	c := lineDir.Dot(lineDir)
	d := rayDir.Dot(w)
	e := lineDir.Dot(w)

	denom := a*c - b*b
	if float32(math.Abs(float64(denom))) < geomEpsilon {
		// Parallel: closest approach anywhere along the line.
		tRay = 0
		tLine = e / c
	} else {
		tRay = (b*e - c*d) / denom
		tLine = (a*e - b*d) / denom
	}

	p1 := rayOrigin.Add(rayDir.Mul(tRay))
	p2 := lineOrigin.Add(lineDir.Mul(tLine))
	return tRay, tLine, p1.Sub(p2).Len()
}
