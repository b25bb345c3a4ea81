package atelier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectsHaveDistinctIds(t *testing.T) {
	a := NewPrimitiveObject("cube", testSurface{half: mgl32.Vec3{1, 1, 1}})
	b := NewPrimitiveObject("cube", testSurface{half: mgl32.Vec3{1, 1, 1}})

	assert.NotEmpty(t, a.Id)
	assert.NotEqual(t, a.Id, b.Id)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, a.Scale)
	assert.Equal(t, float32(1), a.Opacity)
	assert.True(t, a.Visible)
	assert.Equal(t, KindPrimitive, a.Kind)
}

func TestWorldBoundsFollowTransform(t *testing.T) {
	obj := NewPrimitiveObject("cube", testSurface{half: mgl32.Vec3{1, 1, 1}})
	obj.Position = mgl32.Vec3{10, 0, 0}
	obj.Scale = mgl32.Vec3{2, 1, 1}

	bmin, bmax := obj.WorldBounds()
	assert.InDelta(t, 8, float64(bmin.X()), 1e-4)
	assert.InDelta(t, 12, float64(bmax.X()), 1e-4)
	assert.InDelta(t, -1, float64(bmin.Y()), 1e-4)
	assert.InDelta(t, 1, float64(bmax.Y()), 1e-4)
}

func TestWorldBoundsRotated(t *testing.T) {
	// A slab rotated 90 degrees about Z swaps x/y extents.
	obj := NewPrimitiveObject("slab", testSurface{half: mgl32.Vec3{3, 1, 1}})
	obj.Orientation = mgl32.Vec3{0, 0, 90}

	bmin, bmax := obj.WorldBounds()
	assert.InDelta(t, -1, float64(bmin.X()), 1e-3)
	assert.InDelta(t, 1, float64(bmax.X()), 1e-3)
	assert.InDelta(t, -3, float64(bmin.Y()), 1e-3)
	assert.InDelta(t, 3, float64(bmax.Y()), 1e-3)
}

func TestIntersectRayScaled(t *testing.T) {
	obj := NewPrimitiveObject("cube", testSurface{half: mgl32.Vec3{1, 1, 1}})
	obj.Scale = mgl32.Vec3{3, 3, 3}

	ray := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, -1}}
	dist, hit := obj.IntersectRay(ray)
	require.True(t, hit)
	assert.InDelta(t, 7, float64(dist), 1e-4)
}

func TestIntersectRayMiss(t *testing.T) {
	obj := NewPrimitiveObject("cube", testSurface{half: mgl32.Vec3{1, 1, 1}})
	ray := Ray{Origin: mgl32.Vec3{5, 5, 10}, Direction: mgl32.Vec3{0, 0, -1}}

	_, hit := obj.IntersectRay(ray)
	assert.False(t, hit)
}

func TestSunLightAimsAtOrigin(t *testing.T) {
	sun := NewLightObject(LightSun, testSurface{half: mgl32.Vec3{0.5, 0.5, 0.5}})
	sun.Position = mgl32.Vec3{0, 10, 10}
	sun.syncRolePayload(10)

	want := mgl32.Vec3{0, -10, -10}.Normalize()
	assert.InDelta(t, float64(want.Y()), float64(sun.Light.Direction.Y()), 1e-5)
	assert.InDelta(t, float64(want.Z()), float64(sun.Light.Direction.Z()), 1e-5)
}

func TestCameraObjectLookAhead(t *testing.T) {
	cam := NewCameraObject(testSurface{half: mgl32.Vec3{0.5, 0.5, 0.5}})
	cam.syncRolePayload(10)

	offset := cam.Camera.FocalPoint.Sub(cam.Position)
	assert.InDelta(t, 10, float64(offset.Len()), 1e-3)
}
