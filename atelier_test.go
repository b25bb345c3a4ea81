package atelier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

type testSurface struct {
	half mgl32.Vec3
}

func (s testSurface) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	return s.half.Mul(-1), s.half
}

func (s testSurface) Counts() (int, int, int) { return 8, 6, 12 }

func newTestViewport() (*ViewportContext, *HeadlessRenderer) {
	settings := DefaultSettings()
	camera := NewOrbitCamera(settings)
	renderer := NewHeadlessRenderer(camera, 800, 600)
	ctx := NewViewportBuilder().
		WithSettings(settings).
		WithCamera(camera).
		WithRenderer(renderer).
		Build()
	return ctx, renderer
}

func addCube(ctx *ViewportContext, name string, pos mgl32.Vec3, half float32) *SceneObject {
	obj := NewPrimitiveObject(name, testSurface{half: mgl32.Vec3{half, half, half}})
	obj.Position = pos
	ctx.Registry.Add(obj)
	return obj
}

func projectPoint(t *testing.T, r *HeadlessRenderer, world mgl32.Vec3) mgl32.Vec2 {
	t.Helper()
	screen, ok := r.Project(world)
	require.True(t, ok, "point %v should project on screen", world)
	return screen
}

func leftPress(c *InteractionController, at mgl32.Vec2, shift bool) {
	c.PointerPress(PointerEvent{X: at.X(), Y: at.Y(), Button: ButtonLeft, Shift: shift})
}

func pointerMove(c *InteractionController, at mgl32.Vec2, shift bool) {
	c.PointerMove(PointerEvent{X: at.X(), Y: at.Y(), Shift: shift})
}

func leftRelease(c *InteractionController, at mgl32.Vec2, shift bool) {
	c.PointerRelease(PointerEvent{X: at.X(), Y: at.Y(), Button: ButtonLeft, Shift: shift})
}
