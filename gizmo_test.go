package atelier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveGizmoDimAndRestore(t *testing.T) {
	ctx, renderer := newTestViewport()
	a := addCube(ctx, "a", mgl32.Vec3{}, 1)

	handle, _ := ctx.Registry.Handle(a)
	a.Opacity = 0.77
	renderer.SetOpacity(handle, 0.77)

	ctx.Registry.Select(a, false)
	ctx.Registry.SetActiveTool(ToolMove)
	assert.InDelta(t, float64(ctx.Settings.DimOpacityMove), float64(renderer.Opacity(handle)), 1e-6)
	assert.InDelta(t, float64(ctx.Settings.DimOpacityMove), float64(a.Opacity), 1e-6)

	ctx.Registry.SetActiveTool(ToolSelect)
	assert.InDelta(t, 0.77, float64(renderer.Opacity(handle)), 1e-6)
	assert.InDelta(t, 0.77, float64(a.Opacity), 1e-6)
}

func TestRotateGizmoDimsLower(t *testing.T) {
	ctx, renderer := newTestViewport()
	a := addCube(ctx, "a", mgl32.Vec3{}, 1)
	handle, _ := ctx.Registry.Handle(a)

	ctx.Registry.Select(a, false)
	ctx.Registry.SetActiveTool(ToolRotate)
	assert.InDelta(t, float64(ctx.Settings.DimOpacityRotate), float64(renderer.Opacity(handle)), 1e-6)

	ctx.Registry.SetActiveTool(ToolSelect)
	assert.InDelta(t, 1, float64(renderer.Opacity(handle)), 1e-6)
}

func TestGizmoRetargetRestoresPreviousObject(t *testing.T) {
	ctx, renderer := newTestViewport()
	a := addCube(ctx, "a", mgl32.Vec3{}, 1)
	b := addCube(ctx, "b", mgl32.Vec3{4, 0, 0}, 1)
	aHandle, _ := ctx.Registry.Handle(a)
	bHandle, _ := ctx.Registry.Handle(b)

	ctx.Registry.SetActiveTool(ToolMove)
	ctx.Registry.Select(a, false)
	require.Same(t, a, ctx.Registry.MoveGizmo().Target())

	ctx.Registry.Select(b, false)
	assert.Same(t, b, ctx.Registry.MoveGizmo().Target())
	assert.InDelta(t, 1, float64(renderer.Opacity(aHandle)), 1e-6)
	assert.InDelta(t, float64(ctx.Settings.DimOpacityMove), float64(renderer.Opacity(bHandle)), 1e-6)
}

func TestMoveGizmoHitTest(t *testing.T) {
	ctx, renderer := newTestViewport()
	a := addCube(ctx, "a", mgl32.Vec3{}, 1)
	ctx.Registry.Select(a, false)
	ctx.Registry.SetActiveTool(ToolMove)
	gizmo := ctx.Registry.MoveGizmo()

	cases := []struct {
		world mgl32.Vec3
		want  Axis
	}{
		{mgl32.Vec3{2.5, 0, 0}, AxisX},
		{mgl32.Vec3{0, 2.5, 0}, AxisY},
		{mgl32.Vec3{0, 0, 2.5}, AxisZ},
		{mgl32.Vec3{3, 3, 3}, AxisNone},
	}
	for _, tc := range cases {
		screen := projectPoint(t, renderer, tc.world)
		assert.Equal(t, tc.want, gizmo.HitTest(screen.X(), screen.Y()), "world point %v", tc.world)
	}
}

func TestMoveGizmoHitTestWhenHidden(t *testing.T) {
	ctx, renderer := newTestViewport()
	addCube(ctx, "a", mgl32.Vec3{}, 1)
	gizmo := ctx.Registry.MoveGizmo()

	screen := projectPoint(t, renderer, mgl32.Vec3{2.5, 0, 0})
	assert.Equal(t, AxisNone, gizmo.HitTest(screen.X(), screen.Y()))
}

func TestRotateGizmoHitTest(t *testing.T) {
	ctx, renderer := newTestViewport()
	a := addCube(ctx, "a", mgl32.Vec3{}, 1)
	ctx.Registry.Select(a, false)
	ctx.Registry.SetActiveTool(ToolRotate)
	gizmo := ctx.Registry.RotateGizmo()

	// Points on a single ring, off the other two rings' planes.
	const c30, s30 = 3.4641, 2.0
	cases := []struct {
		world mgl32.Vec3
		want  Axis
	}{
		{mgl32.Vec3{0, c30, s30}, AxisX},
		{mgl32.Vec3{c30, 0, s30}, AxisY},
		{mgl32.Vec3{c30, s30, 0}, AxisZ},
		{mgl32.Vec3{1, 1, 1}, AxisNone},
	}
	for _, tc := range cases {
		screen := projectPoint(t, renderer, tc.world)
		assert.Equal(t, tc.want, gizmo.HitTest(screen.X(), screen.Y()), "world point %v", tc.world)
	}
}

func TestScaleGizmoHitTest(t *testing.T) {
	ctx, renderer := newTestViewport()
	a := addCube(ctx, "a", mgl32.Vec3{}, 1)
	ctx.Registry.Select(a, false)
	ctx.Registry.SetActiveTool(ToolScale)
	gizmo := ctx.Registry.ScaleGizmo()

	cases := []struct {
		world mgl32.Vec3
		want  Axis
	}{
		{mgl32.Vec3{5, 0, 0}, AxisX},
		{mgl32.Vec3{0, 5, 0}, AxisY},
		{mgl32.Vec3{0, 0, 5}, AxisZ},
		{mgl32.Vec3{0, 0, 0}, AxisUniform},
		{mgl32.Vec3{3, 3, 3}, AxisNone},
	}
	for _, tc := range cases {
		screen := projectPoint(t, renderer, tc.world)
		assert.Equal(t, tc.want, gizmo.HitTest(screen.X(), screen.Y()), "world point %v", tc.world)
	}
}

func TestScaleFor(t *testing.T) {
	ctx, _ := newTestViewport()
	gizmo := ctx.Registry.ScaleGizmo()
	start := mgl32.Vec3{2, 2, 2}

	got := gizmo.ScaleFor(AxisX, start, 50)
	assert.InDelta(t, 3, float64(got.X()), 1e-5)
	assert.InDelta(t, 2, float64(got.Y()), 1e-5)

	got = gizmo.ScaleFor(AxisUniform, start, 50)
	assert.InDelta(t, 3, float64(got.X()), 1e-5)
	assert.InDelta(t, 3, float64(got.Y()), 1e-5)
	assert.InDelta(t, 3, float64(got.Z()), 1e-5)
}

func TestGizmoHandlesHiddenUntilShown(t *testing.T) {
	ctx, renderer := newTestViewport()
	a := addCube(ctx, "a", mgl32.Vec3{}, 1)

	for _, handle := range ctx.Registry.move.handles {
		assert.False(t, renderer.Visible(handle))
	}

	ctx.Registry.Select(a, false)
	ctx.Registry.SetActiveTool(ToolMove)
	for _, handle := range ctx.Registry.move.handles {
		assert.True(t, renderer.Visible(handle))
	}

	ctx.Registry.DeselectAll()
	for _, handle := range ctx.Registry.move.handles {
		assert.False(t, renderer.Visible(handle))
	}
}
