package atelier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureDistanceAndLabel(t *testing.T) {
	ctx, renderer := newTestViewport()
	m := ctx.Measure
	m.Activate()

	m.placePoint(mgl32.Vec3{0, 0, 0})
	m.placePoint(mgl32.Vec3{3, 4, 0})
	m.finalize()

	d, ok := m.Distance()
	require.True(t, ok)
	assert.InDelta(t, 5, float64(d), 1e-5)
	assert.Equal(t, "5.00", renderer.LabelText(m.labelId))
	assert.Len(t, m.markers, 2)
	assert.True(t, renderer.Has(m.lineId))
}

func TestMeasureDistanceSymmetry(t *testing.T) {
	ctx, _ := newTestViewport()
	m := ctx.Measure
	m.Activate()

	m.placePoint(mgl32.Vec3{1, 2, 3})
	m.placePoint(mgl32.Vec3{-2, 0, 7})
	m.finalize()
	d1, _ := m.Distance()

	m.clearMeasurement()
	m.placePoint(mgl32.Vec3{-2, 0, 7})
	m.placePoint(mgl32.Vec3{1, 2, 3})
	m.finalize()
	d2, _ := m.Distance()

	assert.InDelta(t, float64(d1), float64(d2), 1e-6)
}

func TestMeasureClickDragRelease(t *testing.T) {
	ctx, renderer := newTestViewport()
	ctx.Camera.TopView()
	m := ctx.Measure
	m.Activate()

	a := projectPoint(t, renderer, mgl32.Vec3{0, 0, 0})
	b := projectPoint(t, renderer, mgl32.Vec3{3, 0, 0})

	require.True(t, m.Click(a.X(), a.Y()))
	assert.Len(t, m.Points(), 1)

	require.True(t, m.Drag(b.X(), b.Y()))
	assert.NotZero(t, m.tempLineId, "drag should show a preview line")

	require.True(t, m.Release(b.X(), b.Y()))
	assert.Zero(t, m.tempLineId, "preview cleared on release")
	require.Len(t, m.Points(), 2)

	d, ok := m.Distance()
	require.True(t, ok)
	assert.InDelta(t, 3, float64(d), 0.05)
}

func TestMeasureThirdPlacementRestarts(t *testing.T) {
	ctx, renderer := newTestViewport()
	ctx.Camera.TopView()
	m := ctx.Measure
	m.Activate()

	m.placePoint(mgl32.Vec3{0, 0, 0})
	m.placePoint(mgl32.Vec3{3, 0, 0})
	m.finalize()
	require.Len(t, m.Points(), 2)

	far := projectPoint(t, renderer, mgl32.Vec3{-4, 2, 0})
	require.True(t, m.Click(far.X(), far.Y()))
	assert.Len(t, m.Points(), 1)
	_, ok := m.Distance()
	assert.False(t, ok)
}

func TestMeasureGrabAndDragMarker(t *testing.T) {
	ctx, renderer := newTestViewport()
	ctx.Camera.TopView()
	m := ctx.Measure
	m.Activate()

	m.placePoint(mgl32.Vec3{0, 0, 0})
	m.placePoint(mgl32.Vec3{3, 0, 0})
	m.finalize()

	// Click within grab tolerance of the second point.
	near := projectPoint(t, renderer, mgl32.Vec3{2.9, 0, 0})
	require.True(t, m.Click(near.X(), near.Y()))
	assert.Equal(t, 1, m.draggingPoint)
	assert.Len(t, m.Points(), 2, "grabbing must not add a point")

	target := projectPoint(t, renderer, mgl32.Vec3{5, 0, 0})
	require.True(t, m.Drag(target.X(), target.Y()))
	require.True(t, m.Release(target.X(), target.Y()))

	d, ok := m.Distance()
	require.True(t, ok)
	assert.InDelta(t, 5, float64(d), 0.05)
	assert.Equal(t, FormatDistance(d), renderer.LabelText(m.labelId))
}

func TestMeasureActivateStartsClean(t *testing.T) {
	ctx, renderer := newTestViewport()
	baseline := renderer.Count()
	m := ctx.Measure
	m.Activate()

	m.placePoint(mgl32.Vec3{0, 0, 0})
	m.placePoint(mgl32.Vec3{3, 0, 0})
	m.finalize()
	require.Greater(t, renderer.Count(), baseline)

	m.Activate()
	assert.Empty(t, m.Points())
	assert.Equal(t, baseline, renderer.Count())
	assert.True(t, m.Active())
}

func TestMeasureZeroLengthClick(t *testing.T) {
	ctx, renderer := newTestViewport()
	ctx.Camera.TopView()
	m := ctx.Measure
	m.Activate()

	// A press-release at one spot commits both points there.
	at := projectPoint(t, renderer, mgl32.Vec3{1, 1, 0})
	require.True(t, m.Click(at.X(), at.Y()))
	require.True(t, m.Release(at.X(), at.Y()))

	require.Len(t, m.Points(), 2)
	d, ok := m.Distance()
	require.True(t, ok)
	assert.InDelta(t, 0, float64(d), 0.05)
}

func TestMeasureDeactivateClears(t *testing.T) {
	ctx, renderer := newTestViewport()
	baseline := renderer.Count()
	m := ctx.Measure
	m.Activate()

	m.placePoint(mgl32.Vec3{0, 0, 0})
	m.placePoint(mgl32.Vec3{3, 0, 0})
	m.finalize()
	require.Greater(t, renderer.Count(), baseline)

	m.Deactivate()
	assert.Empty(t, m.Points())
	assert.Equal(t, baseline, renderer.Count())
	assert.False(t, m.Active())
}

func TestMeasureInactiveIgnoresEvents(t *testing.T) {
	ctx, _ := newTestViewport()
	m := ctx.Measure

	assert.False(t, m.Click(400, 300))
	assert.False(t, m.Drag(400, 300))
	assert.False(t, m.Release(400, 300))
	assert.Empty(t, m.Points())
}
