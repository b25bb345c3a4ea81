package atelier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "5.00", FormatDistance(5))
	assert.Equal(t, "0.00", FormatDistance(0))
	assert.Equal(t, "12.35", FormatDistance(12.349))
}

func TestLabelAtlasBuild(t *testing.T) {
	atlas, err := NewLabelAtlas(goregular.TTF, 32)
	require.NoError(t, err)
	require.NotNil(t, atlas.AtlasImage)

	w, h := atlas.MeasureText("5.00", 1)
	assert.Greater(t, w, float32(0))
	assert.Greater(t, h, float32(0))
}

func TestLabelAtlasRejectsGarbage(t *testing.T) {
	_, err := NewLabelAtlas([]byte("not a font"), 32)
	assert.Error(t, err)
}

func TestBuildBillboardCenteredQuads(t *testing.T) {
	atlas, err := NewLabelAtlas(goregular.TTF, 32)
	require.NoError(t, err)

	center := mgl32.Vec3{1, 2, 3}
	right := mgl32.Vec3{1, 0, 0}
	up := mgl32.Vec3{0, 0, 1}

	verts := atlas.BuildBillboard("5.00", center, right, up, 0.01, labelColor)
	require.Len(t, verts, 4*6)

	// The quads average out near the requested center.
	var sum mgl32.Vec3
	for _, v := range verts {
		sum = sum.Add(v.Pos)
	}
	avg := sum.Mul(1 / float32(len(verts)))
	assert.Less(t, avg.Sub(center).Len(), float32(1))

	// Everything lies in the right/up plane.
	normal := right.Cross(up)
	for _, v := range verts {
		assert.InDelta(t, 0, float64(v.Pos.Sub(center).Dot(normal)), 1e-4)
	}
}

func TestHeadlessLabelVertices(t *testing.T) {
	ctx, renderer := newTestViewport()
	atlas, err := NewLabelAtlas(goregular.TTF, 32)
	require.NoError(t, err)
	renderer.SetLabelAtlas(atlas)

	m := ctx.Measure
	m.Activate()
	m.placePoint(mgl32.Vec3{0, 0, 0})
	m.placePoint(mgl32.Vec3{3, 4, 0})
	m.finalize()

	verts := renderer.LabelVertices(m.labelId)
	assert.NotEmpty(t, verts)
}
