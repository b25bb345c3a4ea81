package atelier

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.InDelta(t, 0.008, float64(s.OrbitSensitivity), 1e-9)
	assert.InDelta(t, 1.1, float64(s.DollyFactor), 1e-6)
	assert.Equal(t, float32(15), s.DefaultRadius)
	assert.InDelta(t, math.Pi/4, float64(s.DefaultPolar), 1e-6)
	assert.Equal(t, float32(5), s.GizmoArrowLength)
	assert.Equal(t, float32(0.1), s.ScaleFloor)
	assert.Equal(t, float32(0.3), s.MarkerRadius)
	assert.Equal(t, float32(0.5), s.MarkerGrabTolerance)
	assert.Equal(t, float32(0.3), s.DimOpacityMove)
	assert.Equal(t, float32(0.2), s.DimOpacityRotate)
	assert.Equal(t, 10.0, s.PollHz)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := DefaultSettings()
	s.OrbitSensitivity = 0.02
	s.MaxRadius = 500
	require.NoError(t, SaveSettings(s, path))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSettingsMissingFileKeepsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}
