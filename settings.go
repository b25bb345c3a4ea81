package atelier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Settings collects every tunable of the manipulation engine. All fields are
// plain data so a host can persist and restore them as a preset.
type Settings struct {
	// Camera
	OrbitSensitivity float32 `json:"orbit_sensitivity"` // radians per pixel
	PanSensitivity   float32 `json:"pan_sensitivity"`   // world units per pixel, scaled by radius
	DollyFactor      float32 `json:"dolly_factor"`
	MinRadius        float32 `json:"min_radius"`
	MaxRadius        float32 `json:"max_radius"`
	DefaultRadius    float32 `json:"default_radius"`
	DefaultPolar     float32 `json:"default_polar"`   // radians
	DefaultAzimuth   float32 `json:"default_azimuth"` // radians
	FieldOfViewDeg   float32 `json:"field_of_view_deg"`

	// Gizmos
	MoveSensitivity        float32 `json:"move_sensitivity"`   // world units per pixel
	RotateSensitivity      float32 `json:"rotate_sensitivity"` // degrees per pixel
	ScaleSensitivity       float32 `json:"scale_sensitivity"`  // factor per pixel
	ScaleFloor             float32 `json:"scale_floor"`
	GizmoArrowLength       float32 `json:"gizmo_arrow_length"`
	GizmoArrowPickRadius   float32 `json:"gizmo_arrow_pick_radius"`
	GizmoRingRadius        float32 `json:"gizmo_ring_radius"`
	GizmoRingPickBand      float32 `json:"gizmo_ring_pick_band"`
	GizmoHandleSize        float32 `json:"gizmo_handle_size"`
	GizmoUniformHandleSize float32 `json:"gizmo_uniform_handle_size"`
	DimOpacityMove         float32 `json:"dim_opacity_move"`
	DimOpacityRotate       float32 `json:"dim_opacity_rotate"`

	// Measurement
	MarkerRadius        float32 `json:"marker_radius"`
	MarkerGrabTolerance float32 `json:"marker_grab_tolerance"` // world units
	LabelScale          float32 `json:"label_scale"`

	// Selection
	BoxSelectTolerancePx float32 `json:"box_select_tolerance_px"`

	// Roles
	LookAheadDistance float32 `json:"look_ahead_distance"`

	// Host refresh
	PollHz float64 `json:"poll_hz"`
}

func DefaultSettings() Settings {
	return Settings{
		OrbitSensitivity: 0.008,
		PanSensitivity:   0.005,
		DollyFactor:      1.1,
		MinRadius:        0.1,
		MaxRadius:        1000,
		DefaultRadius:    15,
		DefaultPolar:     float32(math.Pi / 4),
		DefaultAzimuth:   float32(math.Pi / 4),
		FieldOfViewDeg:   30,

		MoveSensitivity:        0.01,
		RotateSensitivity:      0.5,
		ScaleSensitivity:       0.01,
		ScaleFloor:             0.1,
		GizmoArrowLength:       5,
		GizmoArrowPickRadius:   0.35,
		GizmoRingRadius:        4,
		GizmoRingPickBand:      0.4,
		GizmoHandleSize:        0.8,
		GizmoUniformHandleSize: 1.2,
		DimOpacityMove:         0.3,
		DimOpacityRotate:       0.2,

		MarkerRadius:        0.3,
		MarkerGrabTolerance: 0.5,
		LabelScale:          0.5,

		BoxSelectTolerancePx: 10,

		LookAheadDistance: 10,

		PollHz: 10,
	}
}

// LoadSettings reads a settings preset from a JSON file. Fields absent from
// the file keep their default values.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return s, fmt.Errorf("load settings: %w", err)
	}
	if err := json.Unmarshal(bytes, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", filename, err)
	}
	return s, nil
}

// SaveSettings writes a settings preset as indented JSON.
func SaveSettings(s Settings, filename string) error {
	bytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}
