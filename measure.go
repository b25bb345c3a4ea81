package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	markerColor      = [4]float32{0.68, 0.85, 0.9, 1}
	measureLineColor = [4]float32{1, 1, 0, 1}
	labelColor       = [4]float32{1, 1, 1, 1}
)

// MeasureTool places up to two world-space points and displays the distance
// between them as a line with a text label. Existing points can be grabbed
// and dragged; a third placement starts a new measurement.
type MeasureTool struct {
	renderer Renderer
	picker   *Picker
	settings Settings
	log      Logger

	active  bool
	points  []mgl32.Vec3
	markers []RenderableId
	lineId  RenderableId
	labelId RenderableId

	tempLineId  RenderableId
	tempLabelId RenderableId

	// armed is set between placing the first point and committing the
	// second, so press-drag-release can measure in one gesture.
	armed         bool
	draggingPoint int
}

func NewMeasureTool(renderer Renderer, picker *Picker, settings Settings, log Logger) *MeasureTool {
	return &MeasureTool{
		renderer:      renderer,
		picker:        picker,
		settings:      settings,
		log:           log,
		draggingPoint: -1,
	}
}

func (m *MeasureTool) Active() bool { return m.active }

// Activate enables the tool starting from a clean slate.
func (m *MeasureTool) Activate() {
	m.clearMeasurement()
	m.clearTemp()
	m.active = true
	m.armed = false
	m.draggingPoint = -1
}

// Deactivate clears the measurement along with the tool state.
func (m *MeasureTool) Deactivate() {
	m.clearMeasurement()
	m.clearTemp()
	m.active = false
	m.armed = false
	m.draggingPoint = -1
}

func (m *MeasureTool) Points() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), m.points...)
}

// Distance reports the measured distance once both points are placed.
func (m *MeasureTool) Distance() (float32, bool) {
	if len(m.points) != 2 {
		return 0, false
	}
	return m.points[1].Sub(m.points[0]).Len(), true
}

// Click handles a press at the given screen point. The return value reports
// whether the tool consumed the event.
func (m *MeasureTool) Click(x, y float32) bool {
	if !m.active {
		return false
	}
	pt, ok := m.picker.PickWorldPoint(x, y)
	if !ok {
		// Nothing resolvable under the pointer; swallow the click.
		return true
	}

	if idx := m.pointNear(pt); idx >= 0 {
		m.draggingPoint = idx
		return true
	}

	switch len(m.points) {
	case 0:
		m.placePoint(pt)
		m.armed = true
	case 1:
		m.placePoint(pt)
		m.finalize()
		m.armed = false
	default:
		m.clearMeasurement()
		m.placePoint(pt)
		m.armed = true
	}
	return true
}

// Drag updates either the armed second-point preview or a grabbed marker.
func (m *MeasureTool) Drag(x, y float32) bool {
	if !m.active {
		return false
	}
	if !m.armed && m.draggingPoint < 0 {
		return false
	}
	pt, ok := m.picker.PickWorldPoint(x, y)
	if !ok {
		return true
	}

	if m.armed && len(m.points) == 1 {
		m.updateTemp(m.points[0], pt)
		return true
	}
	if m.draggingPoint >= 0 && m.draggingPoint < len(m.points) {
		m.points[m.draggingPoint] = pt
		m.renderer.SetTransform(m.markers[m.draggingPoint], pt, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
		m.refreshMeasurement()
		return true
	}
	return false
}

// Release commits the armed second point and ends any marker drag.
func (m *MeasureTool) Release(x, y float32) bool {
	if !m.active {
		return false
	}
	handled := m.armed || m.draggingPoint >= 0

	if m.armed && len(m.points) == 1 {
		if pt, ok := m.picker.PickWorldPoint(x, y); ok {
			m.placePoint(pt)
			m.finalize()
		}
	}
	m.clearTemp()
	m.armed = false
	m.draggingPoint = -1
	return handled
}

func (m *MeasureTool) placePoint(pt mgl32.Vec3) {
	m.points = append(m.points, pt)
	marker := m.renderer.AddRenderable(NewSphereGlyph(mgl32.Vec3{}, m.settings.MarkerRadius, markerColor))
	m.renderer.SetTransform(marker, pt, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	m.markers = append(m.markers, marker)
}

func (m *MeasureTool) finalize() {
	m.clearTemp()
	m.refreshMeasurement()
	if d, ok := m.Distance(); ok {
		m.log.Infof("measure: distance %s", FormatDistance(d))
	}
}

// pointNear returns the index of the committed point within grab tolerance
// of the given world point, or -1.
func (m *MeasureTool) pointNear(pt mgl32.Vec3) int {
	for i, p := range m.points {
		if p.Sub(pt).Len() < m.settings.MarkerGrabTolerance {
			return i
		}
	}
	return -1
}

func (m *MeasureTool) refreshMeasurement() {
	if m.lineId != 0 {
		m.renderer.RemoveRenderable(m.lineId)
		m.lineId = 0
	}
	if m.labelId != 0 {
		m.renderer.RemoveRenderable(m.labelId)
		m.labelId = 0
	}
	if len(m.points) != 2 {
		return
	}
	m.lineId, m.labelId = m.buildLineAndLabel(m.points[0], m.points[1])
}

func (m *MeasureTool) updateTemp(a, b mgl32.Vec3) {
	m.clearTemp()
	m.tempLineId, m.tempLabelId = m.buildLineAndLabel(a, b)
}

func (m *MeasureTool) clearTemp() {
	if m.tempLineId != 0 {
		m.renderer.RemoveRenderable(m.tempLineId)
		m.tempLineId = 0
	}
	if m.tempLabelId != 0 {
		m.renderer.RemoveRenderable(m.tempLabelId)
		m.tempLabelId = 0
	}
}

func (m *MeasureTool) buildLineAndLabel(a, b mgl32.Vec3) (RenderableId, RenderableId) {
	line := m.renderer.AddRenderable(NewLineGlyph(a, b, measureLineColor))
	mid := a.Add(b).Mul(0.5)
	text := FormatDistance(b.Sub(a).Len())
	label := m.renderer.AddRenderable(NewLabelGlyph(text, mid, m.settings.LabelScale, labelColor))
	return line, label
}

func (m *MeasureTool) clearMeasurement() {
	for _, marker := range m.markers {
		m.renderer.RemoveRenderable(marker)
	}
	m.markers = nil
	m.points = nil
	m.refreshMeasurement()
}
