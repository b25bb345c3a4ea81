package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Axis identifies a gizmo handle. AxisUniform is the scale gizmo's center
// cube.
type Axis string

const (
	AxisNone    Axis = ""
	AxisX       Axis = "x"
	AxisY       Axis = "y"
	AxisZ       Axis = "z"
	AxisUniform Axis = "uniform"
)

var axisDirs = map[Axis]mgl32.Vec3{
	AxisX: {1, 0, 0},
	AxisY: {0, 1, 0},
	AxisZ: {0, 0, 1},
}

var axisColors = map[Axis][4]float32{
	AxisX:       {1, 0, 0, 1},
	AxisY:       {0, 1, 0, 1},
	AxisZ:       {0, 0.4, 1, 1},
	AxisUniform: {1, 1, 0, 1},
}

// handleAxes is the stable hit-test order.
var handleAxes = []Axis{AxisX, AxisY, AxisZ}

type gizmo interface {
	Show(target *SceneObject, targetHandle RenderableId)
	Hide()
	IsVisible() bool
	Target() *SceneObject
	UpdatePosition()
	HitTest(x, y float32) Axis
}

type dimmedEntry struct {
	obj     *SceneObject
	handle  RenderableId
	opacity float32
}

// gizmoBase carries what the three gizmos share: handle renderables that are
// created once and toggled, and the dim/restore table for the target object.
type gizmoBase struct {
	renderer Renderer
	settings Settings

	visible      bool
	target       *SceneObject
	targetHandle RenderableId
	handles      map[Axis]RenderableId
	dimmed       map[ObjectId]dimmedEntry
}

func newGizmoBase(renderer Renderer, settings Settings) gizmoBase {
	return gizmoBase{
		renderer: renderer,
		settings: settings,
		handles:  make(map[Axis]RenderableId),
		dimmed:   make(map[ObjectId]dimmedEntry),
	}
}

func (g *gizmoBase) addHandle(axis Axis, glyph Glyph) {
	id := g.renderer.AddRenderable(glyph)
	g.renderer.SetVisible(id, false)
	g.handles[axis] = id
}

func (g *gizmoBase) show(target *SceneObject, targetHandle RenderableId, dimOpacity float32) {
	if g.visible {
		g.restoreDimmed()
	}
	g.target = target
	g.targetHandle = targetHandle
	g.visible = true

	g.dimmed[target.Id] = dimmedEntry{obj: target, handle: targetHandle, opacity: target.Opacity}
	g.renderer.SetOpacity(targetHandle, dimOpacity)
	target.Opacity = dimOpacity

	g.UpdatePosition()
	for _, id := range g.handles {
		g.renderer.SetVisible(id, true)
	}
}

// Hide removes the handles from view and restores every dimmed opacity
// exactly. Hiding an already hidden gizmo is a no-op.
func (g *gizmoBase) Hide() {
	if !g.visible {
		return
	}
	for _, id := range g.handles {
		g.renderer.SetVisible(id, false)
	}
	g.restoreDimmed()
	g.visible = false
	g.target = nil
	g.targetHandle = 0
}

func (g *gizmoBase) restoreDimmed() {
	for id, entry := range g.dimmed {
		g.renderer.SetOpacity(entry.handle, entry.opacity)
		entry.obj.Opacity = entry.opacity
		delete(g.dimmed, id)
	}
}

func (g *gizmoBase) IsVisible() bool      { return g.visible }
func (g *gizmoBase) Target() *SceneObject { return g.target }

// UpdatePosition re-anchors the handles at the target position. Handle
// geometry is authored in gizmo-local space so a translation is enough.
func (g *gizmoBase) UpdatePosition() {
	if g.target == nil {
		return
	}
	for _, id := range g.handles {
		g.renderer.SetTransform(id, g.target.Position, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	}
}
