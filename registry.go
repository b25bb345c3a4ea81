package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

var outlineColor = [4]float32{1, 1, 1, 1}

// SceneStats summarizes the registry contents for display.
type SceneStats struct {
	Objects  int
	Selected int
	Vertices int
	Faces    int
	Edges    int
}

// Registry owns every manipulable object, the selection set with its
// outlines, and the three transform gizmos. All transform changes flow
// through it so outlines, gizmos and role payloads never drift from the
// objects they mirror.
type Registry struct {
	renderer Renderer
	log      Logger
	settings Settings

	objects  []*SceneObject
	handles  map[ObjectId]RenderableId
	outlines map[ObjectId]RenderableId

	selection []*SceneObject

	move   *MoveGizmo
	rotate *RotateGizmo
	scale  *ScaleGizmo

	activeTool Tool
}

func NewRegistry(renderer Renderer, settings Settings, log Logger) *Registry {
	return &Registry{
		renderer: renderer,
		log:      log,
		settings: settings,
		handles:  make(map[ObjectId]RenderableId),
		outlines: make(map[ObjectId]RenderableId),
		move:     NewMoveGizmo(renderer, settings),
		rotate:   NewRotateGizmo(renderer, settings),
		scale:    NewScaleGizmo(renderer, settings),
	}
}

func (r *Registry) MoveGizmo() *MoveGizmo     { return r.move }
func (r *Registry) RotateGizmo() *RotateGizmo { return r.rotate }
func (r *Registry) ScaleGizmo() *ScaleGizmo   { return r.scale }

// Add registers the object and hands its surface to the renderer.
func (r *Registry) Add(obj *SceneObject) {
	if _, exists := r.handles[obj.Id]; exists {
		return
	}
	handle := r.renderer.AddRenderable(obj.Surface)
	r.renderer.SetTransform(handle, obj.Position, obj.Orientation, obj.Scale)
	r.handles[obj.Id] = handle
	r.objects = append(r.objects, obj)
	r.log.Debugf("registry: added %q (%s)", obj.Name, obj.Id)
}

// Remove drops the object and everything attached to it. Removing an object
// that is not registered is a no-op.
func (r *Registry) Remove(obj *SceneObject) {
	handle, ok := r.handles[obj.Id]
	if !ok {
		r.log.Debugf("registry: remove of unknown object %q ignored", obj.Name)
		return
	}

	r.deselect(obj)
	r.renderer.RemoveRenderable(handle)
	delete(r.handles, obj.Id)
	if outline, hasOutline := r.outlines[obj.Id]; hasOutline {
		r.renderer.RemoveRenderable(outline)
		delete(r.outlines, obj.Id)
	}

	for i, o := range r.objects {
		if o == obj {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			break
		}
	}
	r.refreshGizmos()
}

// Clear removes every object.
func (r *Registry) Clear() {
	for _, obj := range append([]*SceneObject(nil), r.objects...) {
		r.Remove(obj)
	}
}

func (r *Registry) Objects() []*SceneObject {
	return append([]*SceneObject(nil), r.objects...)
}

func (r *Registry) VisibleObjects() []*SceneObject {
	var out []*SceneObject
	for _, obj := range r.objects {
		if obj.Visible {
			out = append(out, obj)
		}
	}
	return out
}

// Handle exposes the renderable id behind an object, for hosts that need to
// reach the renderer directly.
func (r *Registry) Handle(obj *SceneObject) (RenderableId, bool) {
	h, ok := r.handles[obj.Id]
	return h, ok
}

func (r *Registry) Contains(obj *SceneObject) bool {
	_, ok := r.handles[obj.Id]
	return ok
}

func (r *Registry) Stats() SceneStats {
	stats := SceneStats{Objects: len(r.objects), Selected: len(r.selection)}
	for _, obj := range r.objects {
		v, f, e := obj.Surface.Counts()
		stats.Vertices += v
		stats.Faces += f
		stats.Edges += e
	}
	return stats
}

// Select adds the object to the selection. Without multi the previous
// selection is replaced; with multi an already selected object is toggled
// off instead.
func (r *Registry) Select(obj *SceneObject, multi bool) {
	if !r.Contains(obj) {
		r.log.Debugf("registry: select of unknown object %q ignored", obj.Name)
		return
	}

	if multi {
		if r.IsSelected(obj) {
			r.deselect(obj)
		} else {
			r.addToSelection(obj)
		}
	} else {
		r.DeselectAll()
		r.addToSelection(obj)
	}
	r.refreshGizmos()
}

// SelectSet replaces the selection with the given objects, preserving order.
func (r *Registry) SelectSet(objs []*SceneObject) {
	r.DeselectAll()
	for _, obj := range objs {
		if r.Contains(obj) {
			r.addToSelection(obj)
		}
	}
	r.refreshGizmos()
}

func (r *Registry) DeselectAll() {
	for _, obj := range append([]*SceneObject(nil), r.selection...) {
		r.deselect(obj)
	}
	r.refreshGizmos()
}

func (r *Registry) Selection() []*SceneObject {
	return append([]*SceneObject(nil), r.selection...)
}

// Primary is the gizmo target: the first object of the selection.
func (r *Registry) Primary() *SceneObject {
	if len(r.selection) == 0 {
		return nil
	}
	return r.selection[0]
}

func (r *Registry) IsSelected(obj *SceneObject) bool {
	for _, o := range r.selection {
		if o == obj {
			return true
		}
	}
	return false
}

// SetActiveTool switches which gizmo (if any) follows the primary selection.
func (r *Registry) SetActiveTool(tool Tool) {
	r.activeTool = tool
	r.refreshGizmos()
}

func (r *Registry) ActiveTool() Tool { return r.activeTool }

// SetObjectVisible toggles display of the object. Hidden objects keep their
// selection state but are skipped by picking.
func (r *Registry) SetObjectVisible(obj *SceneObject, visible bool) {
	handle, ok := r.handles[obj.Id]
	if !ok {
		return
	}
	obj.Visible = visible
	r.renderer.SetVisible(handle, visible)
	if outline, hasOutline := r.outlines[obj.Id]; hasOutline {
		r.renderer.SetVisible(outline, visible && r.IsSelected(obj))
	}
}

// Move translates the object by a world-space delta and keeps its outline,
// gizmo and role payload in sync. Unknown objects are ignored.
func (r *Registry) Move(obj *SceneObject, delta mgl32.Vec3) {
	if !r.Contains(obj) {
		r.log.Debugf("registry: move of unknown object %q ignored", obj.Name)
		return
	}
	obj.Position = obj.Position.Add(delta)
	r.syncTransform(obj)
}

// RotateSet replaces the object's Euler orientation (degrees).
func (r *Registry) RotateSet(obj *SceneObject, orientationDeg mgl32.Vec3) {
	if !r.Contains(obj) {
		r.log.Debugf("registry: rotate of unknown object %q ignored", obj.Name)
		return
	}
	obj.Orientation = orientationDeg
	r.syncTransform(obj)
}

// ScaleSet replaces the object's scale, flooring each component so it can
// never collapse or invert.
func (r *Registry) ScaleSet(obj *SceneObject, scale mgl32.Vec3) {
	if !r.Contains(obj) {
		r.log.Debugf("registry: scale of unknown object %q ignored", obj.Name)
		return
	}
	floor := r.settings.ScaleFloor
	obj.Scale = mgl32.Vec3{
		max(scale.X(), floor),
		max(scale.Y(), floor),
		max(scale.Z(), floor),
	}
	r.syncTransform(obj)
}

func (r *Registry) syncTransform(obj *SceneObject) {
	handle := r.handles[obj.Id]
	r.renderer.SetTransform(handle, obj.Position, obj.Orientation, obj.Scale)
	if outline, ok := r.outlines[obj.Id]; ok {
		r.renderer.SetTransform(outline, obj.Position, obj.Orientation, obj.Scale)
	}
	obj.syncRolePayload(r.settings.LookAheadDistance)

	for _, g := range []gizmo{r.move, r.rotate, r.scale} {
		if g.IsVisible() && g.Target() == obj {
			g.UpdatePosition()
		}
	}
}

func (r *Registry) addToSelection(obj *SceneObject) {
	r.selection = append(r.selection, obj)
	outline := r.ensureOutline(obj)
	r.renderer.SetVisible(outline, obj.Visible)
}

func (r *Registry) deselect(obj *SceneObject) {
	for i, o := range r.selection {
		if o == obj {
			r.selection = append(r.selection[:i], r.selection[i+1:]...)
			break
		}
	}
	if outline, ok := r.outlines[obj.Id]; ok {
		r.renderer.SetVisible(outline, false)
	}
}

func (r *Registry) ensureOutline(obj *SceneObject) RenderableId {
	if outline, ok := r.outlines[obj.Id]; ok {
		return outline
	}
	bmin, bmax := obj.Surface.Bounds()
	center := bmin.Add(bmax).Mul(0.5)
	size := bmax.Sub(bmin)
	outline := r.renderer.AddRenderable(NewWireCubeGlyph(center, size, outlineColor))
	r.renderer.SetVisible(outline, false)
	r.renderer.SetTransform(outline, obj.Position, obj.Orientation, obj.Scale)
	r.outlines[obj.Id] = outline
	return outline
}

func (r *Registry) refreshGizmos() {
	r.move.Hide()
	r.rotate.Hide()
	r.scale.Hide()

	primary := r.Primary()
	if primary == nil {
		return
	}
	handle := r.handles[primary.Id]
	switch r.activeTool {
	case ToolMove:
		r.move.Show(primary, handle)
	case ToolRotate:
		r.rotate.Show(primary, handle)
	case ToolScale:
		r.scale.Show(primary, handle)
	}
}
