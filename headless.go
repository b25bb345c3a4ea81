package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

type renderableState struct {
	surface     Surface
	position    mgl32.Vec3
	orientation mgl32.Vec3
	scale       mgl32.Vec3
	opacity     float32
	visible     bool
}

// HeadlessRenderer is a software implementation of Renderer. It keeps the
// renderable states and does the screen mapping with mgl32, which is enough
// for tests, scripted sessions and hosts that draw with their own pipeline.
type HeadlessRenderer struct {
	camera *OrbitCamera
	width  int
	height int

	nextId      RenderableId
	renderables map[RenderableId]*renderableState
	redraws     int

	atlas *LabelAtlas
}

func NewHeadlessRenderer(camera *OrbitCamera, width, height int) *HeadlessRenderer {
	return &HeadlessRenderer{
		camera:      camera,
		width:       width,
		height:      height,
		nextId:      1,
		renderables: make(map[RenderableId]*renderableState),
	}
}

// SetLabelAtlas enables billboard quad generation for label glyphs.
func (r *HeadlessRenderer) SetLabelAtlas(atlas *LabelAtlas) { r.atlas = atlas }

func (r *HeadlessRenderer) AddRenderable(s Surface) RenderableId {
	id := r.nextId
	r.nextId++
	r.renderables[id] = &renderableState{
		surface: s,
		scale:   mgl32.Vec3{1, 1, 1},
		opacity: 1,
		visible: true,
	}
	return id
}

func (r *HeadlessRenderer) RemoveRenderable(id RenderableId) {
	delete(r.renderables, id)
}

func (r *HeadlessRenderer) SetTransform(id RenderableId, position, orientationDeg, scale mgl32.Vec3) {
	if st, ok := r.renderables[id]; ok {
		st.position = position
		st.orientation = orientationDeg
		st.scale = scale
	}
}

func (r *HeadlessRenderer) SetOpacity(id RenderableId, opacity float32) {
	if st, ok := r.renderables[id]; ok {
		st.opacity = opacity
	}
}

func (r *HeadlessRenderer) SetVisible(id RenderableId, visible bool) {
	if st, ok := r.renderables[id]; ok {
		st.visible = visible
	}
}

func (r *HeadlessRenderer) RequestRedraw() { r.redraws++ }

func (r *HeadlessRenderer) ScreenSize() (int, int) { return r.width, r.height }

func (r *HeadlessRenderer) Project(world mgl32.Vec3) (mgl32.Vec2, bool) {
	view := r.camera.ViewMatrix()
	proj := r.camera.ProjectionMatrix(r.aspect())

	clip := proj.Mul4(view).Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Mul(1 / clip.W())

	x := (ndc.X() + 1) / 2 * float32(r.width)
	yUp := (ndc.Y() + 1) / 2 * float32(r.height)
	return mgl32.Vec2{x, float32(r.height) - yUp}, true
}

func (r *HeadlessRenderer) Unproject(screen mgl32.Vec2, depth float32) (mgl32.Vec3, bool) {
	view := r.camera.ViewMatrix()
	proj := r.camera.ProjectionMatrix(r.aspect())

	win := mgl32.Vec3{screen.X(), float32(r.height) - screen.Y(), depth}
	obj, err := mgl32.UnProject(win, view, proj, 0, 0, r.width, r.height)
	if err != nil {
		return mgl32.Vec3{}, false
	}
	return obj, true
}

func (r *HeadlessRenderer) aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// Inspection helpers for hosts and tests.

func (r *HeadlessRenderer) Has(id RenderableId) bool {
	_, ok := r.renderables[id]
	return ok
}

func (r *HeadlessRenderer) Count() int { return len(r.renderables) }

func (r *HeadlessRenderer) RedrawCount() int { return r.redraws }

func (r *HeadlessRenderer) Opacity(id RenderableId) float32 {
	if st, ok := r.renderables[id]; ok {
		return st.opacity
	}
	return 0
}

func (r *HeadlessRenderer) Visible(id RenderableId) bool {
	if st, ok := r.renderables[id]; ok {
		return st.visible
	}
	return false
}

func (r *HeadlessRenderer) Transform(id RenderableId) (position, orientationDeg, scale mgl32.Vec3, ok bool) {
	st, found := r.renderables[id]
	if !found {
		return mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	return st.position, st.orientation, st.scale, true
}

// LabelText returns the text of a label glyph renderable, or "" when the id
// is not a label.
func (r *HeadlessRenderer) LabelText(id RenderableId) string {
	st, ok := r.renderables[id]
	if !ok {
		return ""
	}
	if g, isGlyph := st.surface.(Glyph); isGlyph && g.Type == GlyphLabel {
		return g.Text
	}
	return ""
}

// LabelVertices builds camera-facing billboard quads for a label glyph using
// the configured atlas.
func (r *HeadlessRenderer) LabelVertices(id RenderableId) []LabelVertex {
	st, ok := r.renderables[id]
	if !ok || r.atlas == nil {
		return nil
	}
	g, isGlyph := st.surface.(Glyph)
	if !isGlyph || g.Type != GlyphLabel {
		return nil
	}

	forward := r.camera.ViewDir()
	right := forward.Cross(r.camera.Up())
	if right.Len() < geomEpsilon {
		return nil
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	center := g.Center.Add(st.position)
	return r.atlas.BuildBillboard(g.Text, center, right, up, g.TextScale, g.Color)
}
