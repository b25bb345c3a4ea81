package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderableId identifies a piece of geometry handed to a Renderer.
// The zero value is never a valid id.
type RenderableId uint32

// Surface is an opaque handle to displayable geometry. The engine never
// inspects topology beyond the local-space bounds and the generic counts.
type Surface interface {
	Bounds() (min, max mgl32.Vec3)
	Counts() (vertices, faces, edges int)
}

// MeshSource is the collaborator that produces surfaces for primitive types.
// Implementations live outside this module; the engine only consumes the
// handles they return.
type MeshSource interface {
	CreateMesh(typeName string, params map[string]float64) (Surface, error)
}

// Renderer is the narrow contract the engine drives a rendering surface
// through. Hosts implement it over their graphics stack; HeadlessRenderer
// implements it in software for tests and scripted sessions.
type Renderer interface {
	AddRenderable(s Surface) RenderableId
	RemoveRenderable(id RenderableId)
	SetTransform(id RenderableId, position, orientationDeg, scale mgl32.Vec3)
	SetOpacity(id RenderableId, opacity float32)
	SetVisible(id RenderableId, visible bool)
	RequestRedraw()
	ScreenSize() (w, h int)
	// Project maps a world point to top-left-origin screen coordinates.
	Project(world mgl32.Vec3) (mgl32.Vec2, bool)
	// Unproject maps screen coordinates at a normalized depth (0 near plane,
	// 1 far plane) back to a world point.
	Unproject(screen mgl32.Vec2, depth float32) (mgl32.Vec3, bool)
}
