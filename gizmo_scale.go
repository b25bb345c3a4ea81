package atelier

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ScaleGizmo shows a cube handle at the end of each axis plus a larger
// uniform handle at the center. Dragging a handle scales the target against
// the scale captured at drag start.
type ScaleGizmo struct {
	gizmoBase
}

func NewScaleGizmo(renderer Renderer, settings Settings) *ScaleGizmo {
	g := &ScaleGizmo{gizmoBase: newGizmoBase(renderer, settings)}
	size := settings.GizmoHandleSize
	for _, axis := range handleAxes {
		center := axisDirs[axis].Mul(settings.GizmoArrowLength)
		g.addHandle(axis, NewCubeGlyph(center, mgl32.Vec3{size, size, size}, axisColors[axis]))
	}
	u := settings.GizmoUniformHandleSize
	g.addHandle(AxisUniform, NewCubeGlyph(mgl32.Vec3{}, mgl32.Vec3{u, u, u}, axisColors[AxisUniform]))
	return g
}

func (g *ScaleGizmo) Show(target *SceneObject, targetHandle RenderableId) {
	g.show(target, targetHandle, g.settings.DimOpacityMove)
}

// HitTest treats each cube handle as a sphere around its center and picks
// the nearest one the ray passes through.
func (g *ScaleGizmo) HitTest(x, y float32) Axis {
	if !g.visible || g.target == nil {
		return AxisNone
	}
	ray, ok := screenRay(g.renderer, x, y)
	if !ok {
		return AxisNone
	}

	origin := g.target.Position
	best := AxisNone
	bestT := float32(math.MaxFloat32)

	test := func(axis Axis, center mgl32.Vec3, size float32) {
		t := center.Sub(ray.Origin).Dot(ray.Direction)
		if t <= 0 || t >= bestT {
			return
		}
		closest := ray.Origin.Add(ray.Direction.Mul(t))
		if closest.Sub(center).Len() < size*0.75 {
			bestT = t
			best = axis
		}
	}

	for _, axis := range handleAxes {
		center := origin.Add(axisDirs[axis].Mul(g.settings.GizmoArrowLength))
		test(axis, center, g.settings.GizmoHandleSize)
	}
	test(AxisUniform, origin, g.settings.GizmoUniformHandleSize)
	return best
}

// ScaleFor maps the total horizontal drag distance since drag start to a new
// scale, relative to the scale captured when the drag began.
func (g *ScaleGizmo) ScaleFor(axis Axis, startScale mgl32.Vec3, totalDxPx float32) mgl32.Vec3 {
	factor := 1 + totalDxPx*g.settings.ScaleSensitivity
	out := startScale
	switch axis {
	case AxisX:
		out[0] = startScale.X() * factor
	case AxisY:
		out[1] = startScale.Y() * factor
	case AxisZ:
		out[2] = startScale.Z() * factor
	case AxisUniform:
		out = startScale.Mul(factor)
	}
	return out
}
