package atelier

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RotateGizmo shows three rings around the target, one per world axis.
// Dragging a ring applies incremental Euler rotation about that axis.
type RotateGizmo struct {
	gizmoBase
}

func NewRotateGizmo(renderer Renderer, settings Settings) *RotateGizmo {
	g := &RotateGizmo{gizmoBase: newGizmoBase(renderer, settings)}
	for _, axis := range handleAxes {
		g.addHandle(axis, NewCircleGlyph(axisDirs[axis], mgl32.Vec3{}, settings.GizmoRingRadius, axisColors[axis]))
	}
	return g
}

func (g *RotateGizmo) Show(target *SceneObject, targetHandle RenderableId) {
	g.show(target, targetHandle, g.settings.DimOpacityRotate)
}

// HitTest intersects the pick ray with each ring plane and accepts hits
// within the pick band around the ring radius.
func (g *RotateGizmo) HitTest(x, y float32) Axis {
	if !g.visible || g.target == nil {
		return AxisNone
	}
	ray, ok := screenRay(g.renderer, x, y)
	if !ok {
		return AxisNone
	}

	center := g.target.Position
	best := AxisNone
	bestT := float32(math.MaxFloat32)
	for _, axis := range handleAxes {
		normal := axisDirs[axis]
		denom := ray.Direction.Dot(normal)
		if float32(math.Abs(float64(denom))) <= geomEpsilon {
			continue
		}
		t := center.Sub(ray.Origin).Dot(normal) / denom
		if t <= 0 || t >= bestT {
			continue
		}
		hit := ray.Origin.Add(ray.Direction.Mul(t))
		ringDist := hit.Sub(center).Len()
		band := g.settings.GizmoRingPickBand
		if ringDist > g.settings.GizmoRingRadius-band && ringDist < g.settings.GizmoRingRadius+band {
			bestT = t
			best = axis
		}
	}
	return best
}

// AxisDelta maps a pixel drag delta to an incremental Euler rotation in
// degrees about the given axis. The x ring follows vertical motion, the
// other two follow horizontal motion.
func (g *RotateGizmo) AxisDelta(axis Axis, dxPx, dyPx float32) mgl32.Vec3 {
	s := g.settings.RotateSensitivity
	switch axis {
	case AxisX:
		return mgl32.Vec3{dyPx * s, 0, 0}
	case AxisY:
		return mgl32.Vec3{0, dxPx * s, 0}
	case AxisZ:
		return mgl32.Vec3{0, 0, dxPx * s}
	default:
		return mgl32.Vec3{}
	}
}
