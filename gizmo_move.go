package atelier

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MoveGizmo shows three axis arrows at the target. Dragging an arrow
// translates the target along that world axis only.
type MoveGizmo struct {
	gizmoBase
}

func NewMoveGizmo(renderer Renderer, settings Settings) *MoveGizmo {
	g := &MoveGizmo{gizmoBase: newGizmoBase(renderer, settings)}
	for _, axis := range handleAxes {
		end := axisDirs[axis].Mul(settings.GizmoArrowLength)
		g.addHandle(axis, NewArrowGlyph(mgl32.Vec3{}, end, axisColors[axis]))
	}
	return g
}

func (g *MoveGizmo) Show(target *SceneObject, targetHandle RenderableId) {
	g.show(target, targetHandle, g.settings.DimOpacityMove)
}

// HitTest returns the arrow under the screen point, preferring the nearest
// one along the pick ray.
func (g *MoveGizmo) HitTest(x, y float32) Axis {
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
	for _, axis := range handleAxes {
		tRay, tLine, dist := closestPointsOnLines(ray.Origin, ray.Direction, origin, axisDirs[axis])
		if tRay <= 0 || tLine < 0 || tLine > g.settings.GizmoArrowLength {
			continue
		}
		if dist < g.settings.GizmoArrowPickRadius && tRay < bestT {
			bestT = tRay
			best = axis
		}
	}
	return best
}

// AxisDelta maps a pixel drag delta to a world-space translation along the
// given axis. The x and z arrows are sign-inverted so dragging toward the
// arrow tip on screen moves the object toward the tip.
func (g *MoveGizmo) AxisDelta(axis Axis, dxPx, dyPx float32) mgl32.Vec3 {
	s := g.settings.MoveSensitivity
	switch axis {
	case AxisX:
		return mgl32.Vec3{-dxPx * s, 0, 0}
	case AxisY:
		return mgl32.Vec3{0, dxPx * s, 0}
	case AxisZ:
		return mgl32.Vec3{0, 0, -dyPx * s}
	default:
		return mgl32.Vec3{}
	}
}
