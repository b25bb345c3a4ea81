package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Tool int

const (
	ToolSelect Tool = iota
	ToolBoxSelect
	ToolMove
	ToolRotate
	ToolScale
	ToolMeasure
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolBoxSelect:
		return "box-select"
	case ToolMove:
		return "move"
	case ToolRotate:
		return "rotate"
	case ToolScale:
		return "scale"
	case ToolMeasure:
		return "measure"
	default:
		return "unknown"
	}
}

type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// PointerEvent is a host-UI pointer event in top-left-origin screen
// coordinates.
type PointerEvent struct {
	X, Y   float32
	Button MouseButton
	Shift  bool
}

type Cursor int

const (
	CursorArrow Cursor = iota
	CursorCrosshair
	CursorMove
	CursorHand
)

type dragMode int

const (
	dragNone dragMode = iota
	dragAxisMove
	dragFreeMove
	dragRotate
	dragScale
	dragBoxSelect
	dragMeasure
	dragCamera
)

// InteractionController is the state machine between pointer events and the
// rest of the engine. At most one drag mode is active at a time; a press
// while a drag runs is ignored.
type InteractionController struct {
	camera   *OrbitCamera
	renderer Renderer
	registry *Registry
	picker   *Picker
	measure  *MeasureTool
	poll     *TransformPoll
	settings Settings
	log      Logger

	tool Tool
	mode dragMode
	axis Axis

	lastX, lastY     float32
	anchorX, anchorY float32

	freeTarget     *SceneObject
	freeStartWorld mgl32.Vec3
	freeStartPos   mgl32.Vec3

	scaleTarget *SceneObject
	scaleStart  mgl32.Vec3
	scaleToken  *SuspendToken

	// CursorFunc, when set, receives the pointer cursor the host should
	// display.
	CursorFunc func(Cursor)
}

func NewInteractionController(
	camera *OrbitCamera,
	renderer Renderer,
	registry *Registry,
	picker *Picker,
	measure *MeasureTool,
	poll *TransformPoll,
	settings Settings,
	log Logger,
) *InteractionController {
	c := &InteractionController{
		camera:   camera,
		renderer: renderer,
		registry: registry,
		picker:   picker,
		measure:  measure,
		poll:     poll,
		settings: settings,
		log:      log,
	}
	c.registry.SetActiveTool(c.tool)
	return c
}

func (c *InteractionController) CurrentTool() Tool { return c.tool }

func (c *InteractionController) Dragging() bool { return c.mode != dragNone }

// SetTool switches the active tool: gizmos follow the new tool, the measure
// tool activates or clears, and the pointer cursor changes.
func (c *InteractionController) SetTool(tool Tool) {
	c.tool = tool
	if tool == ToolMeasure {
		c.measure.Activate()
	} else if c.measure.Active() {
		c.measure.Deactivate()
	}
	c.registry.SetActiveTool(tool)
	c.setCursor(c.cursorForTool())
	c.log.Debugf("interaction: tool %s", tool)
	c.renderer.RequestRedraw()
}

func (c *InteractionController) PointerPress(ev PointerEvent) {
	if c.mode != dragNone {
		return
	}
	c.lastX, c.lastY = ev.X, ev.Y
	c.anchorX, c.anchorY = ev.X, ev.Y

	if ev.Button == ButtonMiddle {
		c.mode = dragCamera
		c.setCursor(CursorHand)
		return
	}
	if ev.Button != ButtonLeft {
		return
	}

	switch c.tool {
	case ToolMeasure:
		if c.measure.Click(ev.X, ev.Y) {
			c.mode = dragMeasure
		} else {
			c.selectAt(ev)
		}
	case ToolMove:
		if axis := c.registry.MoveGizmo().HitTest(ev.X, ev.Y); axis != AxisNone {
			c.mode = dragAxisMove
			c.axis = axis
		} else if !c.tryFreeMove(ev) {
			c.selectAt(ev)
		}
	case ToolRotate:
		if axis := c.registry.RotateGizmo().HitTest(ev.X, ev.Y); axis != AxisNone {
			c.mode = dragRotate
			c.axis = axis
		} else {
			c.selectAt(ev)
		}
	case ToolScale:
		if axis := c.registry.ScaleGizmo().HitTest(ev.X, ev.Y); axis != AxisNone {
			target := c.registry.ScaleGizmo().Target()
			c.mode = dragScale
			c.axis = axis
			c.scaleTarget = target
			c.scaleStart = target.Scale
			c.scaleToken = c.poll.Suspend()
		} else {
			c.selectAt(ev)
		}
	case ToolBoxSelect:
		c.mode = dragBoxSelect
	default:
		c.selectAt(ev)
	}
	c.renderer.RequestRedraw()
}

func (c *InteractionController) PointerMove(ev PointerEvent) {
	if c.mode == dragNone {
		return
	}
	dx := ev.X - c.lastX
	dy := ev.Y - c.lastY

	switch c.mode {
	case dragCamera:
		if ev.Shift {
			c.camera.Pan(-dx, dy)
		} else {
			s := c.settings.OrbitSensitivity
			c.camera.Orbit(-dx*s, -dy*s)
		}
	case dragAxisMove:
		gizmo := c.registry.MoveGizmo()
		if target := gizmo.Target(); target != nil {
			c.registry.Move(target, gizmo.AxisDelta(c.axis, dx, dy))
		}
	case dragFreeMove:
		if world, ok := c.picker.PickPlanePoint(ev.X, ev.Y); ok && c.freeTarget != nil {
			desired := c.freeStartPos.Add(world.Sub(c.freeStartWorld))
			c.registry.Move(c.freeTarget, desired.Sub(c.freeTarget.Position))
		}
	case dragRotate:
		gizmo := c.registry.RotateGizmo()
		if target := gizmo.Target(); target != nil {
			delta := gizmo.AxisDelta(c.axis, dx, dy)
			c.registry.RotateSet(target, target.Orientation.Add(delta))
		}
	case dragScale:
		if c.scaleTarget != nil {
			total := ev.X - c.anchorX
			c.registry.ScaleSet(c.scaleTarget, c.registry.ScaleGizmo().ScaleFor(c.axis, c.scaleStart, total))
		}
	case dragMeasure:
		c.measure.Drag(ev.X, ev.Y)
	case dragBoxSelect:
		// Selection applies on release; the host draws the rubber band
		// from BoxRect.
	}

	c.lastX, c.lastY = ev.X, ev.Y
	c.renderer.RequestRedraw()
}

func (c *InteractionController) PointerRelease(ev PointerEvent) {
	switch c.mode {
	case dragNone:
		return
	case dragScale:
		c.scaleToken.Resume()
		c.scaleToken = nil
	case dragBoxSelect:
		c.applyBoxSelect(ev)
	case dragMeasure:
		c.measure.Release(ev.X, ev.Y)
	case dragCamera:
		c.setCursor(c.cursorForTool())
	}

	c.mode = dragNone
	c.axis = AxisNone
	c.freeTarget = nil
	c.scaleTarget = nil
	c.renderer.RequestRedraw()
}

// Wheel dollies the camera. Positive deltas (wheel up) zoom in.
func (c *InteractionController) Wheel(dy float32) {
	if dy == 0 {
		return
	}
	if dy > 0 {
		c.camera.Dolly(1 / c.settings.DollyFactor)
	} else {
		c.camera.Dolly(c.settings.DollyFactor)
	}
	c.renderer.RequestRedraw()
}

// BoxRect reports the current box-selection rectangle while one is being
// dragged.
func (c *InteractionController) BoxRect() (x0, y0, x1, y1 float32, active bool) {
	if c.mode != dragBoxSelect {
		return 0, 0, 0, 0, false
	}
	x0, x1 = min(c.anchorX, c.lastX), max(c.anchorX, c.lastX)
	y0, y1 = min(c.anchorY, c.lastY), max(c.anchorY, c.lastY)
	return x0, y0, x1, y1, true
}

func (c *InteractionController) selectAt(ev PointerEvent) {
	if obj := c.picker.PickObject(ev.X, ev.Y); obj != nil {
		c.registry.Select(obj, ev.Shift)
		return
	}
	// Empty click keeps the selection while multi-selecting.
	if !ev.Shift {
		c.registry.DeselectAll()
	}
}

func (c *InteractionController) tryFreeMove(ev PointerEvent) bool {
	obj := c.picker.PickObject(ev.X, ev.Y)
	if obj == nil || !c.registry.IsSelected(obj) {
		return false
	}
	world, ok := c.picker.PickPlanePoint(ev.X, ev.Y)
	if !ok {
		return false
	}
	c.mode = dragFreeMove
	c.freeTarget = obj
	c.freeStartWorld = world
	c.freeStartPos = obj.Position
	return true
}

func (c *InteractionController) applyBoxSelect(ev PointerEvent) {
	x0 := min(c.anchorX, ev.X) - c.settings.BoxSelectTolerancePx
	x1 := max(c.anchorX, ev.X) + c.settings.BoxSelectTolerancePx
	y0 := min(c.anchorY, ev.Y) - c.settings.BoxSelectTolerancePx
	y1 := max(c.anchorY, ev.Y) + c.settings.BoxSelectTolerancePx

	var picked []*SceneObject
	for _, obj := range c.registry.VisibleObjects() {
		screen, ok := c.renderer.Project(obj.Position)
		if !ok {
			continue
		}
		if screen.X() >= x0 && screen.X() <= x1 && screen.Y() >= y0 && screen.Y() <= y1 {
			picked = append(picked, obj)
		}
	}

	if len(picked) == 0 {
		if !ev.Shift {
			c.registry.DeselectAll()
		}
		return
	}

	if ev.Shift {
		merged := c.registry.Selection()
		for _, obj := range picked {
			if !c.registry.IsSelected(obj) {
				merged = append(merged, obj)
			}
		}
		c.registry.SelectSet(merged)
	} else {
		c.registry.SelectSet(picked)
	}
}

func (c *InteractionController) cursorForTool() Cursor {
	switch c.tool {
	case ToolMove, ToolScale:
		return CursorMove
	case ToolRotate, ToolMeasure, ToolBoxSelect:
		return CursorCrosshair
	default:
		return CursorArrow
	}
}

func (c *InteractionController) setCursor(cursor Cursor) {
	if c.CursorFunc != nil {
		c.CursorFunc(cursor)
	}
}
