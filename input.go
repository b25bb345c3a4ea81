//go:build cgo

package atelier

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwAdapter translates GLFW window events into controller calls and maps
// the engine cursors onto standard GLFW cursors. The window itself stays the
// host's business.
type GlfwAdapter struct {
	controller *InteractionController
	cursors    map[Cursor]*glfw.Cursor

	x, y  float64
	shift bool
}

func NewGlfwAdapter(controller *InteractionController) *GlfwAdapter {
	return &GlfwAdapter{
		controller: controller,
		cursors:    make(map[Cursor]*glfw.Cursor),
	}
}

// Install hooks the adapter into the window's pointer callbacks and routes
// cursor changes back to it.
func (a *GlfwAdapter) Install(w *glfw.Window) {
	a.controller.CursorFunc = func(c Cursor) {
		w.SetCursor(a.cursor(c))
	}

	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.x, a.y = x, y
		a.controller.PointerMove(PointerEvent{X: float32(x), Y: float32(y), Shift: a.shift})
	})

	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		a.shift = mods&glfw.ModShift != 0
		ev := PointerEvent{
			X:      float32(a.x),
			Y:      float32(a.y),
			Button: mapMouseButton(button),
			Shift:  a.shift,
		}
		switch action {
		case glfw.Press:
			a.controller.PointerPress(ev)
		case glfw.Release:
			a.controller.PointerRelease(ev)
		}
	})

	w.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		a.controller.Wheel(float32(yoff))
	})
}

func (a *GlfwAdapter) cursor(c Cursor) *glfw.Cursor {
	if cur, ok := a.cursors[c]; ok {
		return cur
	}
	var shape glfw.StandardCursor
	switch c {
	case CursorCrosshair:
		shape = glfw.CrosshairCursor
	case CursorMove:
		shape = glfw.HResizeCursor
	case CursorHand:
		shape = glfw.HandCursor
	default:
		shape = glfw.ArrowCursor
	}
	cur := glfw.CreateStandardCursor(shape)
	a.cursors[c] = cur
	return cur
}

func mapMouseButton(b glfw.MouseButton) MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return ButtonLeft
	case glfw.MouseButtonMiddle:
		return ButtonMiddle
	case glfw.MouseButtonRight:
		return ButtonRight
	default:
		return ButtonNone
	}
}
