package cmd

import (
	"fmt"

	"github.com/gekko3d/atelier"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
)

// boxSurface is a stand-in mesh handle for the scripted session. Real hosts
// plug in a MeshSource.
type boxSurface struct {
	half mgl32.Vec3
}

func (b boxSurface) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	return b.half.Mul(-1), b.half
}

func (b boxSurface) Counts() (int, int, int) { return 8, 6, 12 }

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted manipulation session against the headless renderer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo() error {
	settings := atelier.DefaultSettings()
	log := atelier.NewDefaultLogger("atelier", verbose)
	camera := atelier.NewOrbitCamera(settings)
	renderer := atelier.NewHeadlessRenderer(camera, 800, 600)

	ctx := atelier.NewViewportBuilder().
		WithSettings(settings).
		WithLogger(log).
		WithCamera(camera).
		WithRenderer(renderer).
		Build()

	cube := atelier.NewPrimitiveObject("cube", boxSurface{half: mgl32.Vec3{1, 1, 1}})
	ctx.Registry.Add(cube)

	slab := atelier.NewPrimitiveObject("slab", boxSurface{half: mgl32.Vec3{2, 0.2, 1}})
	slab.Position = mgl32.Vec3{5, 0, 0}
	ctx.Registry.Add(slab)

	ctrl := ctx.Controller

	// Click the cube to select it.
	screen, ok := renderer.Project(cube.Position)
	if !ok {
		return fmt.Errorf("cube projects off screen")
	}
	press(ctrl, screen, false)
	release(ctrl, screen)
	fmt.Printf("selected: %d object(s)\n", len(ctx.Registry.Selection()))

	// Drag the red arrow of the move gizmo.
	ctrl.SetTool(atelier.ToolMove)
	arrowTip, ok := renderer.Project(cube.Position.Add(mgl32.Vec3{2.5, 0, 0}))
	if !ok {
		return fmt.Errorf("gizmo arrow projects off screen")
	}
	press(ctrl, arrowTip, false)
	drag(ctrl, arrowTip.Add(mgl32.Vec2{40, 0}))
	release(ctrl, arrowTip.Add(mgl32.Vec2{40, 0}))
	fmt.Printf("cube after move: %v\n", cube.Position)

	// Measure from the origin plane.
	ctrl.SetTool(atelier.ToolMeasure)
	a := mgl32.Vec2{300, 300}
	b := mgl32.Vec2{500, 300}
	press(ctrl, a, false)
	drag(ctrl, b)
	release(ctrl, b)
	if d, measured := ctx.Measure.Distance(); measured {
		fmt.Printf("measured distance: %s\n", atelier.FormatDistance(d))
	}

	// Orbit and zoom the view.
	mid := mgl32.Vec2{400, 300}
	pressButton(ctrl, mid, atelier.ButtonMiddle)
	drag(ctrl, mid.Add(mgl32.Vec2{60, -20}))
	release(ctrl, mid.Add(mgl32.Vec2{60, -20}))
	ctrl.Wheel(1)

	stats := ctx.Registry.Stats()
	fmt.Printf("scene: %d objects, %d selected, %d vertices\n", stats.Objects, stats.Selected, stats.Vertices)
	fmt.Printf("camera: radius %.2f azimuth %.3f polar %.3f\n", camera.Radius, camera.Azimuth, camera.Polar)
	fmt.Printf("redraws: %d\n", renderer.RedrawCount())
	return nil
}

func press(c *atelier.InteractionController, at mgl32.Vec2, shift bool) {
	c.PointerPress(atelier.PointerEvent{X: at.X(), Y: at.Y(), Button: atelier.ButtonLeft, Shift: shift})
}

func pressButton(c *atelier.InteractionController, at mgl32.Vec2, button atelier.MouseButton) {
	c.PointerPress(atelier.PointerEvent{X: at.X(), Y: at.Y(), Button: button})
}

func drag(c *atelier.InteractionController, to mgl32.Vec2) {
	c.PointerMove(atelier.PointerEvent{X: to.X(), Y: to.Y()})
}

func release(c *atelier.InteractionController, at mgl32.Vec2) {
	c.PointerRelease(atelier.PointerEvent{X: at.X(), Y: at.Y(), Button: atelier.ButtonLeft})
}
