package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ViewportContext bundles everything one viewport needs. Nothing in the
// engine is global; two viewports are two contexts.
type ViewportContext struct {
	Settings   Settings
	Log        Logger
	Camera     *OrbitCamera
	Renderer   Renderer
	Registry   *Registry
	Picker     *Picker
	Measure    *MeasureTool
	Poll       *TransformPoll
	Controller *InteractionController

	mainView *orbitPose
}

type orbitPose struct {
	radius  float32
	polar   float32
	azimuth float32
	pivot   mgl32.Vec3
}

// ViewportBuilder assembles a ViewportContext. The renderer is the only
// mandatory part; everything else falls back to defaults.
type ViewportBuilder struct {
	settings *Settings
	log      Logger
	camera   *OrbitCamera
	renderer Renderer
	pollFn   func()
}

func NewViewportBuilder() *ViewportBuilder {
	return &ViewportBuilder{}
}

func (b *ViewportBuilder) WithSettings(s Settings) *ViewportBuilder {
	b.settings = &s
	return b
}

func (b *ViewportBuilder) WithLogger(log Logger) *ViewportBuilder {
	b.log = log
	return b
}

func (b *ViewportBuilder) WithCamera(camera *OrbitCamera) *ViewportBuilder {
	b.camera = camera
	return b
}

func (b *ViewportBuilder) WithRenderer(renderer Renderer) *ViewportBuilder {
	b.renderer = renderer
	return b
}

// WithPollFunc sets the callback the transform poll fires at the configured
// rate.
func (b *ViewportBuilder) WithPollFunc(fn func()) *ViewportBuilder {
	b.pollFn = fn
	return b
}

func (b *ViewportBuilder) Build() *ViewportContext {
	settings := DefaultSettings()
	if b.settings != nil {
		settings = *b.settings
	}
	log := b.log
	if log == nil {
		log = NewNopLogger()
	}
	camera := b.camera
	if camera == nil {
		camera = NewOrbitCamera(settings)
	}
	renderer := b.renderer
	if renderer == nil {
		w, h := 800, 600
		renderer = NewHeadlessRenderer(camera, w, h)
	}

	registry := NewRegistry(renderer, settings, log)
	picker := NewPicker(renderer, camera, registry)
	measure := NewMeasureTool(renderer, picker, settings, log)
	poll := NewTransformPoll(settings.PollHz, b.pollFn)
	controller := NewInteractionController(camera, renderer, registry, picker, measure, poll, settings, log)

	return &ViewportContext{
		Settings:   settings,
		Log:        log,
		Camera:     camera,
		Renderer:   renderer,
		Registry:   registry,
		Picker:     picker,
		Measure:    measure,
		Poll:       poll,
		Controller: controller,
	}
}

// ViewFromCamera swaps the viewport to look through a scene-camera object.
// The current orbit pose is backed up so ResetToMainView can restore it.
// Objects without a camera payload are ignored.
func (ctx *ViewportContext) ViewFromCamera(obj *SceneObject) bool {
	if obj == nil || obj.Camera == nil {
		return false
	}
	if ctx.mainView == nil {
		ctx.mainView = &orbitPose{
			radius:  ctx.Camera.Radius,
			polar:   ctx.Camera.Polar,
			azimuth: ctx.Camera.Azimuth,
			pivot:   ctx.Camera.Pivot,
		}
	}
	ctx.Camera.SetPose(obj.Position, obj.Camera.FocalPoint)
	ctx.Renderer.RequestRedraw()
	return true
}

// ResetToMainView restores the orbit pose saved by the last ViewFromCamera.
// Without a backup it resets the camera to defaults.
func (ctx *ViewportContext) ResetToMainView() {
	if ctx.mainView == nil {
		ctx.Camera.Reset()
		ctx.Renderer.RequestRedraw()
		return
	}
	ctx.Camera.Pivot = ctx.mainView.pivot
	ctx.Camera.Radius = ctx.mainView.radius
	ctx.Camera.Polar = ctx.mainView.polar
	ctx.Camera.Azimuth = ctx.mainView.azimuth
	ctx.Camera.RefreshClipRange()
	ctx.mainView = nil
	ctx.Renderer.RequestRedraw()
}
