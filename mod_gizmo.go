package rtgizmo

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gekko3d/rtgizmo/rt/core"
	"github.com/gekko3d/rtgizmo/rt/draw"
	"github.com/gekko3d/rtgizmo/rt/gizmo"
	"github.com/gekko3d/rtgizmo/rt/undo"
)

// Orbit drives the viewer camera around a focus point.
type Orbit struct {
	Focus    mgl32.Vec3
	Yaw      float32 // degrees
	Pitch    float32 // degrees
	Distance float32

	focusTween [3]*gween.Tween
}

const (
	orbitDegreesPerPixel = 0.3
	orbitZoomStep        = 0.1
	orbitMinDistance     = 1
	orbitMaxDistance     = 200
	orbitFocusSeconds    = 0.35
)

func (o *Orbit) apply(dx, dy, scroll float64) {
	o.Yaw -= float32(dx) * orbitDegreesPerPixel
	o.Pitch = mgl32.Clamp(o.Pitch-float32(dy)*orbitDegreesPerPixel, -89, 89)
	if scroll != 0 {
		o.Distance *= 1 - float32(scroll)*orbitZoomStep
	}
	o.Distance = mgl32.Clamp(o.Distance, orbitMinDistance, orbitMaxDistance)
}

// focusOn starts easing the focus towards p.
func (o *Orbit) focusOn(p mgl32.Vec3) {
	for i := range o.focusTween {
		o.focusTween[i] = gween.New(o.Focus[i], p[i], orbitFocusSeconds, ease.OutCubic)
	}
}

// step advances a running focus animation and reports whether the focus moved.
func (o *Orbit) step(dt float32) bool {
	moved := false
	for i, tw := range o.focusTween {
		if tw == nil {
			continue
		}
		v, done := tw.Update(dt)
		o.Focus[i] = v
		moved = true
		if done {
			o.focusTween[i] = nil
		}
	}
	return moved
}

// GizmoState is the editor resource: the gizmo, what it edits and its history.
type GizmoState struct {
	Controller  *gizmo.Controller
	Target      *core.Transform
	Orbit       Orbit
	BoundsColor draw.Color
}

// GizmoModule installs a camera, a draw list and a gizmo bound to Target.
// Without a target a unit box at the origin is edited.
type GizmoModule struct {
	Config gizmo.Config
	Target *core.Transform
}

func (m GizmoModule) Install(app *App, cmd *Commands) {
	log := app.Logger()

	width, height := 1280, 720
	if ws, ok := Resource[WindowState](app); ok {
		width, height = ws.WindowWidth, ws.WindowHeight
	}
	cam := core.NewCamera(width, height)

	target := m.Target
	if target == nil {
		target = core.NewTransform()
		target.BoundsMin = mgl32.Vec3{-0.5, -0.5, -0.5}
		target.BoundsMax = mgl32.Vec3{0.5, 0.5, 0.5}
	}

	state := &GizmoState{
		Controller:  gizmo.NewController(m.Config, cam, undo.NewStack(m.Config.MaxUndoStored), log),
		Target:      target,
		Orbit:       Orbit{Yaw: 30, Pitch: -20, Distance: 10},
		BoundsColor: draw.Color{1, 1, 1, 0.6},
	}
	state.Orbit.Focus = target.Center()
	cam.Orbit(state.Orbit.Focus, state.Orbit.Yaw, state.Orbit.Pitch, state.Orbit.Distance)
	state.Controller.SetTarget(target)

	cmd.AddResources(cam, draw.NewList(), state)
	cmd.UseSystem(System(cameraControlSystem).InStage(Update))
	cmd.UseSystem(System(func(gs *GizmoState, input *Input, t *Time) {
		applyToggles(gs.Controller, input, log)
		gs.Controller.Tick(t.Seconds(), frameInput(input))
	}).InStage(Update))
	cmd.UseSystem(System(gizmoDrawSystem).InStage(PreRender))

	log.Infof("gizmo ready: space=%v pivot=%v undo=%d", m.Config.Space, m.Config.Pivot, m.Config.MaxUndoStored)
}

// cameraControlSystem orbits on right-drag, zooms on scroll and eases the
// focus onto the target on F. The camera stays put while the gizmo is dragging.
func cameraControlSystem(gs *GizmoState, cam *core.Camera, input *Input, t *Time) {
	if input.WindowWidth > 0 && input.WindowHeight > 0 {
		cam.Width, cam.Height = input.WindowWidth, input.WindowHeight
	}
	if gs.Controller.Dragging() {
		return
	}

	if input.JustPressed[KeyF] && gs.Target != nil {
		gs.Orbit.focusOn(gs.Target.Center())
	}
	focusMoved := gs.Orbit.step(t.Seconds())

	var dx, dy float64
	if input.Pressed[MouseButtonRight] && !input.JustPressed[MouseButtonRight] {
		dx, dy = input.MouseDeltaX, input.MouseDeltaY
	}
	if dx == 0 && dy == 0 && input.ScrollY == 0 && !focusMoved {
		return
	}
	gs.Orbit.apply(dx, dy, input.ScrollY)
	cam.Orbit(gs.Orbit.Focus, gs.Orbit.Yaw, gs.Orbit.Pitch, gs.Orbit.Distance)
}

// frameInput maps the host's keyboard and mouse onto the gizmo's frame input.
// Ctrl (or Cmd) is the action modifier: Ctrl+Z undoes, Ctrl+Y or Ctrl+Shift+Z
// redoes. Shift is precision, Escape cancels a drag.
func frameInput(input *Input) gizmo.FrameInput {
	action := input.Pressed[KeyControl] || input.Pressed[KeySuper]
	shift := input.Pressed[KeyShift]
	return gizmo.FrameInput{
		PointerX:        input.MouseX,
		PointerY:        input.MouseY,
		PointerDown:     input.Pressed[MouseButtonLeft],
		PointerPressed:  input.JustPressed[MouseButtonLeft],
		PointerReleased: input.JustReleased[MouseButtonLeft],
		Precision:       shift,
		Action:          action,
		Undo:            input.JustPressed[KeyZ] && !shift,
		Redo:            input.JustPressed[KeyY] || (input.JustPressed[KeyZ] && shift),
		Cancel:          input.JustPressed[KeyEscape],
		FocusLost:       input.FocusLost,
	}
}

// applyToggles handles the unmodified editor keys: P latches precision, L
// flips the handle space, C flips the pivot and R resets the target.
func applyToggles(c *gizmo.Controller, input *Input, log Logger) {
	if input.Pressed[KeyControl] || input.Pressed[KeySuper] || c.Dragging() {
		return
	}
	if input.JustPressed[KeyP] {
		c.SetPrecision(!c.Precision())
		log.Infof("precision %v", c.Precision())
	}
	if input.JustPressed[KeyL] {
		space := gizmo.SpaceLocal
		if c.Config().Space == gizmo.SpaceLocal {
			space = gizmo.SpaceGlobal
		}
		c.SetSpace(space)
		log.Infof("space %v", space)
	}
	if input.JustPressed[KeyC] {
		pivot := gizmo.PivotCenter
		if c.Config().Pivot == gizmo.PivotCenter {
			pivot = gizmo.PivotPoint
		}
		c.SetPivot(pivot)
		log.Infof("pivot %v", pivot)
	}
	if input.JustPressed[KeyR] && c.ResetTransform() {
		log.Infof("target reset")
	}
}

func gizmoDrawSystem(gs *GizmoState, list *draw.List) {
	list.Reset()
	if gs.Target != nil && gs.Target.BoundsMin != gs.Target.BoundsMax {
		list.DrawLines(boundsLines(nil, gs.Target), gs.BoundsColor)
	}
	gs.Controller.Draw(list)
}

// boundsLines appends the twelve edges of t's bounds as a line list.
func boundsLines(dst []mgl32.Vec3, t *core.Transform) []mgl32.Vec3 {
	corners := t.Corners()
	for i := range corners {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				dst = append(dst, corners[i], corners[i|bit])
			}
		}
	}
	return dst
}
