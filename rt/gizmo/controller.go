package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rtgizmo/rt/core"
	"github.com/gekko3d/rtgizmo/rt/undo"
)

// Logger is the slice of the host logger the controller writes to.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// FrameInput is the pointer and key state for one frame. Pressed/Released are
// edges; Down and the modifier flags are levels.
type FrameInput struct {
	PointerX, PointerY float64
	PointerDown        bool
	PointerPressed     bool
	PointerReleased    bool

	Precision bool // precision modifier held
	Action    bool // undo/redo modifier held
	Undo      bool
	Redo      bool
	Cancel    bool
	FocusLost bool
}

// Phase is the controller's drag state. PhaseCommitting only lasts while a
// release or focus loss is being recorded inside Tick, so Phase() reports
// Idle or Dragging between ticks.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	default:
		return "idle"
	}
}

// Controller is a translate/rotate gizmo for one target transform. It is
// driven by Tick once per frame and is not safe for concurrent use.
type Controller struct {
	cfg    Config
	camera *core.Camera
	stack  *undo.Stack
	log    Logger

	target    *core.Transform
	pivot     mgl32.Vec3
	axisInfo  AxisInfo
	axis      Axis
	handle    HandleKind
	phase     Phase
	session   *dragSession
	precision bool

	cached    core.Pose
	hasCached bool

	handleLines     AxisVectors
	handleTriangles AxisVectors
	circleLines     AxisVectors
	dragCircleLines AxisVectors
}

func NewController(cfg Config, camera *core.Camera, stack *undo.Stack, logger Logger) *Controller {
	if stack == nil {
		stack = undo.NewStack(cfg.MaxUndoStored)
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Controller{
		cfg:    cfg,
		camera: camera,
		stack:  stack,
		log:    logger,
	}
}

func (c *Controller) Config() Config          { return c.cfg }
func (c *Controller) Stack() *undo.Stack      { return c.stack }
func (c *Controller) Target() *core.Transform { return c.target }
func (c *Controller) Axis() Axis              { return c.axis }
func (c *Controller) Handle() HandleKind      { return c.handle }
func (c *Controller) Phase() Phase            { return c.phase }
func (c *Controller) Dragging() bool          { return c.phase == PhaseDragging }
func (c *Controller) PivotPoint() mgl32.Vec3  { return c.pivot }
func (c *Controller) AxisInfo() AxisInfo      { return c.axisInfo }
func (c *Controller) Precision() bool         { return c.precision }

// SetPrecision latches precision mode on or off, independent of the modifier.
func (c *Controller) SetPrecision(on bool) { c.precision = on }

// SetTarget binds the gizmo to t and caches its pose for ResetTransform.
// A drag in progress on the previous target is discarded.
func (c *Controller) SetTarget(t *core.Transform) {
	if c.session != nil {
		c.discard()
	}
	c.target = t
	c.axis = AxisNone
	if t == nil {
		return
	}
	c.SetPivotPoint()
	c.CacheTransform()
	if c.camera != nil {
		c.rebuildHandles()
	}
}

func (c *Controller) ClearTarget() { c.SetTarget(nil) }

func (c *Controller) SetSpace(s Space) { c.cfg.Space = s }

func (c *Controller) SetPivot(p Pivot) {
	c.cfg.Pivot = p
	c.SetPivotPoint()
}

// SetPivotPoint moves the gizmo back onto the target's pivot or bounds centre.
func (c *Controller) SetPivotPoint() {
	if c.target == nil {
		return
	}
	if c.cfg.Pivot == PivotCenter {
		c.pivot = c.target.Center()
	} else {
		c.pivot = c.target.Position
	}
}

// DistanceMultiplier scales handle sizes so they stay the same on screen.
func (c *Controller) DistanceMultiplier() float32 {
	if c.target == nil || c.camera == nil {
		return 0
	}
	if c.camera.Projection == core.Orthographic {
		return maxf(0.01, c.camera.OrthoSize*2)
	}
	d := core.MagnitudeInDirection(c.pivot.Sub(c.camera.Position), c.camera.Forward())
	return maxf(0.01, float32(math.Abs(float64(d))))
}

func (c *Controller) precisionActive(in FrameInput) bool {
	return c.precision || in.Precision
}

// Tick advances the gizmo by one frame.
func (c *Controller) Tick(dt float32, in FrameInput) {
	if c.cfg.MaxUndoStored != c.stack.MaxStored() {
		c.stack.SetMaxStored(c.cfg.MaxUndoStored)
	}
	if c.phase == PhaseIdle {
		c.handleUndoRedo(in)
	}

	if c.target == nil || c.camera == nil {
		c.axis = AxisNone
		return
	}

	switch c.phase {
	case PhaseIdle:
		c.updateNearAxis(in)
		if c.axis != AxisNone && in.PointerPressed {
			if c.begin() {
				c.dragFrame(in)
			}
		}
	case PhaseDragging:
		c.session.elapsed += dt
		switch {
		case in.Cancel:
			c.cancel()
		case in.PointerReleased, in.FocusLost:
			c.commit()
		default:
			c.dragFrame(in)
		}
	}

	c.rebuildHandles()
}

func (c *Controller) handleUndoRedo(in FrameInput) {
	if !in.Action {
		return
	}
	if in.Undo {
		c.Undo()
	} else if in.Redo {
		c.Redo()
	}
}

func (c *Controller) Undo() bool {
	if c.phase != PhaseIdle {
		return false
	}
	cmd := c.stack.Undoable()
	if !c.stack.Undo() {
		return false
	}
	c.SetPivotPoint()
	c.log.Debugf("gizmo: undo %v", cmd)
	return true
}

func (c *Controller) Redo() bool {
	if c.phase != PhaseIdle {
		return false
	}
	cmd := c.stack.Redoable()
	if !c.stack.Redo() {
		return false
	}
	c.SetPivotPoint()
	c.log.Debugf("gizmo: redo %v", cmd)
	return true
}

// CacheTransform remembers the target's current pose for ResetTransform.
func (c *Controller) CacheTransform() {
	if c.target == nil {
		return
	}
	c.cached = c.target.Pose()
	c.hasCached = true
}

// ResetTransform returns the target to the cached pose as an undoable edit.
func (c *Controller) ResetTransform() bool {
	if c.target == nil || !c.hasCached || c.phase != PhaseIdle {
		return false
	}
	cmd := undo.NewTransformCommand(c.target, c.target.Pose(), c.cached)
	if !cmd.Changed() {
		return false
	}
	c.stack.Execute(cmd)
	c.SetPivotPoint()
	c.log.Debugf("gizmo: reset %s", cmd)
	return true
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
