package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rtgizmo/rt/core"
	"github.com/gekko3d/rtgizmo/rt/undo"
)

// dragSession lives from pointer-down on a handle until the drag ends.
type dragSession struct {
	axis          Axis
	handle        HandleKind
	originPivot   mgl32.Vec3
	planeNormal   mgl32.Vec3
	direction     mgl32.Vec3
	projectedAxis mgl32.Vec3
	totalRotation mgl32.Quat
	before        core.Pose

	prevPoint mgl32.Vec3
	hasPrev   bool
	elapsed   float32
}

func (c *Controller) begin() bool {
	planeNormal := core.NormalizeOrZero(c.camera.Position.Sub(c.pivot))
	if planeNormal.Len() == 0 {
		return false
	}

	dir := c.axisInfo.Direction(c.axis)
	if c.axis == AxisAny {
		dir = planeNormal
	}

	c.session = &dragSession{
		axis:          c.axis,
		handle:        c.handle,
		originPivot:   c.pivot,
		planeNormal:   planeNormal,
		direction:     dir,
		projectedAxis: core.NormalizeOrZero(core.ProjectOnPlane(dir, planeNormal)),
		totalRotation: mgl32.QuatIdent(),
		before:        c.target.Pose(),
	}
	c.phase = PhaseDragging
	c.log.Debugf("gizmo: begin %s %s", c.handle, c.axis)
	return true
}

// dragFrame applies the pointer movement since the previous frame. A pointer
// ray parallel to the drag plane skips the frame and forgets the previous
// point, so the next valid frame starts fresh instead of jumping.
func (c *Controller) dragFrame(in FrameInput) {
	s := c.session
	ray := c.camera.ScreenPointToRay(in.PointerX, in.PointerY)
	point, ok := core.LinePlaneIntersect(ray.Origin, ray.Direction, s.originPivot, s.planeNormal)
	if !ok {
		s.hasPrev = false
		return
	}

	mult := float32(1)
	if c.precisionActive(in) {
		mult = c.cfg.HighPrecisionMult
	}

	if s.hasPrev {
		delta := point.Sub(s.prevPoint)
		if s.handle == HandleTranslate {
			c.translate(delta, mult)
		} else {
			c.rotate(delta, mult)
		}
	}

	s.prevPoint = point
	s.hasPrev = true
}

func (c *Controller) translate(delta mgl32.Vec3, mult float32) {
	s := c.session
	amount := delta.Dot(s.projectedAxis) * c.cfg.MoveSpeedMultiplier * mult
	movement := s.direction.Mul(amount)

	c.target.Translate(movement)
	c.pivot = c.pivot.Add(movement)
}

func (c *Controller) rotate(delta mgl32.Vec3, mult float32) {
	s := c.session

	var dragDir mgl32.Vec3
	if s.axis == AxisAny || core.IsParallel(s.direction, s.planeNormal) {
		// Turning about the view axis: move around the pivot to turn.
		dragDir = s.planeNormal.Cross(s.prevPoint.Sub(s.originPivot))
	} else {
		dragDir = s.direction.Cross(s.planeNormal)
	}
	dragDir = core.NormalizeOrZero(dragDir)
	if dragDir.Len() == 0 {
		return
	}

	degrees := delta.Dot(dragDir) * c.cfg.RotateSpeedMultiplier * mult / c.DistanceMultiplier()
	if degrees == 0 {
		return
	}

	if c.cfg.Pivot == PivotCenter {
		c.target.RotateAround(s.originPivot, s.direction, degrees)
	} else {
		c.target.Rotate(s.direction, degrees)
	}

	step := mgl32.QuatRotate(mgl32.DegToRad(degrees), s.direction)
	s.totalRotation = s.totalRotation.Mul(step).Normalize()
}

// commit records the whole drag as one undoable group holding the target's
// before and after poses.
func (c *Controller) commit() {
	s := c.session
	c.phase = PhaseCommitting

	cmd := undo.NewGroup(undo.NewTransformCommand(c.target, s.before, c.target.Pose()))
	c.stack.Insert(cmd)
	c.log.Debugf("gizmo: commit %s after %.2fs", cmd, s.elapsed)

	c.endSession()
}

// cancel puts the target back where the drag started and records nothing.
func (c *Controller) cancel() {
	c.target.SetPose(c.session.before)
	c.log.Debugf("gizmo: drag cancelled")
	c.endSession()
}

// discard drops the session without touching the target.
func (c *Controller) discard() {
	c.log.Debugf("gizmo: drag discarded")
	c.session = nil
	c.phase = PhaseIdle
}

func (c *Controller) endSession() {
	c.session = nil
	c.phase = PhaseIdle
	c.SetPivotPoint()
}
