package gizmo

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rtgizmo/rt/core"
)

// Axis is the handle under the pointer, or the one being dragged.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
	AxisAny
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	case AxisAny:
		return "Any"
	default:
		return "None"
	}
}

type HandleKind int

const (
	HandleTranslate HandleKind = iota
	HandleRotate
)

func (h HandleKind) String() string {
	if h == HandleRotate {
		return "rotate"
	}
	return "translate"
}

// Space selects whether handles follow the target's orientation.
type Space int

const (
	SpaceGlobal Space = iota
	SpaceLocal
)

func (s Space) String() string {
	if s == SpaceLocal {
		return "local"
	}
	return "global"
}

func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "global", "world":
		return SpaceGlobal, nil
	case "local":
		return SpaceLocal, nil
	}
	return SpaceGlobal, fmt.Errorf("unknown transform space %q", s)
}

// Pivot selects where the gizmo sits and what rotations turn about.
type Pivot int

const (
	PivotPoint Pivot = iota
	PivotCenter
)

func (p Pivot) String() string {
	if p == PivotCenter {
		return "center"
	}
	return "pivot"
}

func ParsePivot(s string) (Pivot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pivot":
		return PivotPoint, nil
	case "center", "centre":
		return PivotCenter, nil
	}
	return PivotPoint, fmt.Errorf("unknown pivot %q", s)
}

// AxisInfo holds the handle directions and the world-space end of each axis.
type AxisInfo struct {
	XDirection mgl32.Vec3
	YDirection mgl32.Vec3
	ZDirection mgl32.Vec3

	XAxisEnd mgl32.Vec3
	YAxisEnd mgl32.Vec3
	ZAxisEnd mgl32.Vec3
}

func (ai *AxisInfo) set(target *core.Transform, pivot mgl32.Vec3, size float32, space Space) {
	if space == SpaceLocal {
		ai.XDirection = target.Right()
		ai.YDirection = target.Up()
		ai.ZDirection = target.Forward()
	} else {
		ai.XDirection = mgl32.Vec3{1, 0, 0}
		ai.YDirection = mgl32.Vec3{0, 1, 0}
		ai.ZDirection = mgl32.Vec3{0, 0, 1}
	}
	ai.XAxisEnd = pivot.Add(ai.XDirection.Mul(size))
	ai.YAxisEnd = pivot.Add(ai.YDirection.Mul(size))
	ai.ZAxisEnd = pivot.Add(ai.ZDirection.Mul(size))
}

func (ai *AxisInfo) Direction(a Axis) mgl32.Vec3 {
	switch a {
	case AxisX:
		return ai.XDirection
	case AxisY:
		return ai.YDirection
	case AxisZ:
		return ai.ZDirection
	}
	return mgl32.Vec3{}
}

func (ai *AxisInfo) End(a Axis) mgl32.Vec3 {
	switch a {
	case AxisX:
		return ai.XAxisEnd
	case AxisY:
		return ai.YAxisEnd
	case AxisZ:
		return ai.ZAxisEnd
	}
	return mgl32.Vec3{}
}

// others returns the two directions orthogonal to a.
func (ai *AxisInfo) others(a Axis) (mgl32.Vec3, mgl32.Vec3) {
	switch a {
	case AxisX:
		return ai.YDirection, ai.ZDirection
	case AxisY:
		return ai.XDirection, ai.ZDirection
	default:
		return ai.XDirection, ai.YDirection
	}
}

// AxisVectors is per-axis vertex soup for one kind of handle.
type AxisVectors struct {
	X, Y, Z, All []mgl32.Vec3
}

func (v *AxisVectors) clear() {
	v.X = v.X[:0]
	v.Y = v.Y[:0]
	v.Z = v.Z[:0]
	v.All = v.All[:0]
}

func (v *AxisVectors) buffer(a Axis) *[]mgl32.Vec3 {
	switch a {
	case AxisX:
		return &v.X
	case AxisY:
		return &v.Y
	case AxisZ:
		return &v.Z
	default:
		return &v.All
	}
}

var linearAxes = [3]Axis{AxisX, AxisY, AxisZ}
