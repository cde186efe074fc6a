package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the part of a Transform that edits change and undo restores.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	// Local-space bounding box, used for the Center pivot.
	BoundsMin mgl32.Vec3
	BoundsMax mgl32.Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) Pose() Pose {
	return Pose{Position: t.Position, Rotation: t.Rotation, Scale: t.Scale}
}

func (t *Transform) SetPose(p Pose) {
	t.Position = p.Position
	t.Rotation = p.Rotation
	t.Scale = p.Scale
}

func (t *Transform) Right() mgl32.Vec3   { return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0}) }
func (t *Transform) Up() mgl32.Vec3      { return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0}) }
func (t *Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1}) }

// Translate moves the transform by a world-space offset.
func (t *Transform) Translate(offset mgl32.Vec3) {
	t.Position = t.Position.Add(offset)
}

// Rotate turns the transform in place about a world-space axis.
func (t *Transform) Rotate(axis mgl32.Vec3, degrees float32) {
	n := NormalizeOrZero(axis)
	if n.Len() == 0 {
		return
	}
	q := mgl32.QuatRotate(mgl32.DegToRad(degrees), n)
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// RotateAround orbits the transform about a world-space point and axis, turning
// its orientation by the same amount.
func (t *Transform) RotateAround(point, axis mgl32.Vec3, degrees float32) {
	n := NormalizeOrZero(axis)
	if n.Len() == 0 {
		return
	}
	q := mgl32.QuatRotate(mgl32.DegToRad(degrees), n)
	t.Position = point.Add(q.Rotate(t.Position.Sub(point)))
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// Center returns the world-space centre of the local bounds, or the position
// when no bounds are set.
func (t *Transform) Center() mgl32.Vec3 {
	if t.BoundsMin == t.BoundsMax {
		return t.Position
	}
	local := t.BoundsMin.Add(t.BoundsMax).Mul(0.5)
	return t.ObjectToWorld().Mul4x1(local.Vec4(1)).Vec3()
}

func (t *Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// Corners returns the eight world-space corners of the local bounds.
func (t *Transform) Corners() [8]mgl32.Vec3 {
	m := t.ObjectToWorld()
	lo, hi := t.BoundsMin, t.BoundsMax
	var out [8]mgl32.Vec3
	for i := 0; i < 8; i++ {
		p := lo
		if i&1 != 0 {
			p[0] = hi[0]
		}
		if i&2 != 0 {
			p[1] = hi[1]
		}
		if i&4 != 0 {
			p[2] = hi[2]
		}
		out[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	return out
}
