package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// Camera looks down its local -Z with +Y up. Screen coordinates are in pixels
// with the origin at the top-left corner of the viewport.
type Camera struct {
	Position   mgl32.Vec3
	Rotation   mgl32.Quat
	Projection Projection
	FovY       float32 // degrees
	OrthoSize  float32 // half of the vertical view extent
	Near       float32
	Far        float32
	Width      int
	Height     int
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:  mgl32.Vec3{0, 0, 10},
		Rotation:  mgl32.QuatIdent(),
		FovY:      60,
		OrthoSize: 5,
		Near:      0.1,
		Far:       1000,
		Width:     width,
		Height:    height,
	}
}

func (c *Camera) Forward() mgl32.Vec3 { return c.Rotation.Rotate(mgl32.Vec3{0, 0, -1}) }
func (c *Camera) Right() mgl32.Vec3   { return c.Rotation.Rotate(mgl32.Vec3{1, 0, 0}) }
func (c *Camera) Up() mgl32.Vec3      { return c.Rotation.Rotate(mgl32.Vec3{0, 1, 0}) }

func (c *Camera) Aspect() float32 {
	if c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

func (c *Camera) tanHalfFov() float32 {
	return float32(math.Tan(float64(mgl32.DegToRad(c.FovY) / 2)))
}

// Orbit places the camera distance units from target, turned by yaw about +Y
// and pitch about the camera's right axis, looking at target.
func (c *Camera) Orbit(target mgl32.Vec3, yaw, pitch, distance float32) {
	yawQ := mgl32.QuatRotate(mgl32.DegToRad(yaw), mgl32.Vec3{0, 1, 0})
	pitchQ := mgl32.QuatRotate(mgl32.DegToRad(pitch), mgl32.Vec3{1, 0, 0})
	c.Rotation = yawQ.Mul(pitchQ).Normalize()
	c.Position = target.Sub(c.Forward().Mul(distance))
}

// ScreenPointToRay builds a world-space ray through a pixel.
func (c *Camera) ScreenPointToRay(x, y float64) Ray {
	w, h := float64(c.Width), float64(c.Height)
	if w <= 0 || h <= 0 {
		return Ray{Origin: c.Position, Direction: c.Forward()}
	}
	nx := float32(2*x/w - 1)
	ny := float32(1 - 2*y/h)

	if c.Projection == Orthographic {
		origin := c.Position.
			Add(c.Right().Mul(nx * c.OrthoSize * c.Aspect())).
			Add(c.Up().Mul(ny * c.OrthoSize))
		return Ray{Origin: origin, Direction: c.Forward()}
	}

	tanHalf := c.tanHalfFov()
	local := mgl32.Vec3{nx * c.Aspect() * tanHalf, ny * tanHalf, -1}
	return Ray{Origin: c.Position, Direction: c.Rotation.Rotate(local).Normalize()}
}

// WorldToScreen projects a world point to pixel coordinates. ok is false for
// points behind a perspective camera.
func (c *Camera) WorldToScreen(p mgl32.Vec3) (x, y float64, ok bool) {
	local := c.Rotation.Conjugate().Rotate(p.Sub(c.Position))

	var nx, ny float32
	if c.Projection == Orthographic {
		nx = local.X() / (c.OrthoSize * c.Aspect())
		ny = local.Y() / c.OrthoSize
	} else {
		if local.Z() >= 0 {
			return 0, 0, false
		}
		tanHalf := c.tanHalfFov()
		nx = (local.X() / -local.Z()) / (c.Aspect() * tanHalf)
		ny = (local.Y() / -local.Z()) / tanHalf
	}

	x = (float64(nx) + 1) / 2 * float64(c.Width)
	y = (1 - float64(ny)) / 2 * float64(c.Height)
	return x, y, true
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	invRotate := c.Rotation.Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
	return invRotate.Mul4(invTranslate)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.Projection == Orthographic {
		hw := c.OrthoSize * c.Aspect()
		return mgl32.Ortho(-hw, hw, -c.OrthoSize, c.OrthoSize, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}
