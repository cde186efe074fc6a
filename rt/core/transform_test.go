package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTransformRotate(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{3, 0, 0}

	tr.Rotate(mgl32.Vec3{0, 0, 1}, 90)

	assert.Equal(t, mgl32.Vec3{3, 0, 0}, tr.Position, "in-place rotation keeps position")
	assert.InDelta(t, 0, tr.Right().Sub(mgl32.Vec3{0, 1, 0}).Len(), 1e-5)
}

func TestTransformRotateAround(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{2, 0, 0}

	tr.RotateAround(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, 90)

	assert.InDelta(t, 0, tr.Position.Sub(mgl32.Vec3{1, 1, 0}).Len(), 1e-5)
	assert.InDelta(t, 0, tr.Right().Sub(mgl32.Vec3{0, 1, 0}).Len(), 1e-5)

	// Zero axis is ignored.
	before := tr.Pose()
	tr.RotateAround(mgl32.Vec3{}, mgl32.Vec3{}, 45)
	assert.Equal(t, before, tr.Pose())
}

func TestTransformCenter(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 1, 1}
	assert.Equal(t, tr.Position, tr.Center(), "no bounds falls back to position")

	tr.BoundsMin = mgl32.Vec3{0, 0, 0}
	tr.BoundsMax = mgl32.Vec3{2, 4, 2}
	tr.Scale = mgl32.Vec3{2, 2, 2}
	assert.InDelta(t, 0, tr.Center().Sub(mgl32.Vec3{3, 5, 3}).Len(), 1e-5)

	corners := tr.Corners()
	assert.InDelta(t, 0, corners[0].Sub(mgl32.Vec3{1, 1, 1}).Len(), 1e-5)
	assert.InDelta(t, 0, corners[7].Sub(mgl32.Vec3{5, 9, 5}).Len(), 1e-5)
}

func TestPoseRoundTrip(t *testing.T) {
	tr := NewTransform()
	start := tr.Pose()

	tr.Translate(mgl32.Vec3{1, 2, 3})
	tr.Rotate(mgl32.Vec3{0, 1, 0}, 33)
	assert.NotEqual(t, start, tr.Pose())

	tr.SetPose(start)
	assert.Equal(t, start, tr.Pose())
}
