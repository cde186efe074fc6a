package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/rtgizmo/rt/draw"
)

func TestDrawOrderAndColors(t *testing.T) {
	c, _, _ := newTestController(t, DefaultConfig())
	cfg := c.Config()

	list := draw.NewList()
	c.Draw(list)

	// Y shaft, Y cone, free ring, X ring. The Z ring lies edge-on to the
	// camera and is culled entirely.
	require.Len(t, list.Batches, 4)
	assert.Equal(t, draw.Quads, list.Batches[0].Primitive)
	assert.Equal(t, cfg.Colors.Y, list.Batches[0].Color)
	assert.Equal(t, draw.Triangles, list.Batches[1].Primitive)
	assert.Equal(t, cfg.Colors.Y, list.Batches[1].Color)
	assert.Equal(t, cfg.Colors.All, list.Batches[2].Color)
	assert.Equal(t, cfg.Colors.X, list.Batches[3].Color)
}

func TestDrawHoverAndSelected(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())
	cfg := c.Config()

	c.Tick(dt, pointerAt(t, cam, mgl32.Vec3{0, 1.2, 0}))
	list := draw.NewList()
	c.Draw(list)
	assert.Equal(t, cfg.Colors.Hover, list.Batches[0].Color)
	assert.Equal(t, cfg.Colors.Hover, list.Batches[1].Color)
	assert.Equal(t, cfg.Colors.X, list.Batches[3].Color)

	press(t, c, cam, mgl32.Vec3{0, 1.2, 0})
	list.Reset()
	c.Draw(list)
	assert.Equal(t, cfg.Colors.Selected, list.Batches[0].Color)
	assert.Equal(t, cfg.Colors.Selected, list.Batches[1].Color)
}

func TestDrawWithoutTarget(t *testing.T) {
	c, _, _ := newTestController(t, DefaultConfig())
	c.ClearTarget()

	list := draw.NewList()
	c.Draw(list)
	assert.Empty(t, list.Batches)
}

func TestRingCulledByCamera(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())
	toCamera := cam.Position.Sub(c.PivotPoint()).Normalize()

	require.NotEmpty(t, c.circleLines.X)
	// Only the camera-facing half of each box tube is kept; every ring
	// segment starts on the near side of the pivot.
	for i := 0; i < len(c.circleLines.X); i += 24 {
		start := c.circleLines.X[i]
		assert.GreaterOrEqual(t, start.Sub(c.PivotPoint()).Dot(toCamera), float32(-0.05))
	}
	assert.Less(t, len(c.circleLines.X), len(c.circleLines.All))
}

func TestDragRingsFollowRotationInGlobalSpace(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())

	press(t, c, cam, mgl32.Vec3{0, -1.7677670, 1.7677670})
	start := c.session.prevPoint
	move(t, c, cam, start.Add(mgl32.Vec3{0, -0.5, 0}), false)

	require.NotEmpty(t, c.dragCircleLines.Z)
	assert.NotEqual(t, c.circleLines.Z, c.dragCircleLines.Z)

	list := draw.NewList()
	c.Draw(list)
	var zRing bool
	for _, b := range list.Batches {
		if b.Color == c.Config().Colors.Z {
			zRing = true
		}
	}
	assert.True(t, zRing, "turned Z ring is drawn during the drag")
}
