package gizmo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/rtgizmo/rt/core"
	"github.com/gekko3d/rtgizmo/rt/undo"
)

// newTestController puts an 800x600 perspective camera at (0,0,10) looking
// down -Z at a target on the origin, so the distance multiplier is 10.
func newTestController(t *testing.T, cfg Config) (*Controller, *core.Transform, *core.Camera) {
	t.Helper()
	cam := core.NewCamera(800, 600)
	target := core.NewTransform()
	c := NewController(cfg, cam, undo.NewStack(cfg.MaxUndoStored), nil)
	c.SetTarget(target)
	require.InDelta(t, 10, c.DistanceMultiplier(), 1e-5)
	return c, target, cam
}

func pointerAt(t *testing.T, cam *core.Camera, world mgl32.Vec3) FrameInput {
	t.Helper()
	x, y, ok := cam.WorldToScreen(world)
	require.True(t, ok)
	return FrameInput{PointerX: x, PointerY: y}
}

func TestNearestAxis(t *testing.T) {
	inf := float32(math.MaxFloat32)
	cases := []struct {
		name      string
		distances [4]float32
		threshold float32
		want      Axis
	}{
		{"smallest wins", [4]float32{0.2, 0.1, 0.3, inf}, 0.5, AxisY},
		{"smallest wins over earlier axis", [4]float32{0.4, 0.3, 0.05, 0.2}, 0.5, AxisZ},
		{"all tied picks X", [4]float32{0.1, 0.1, 0.1, 0.1}, 0.5, AxisX},
		{"Y and Z tied picks Y", [4]float32{0.6, 0.2, 0.2, inf}, 0.5, AxisY},
		{"threshold is inclusive", [4]float32{inf, 0.5, inf, inf}, 0.5, AxisY},
		{"everything too far", [4]float32{0.6, 0.7, 0.8, 0.9}, 0.5, AxisNone},
		{"free ring", [4]float32{inf, inf, inf, 0.1}, 0.5, AxisAny},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nearestAxis(tc.distances, tc.threshold))
		})
	}
}

func TestHoverTranslationShaft(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())

	c.Tick(0.016, pointerAt(t, cam, mgl32.Vec3{0, 1.2, 0}))

	assert.Equal(t, AxisY, c.Axis())
	assert.Equal(t, HandleTranslate, c.Handle())
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestShaftBeatsRing(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())
	in := pointerAt(t, cam, mgl32.Vec3{0, 1.2, 0})
	ray := cam.ScreenPointToRay(in.PointerX, in.PointerY)

	// The X ring passes right under this pointer too.
	cfg := c.Config()
	lineThreshold := (cfg.MinSelectedDistanceCheck + cfg.HandleWidth) * c.DistanceMultiplier()
	require.LessOrEqual(t, closestDistance(c.circleLines.X, 4, ray), lineThreshold)

	c.Tick(0.016, in)
	assert.Equal(t, AxisY, c.Axis())
	assert.Equal(t, HandleTranslate, c.Handle())
}

func TestHoverRotationRing(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())

	// A vertex on the camera-facing half of the X ring (radius 2.5 in YZ).
	c.Tick(0.016, pointerAt(t, cam, mgl32.Vec3{0, -1.7677670, 1.7677670}))

	assert.Equal(t, AxisX, c.Axis())
	assert.Equal(t, HandleRotate, c.Handle())
}

func TestHoverNothing(t *testing.T) {
	c, _, _ := newTestController(t, DefaultConfig())

	c.Tick(0.016, FrameInput{PointerX: 5, PointerY: 5})
	assert.Equal(t, AxisNone, c.Axis())
}

func TestFarPointerNeverHits(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())
	cfg := c.Config()
	dm := c.DistanceMultiplier()
	farthest := (cfg.MinSelectedDistanceCheck + cfg.TriangleSize) * dm

	checked := 0
	for x := 0.0; x <= 800; x += 40 {
		for y := 0.0; y <= 600; y += 40 {
			ray := cam.ScreenPointToRay(x, y)
			nearest := float32(math.MaxFloat32)
			for _, set := range []struct {
				v   *AxisVectors
				per int
			}{{&c.handleTriangles, 3}, {&c.handleLines, 4}, {&c.circleLines, 4}} {
				for _, verts := range [][]mgl32.Vec3{set.v.X, set.v.Y, set.v.Z, set.v.All} {
					if d := closestDistance(verts, set.per, ray); d < nearest {
						nearest = d
					}
				}
			}
			if nearest <= farthest {
				continue
			}
			checked++
			c.Tick(0.016, FrameInput{PointerX: x, PointerY: y})
			assert.Equal(t, AxisNone, c.Axis(), "pointer %v,%v", x, y)
		}
	}
	assert.Greater(t, checked, 100)
}

func TestNoTargetIsInert(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())
	in := pointerAt(t, cam, mgl32.Vec3{0, 1.2, 0})
	c.Tick(0.016, in)
	require.Equal(t, AxisY, c.Axis())

	c.ClearTarget()
	in.PointerPressed = true
	c.Tick(0.016, in)

	assert.Equal(t, AxisNone, c.Axis())
	assert.False(t, c.Dragging())
	assert.Zero(t, c.DistanceMultiplier())
}

func TestNoCameraIsInert(t *testing.T) {
	c := NewController(DefaultConfig(), nil, nil, nil)
	c.SetTarget(core.NewTransform())

	c.Tick(0.016, FrameInput{PointerX: 400, PointerY: 300, PointerPressed: true})

	assert.Equal(t, AxisNone, c.Axis())
	assert.False(t, c.Dragging())
}

func TestDistanceMultiplierOrthographic(t *testing.T) {
	c, _, cam := newTestController(t, DefaultConfig())
	cam.Projection = core.Orthographic
	cam.OrthoSize = 3
	assert.InDelta(t, 6, c.DistanceMultiplier(), 1e-6)

	cam.OrthoSize = 0
	assert.InDelta(t, 0.01, c.DistanceMultiplier(), 1e-6)
}
