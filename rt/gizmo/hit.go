package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rtgizmo/rt/core"
)

// candidateOrder doubles as the tie-break precedence.
var candidateOrder = [4]Axis{AxisX, AxisY, AxisZ, AxisAny}

// closestDistance is the smallest distance from the ray's line to any edge of
// the primitives in verts. Empty geometry is infinitely far away.
func closestDistance(verts []mgl32.Vec3, vertsPer int, ray core.Ray) float32 {
	best := float32(math.MaxFloat32)
	for i := 0; i+vertsPer <= len(verts); i += vertsPer {
		prim := verts[i : i+vertsPer]
		for k := 0; k < vertsPer; k++ {
			d := core.SegmentLineDistance(prim[k], prim[(k+1)%vertsPer], ray)
			if d < best {
				best = d
			}
		}
	}
	return best
}

// nearestAxis picks the candidate with the smallest distance not above
// threshold. Distances are indexed X, Y, Z, Any; on exact ties the earlier
// axis wins.
func nearestAxis(distances [4]float32, threshold float32) Axis {
	best := AxisNone
	bestDistance := threshold
	for i, a := range candidateOrder {
		d := distances[i]
		if d > threshold {
			continue
		}
		if best == AxisNone || d < bestDistance {
			best = a
			bestDistance = d
		}
	}
	return best
}

func handleNearest(v *AxisVectors, vertsPer int, ray core.Ray, threshold float32) Axis {
	distances := [4]float32{
		closestDistance(v.X, vertsPer, ray),
		closestDistance(v.Y, vertsPer, ray),
		closestDistance(v.Z, vertsPer, ray),
		closestDistance(v.All, vertsPer, ray),
	}
	return nearestAxis(distances, threshold)
}

// updateNearAxis hit-tests the cached handle geometry: cones first, then
// shafts, then rings, so a ring never steals a hit from a translation handle.
func (c *Controller) updateNearAxis(in FrameInput) {
	c.axis = AxisNone
	if c.target == nil || c.camera == nil {
		return
	}

	ray := c.camera.ScreenPointToRay(in.PointerX, in.PointerY)
	dm := c.DistanceMultiplier()
	tipThreshold := (c.cfg.MinSelectedDistanceCheck + c.cfg.TriangleSize) * dm
	lineThreshold := (c.cfg.MinSelectedDistanceCheck + c.cfg.HandleWidth) * dm

	if a := handleNearest(&c.handleTriangles, 3, ray, tipThreshold); a != AxisNone {
		c.axis, c.handle = a, HandleTranslate
		return
	}
	if a := handleNearest(&c.handleLines, 4, ray, lineThreshold); a != AxisNone {
		c.axis, c.handle = a, HandleTranslate
		return
	}
	if a := handleNearest(&c.circleLines, 4, ray, lineThreshold); a != AxisNone {
		c.axis, c.handle = a, HandleRotate
	}
}
