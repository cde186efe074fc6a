package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rtgizmo/rt/core"
)

// square is four corners around a centre, in winding order.
type square [4]mgl32.Vec3

func baseSquare(center, dir1, dir2 mgl32.Vec3, size float32) square {
	up := dir1.Mul(size).Add(dir2.Mul(size))
	down := dir1.Mul(size).Sub(dir2.Mul(size))
	return square{
		center.Add(down), // bottom left
		center.Add(up),   // top left
		center.Sub(down), // top right
		center.Sub(up),   // bottom right
	}
}

// appendBox appends a square tube from start to end as quads: both end caps
// followed by the four sides.
func appendBox(buf []mgl32.Vec3, start, end, dir1, dir2 mgl32.Vec3, width float32) []mgl32.Vec3 {
	a := baseSquare(start, dir1, dir2, width)
	b := baseSquare(end, dir1, dir2, width)

	buf = append(buf, a[0], a[1], a[2], a[3])
	buf = append(buf, b[0], b[1], b[2], b[3])
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		buf = append(buf, a[i], b[i], b[j], a[j])
	}
	return buf
}

// appendCone appends a square-based pyramid at axisEnd pointing along dir.
func appendCone(buf []mgl32.Vec3, axisEnd, dir, dir1, dir2 mgl32.Vec3, size float32) []mgl32.Vec3 {
	tip := axisEnd.Add(dir.Mul(size * 2))
	base := baseSquare(axisEnd, dir1, dir2, size/2)

	buf = append(buf, base[0], base[1], base[2])
	buf = append(buf, base[0], base[2], base[3])
	for i := 0; i < 4; i++ {
		buf = append(buf, base[i], base[(i+1)%4], tip)
	}
	return buf
}

// appendCircle appends a ring of quads around origin, perpendicular to axis.
// With a cull plane, segments whose start lies behind it are skipped.
func appendCircle(buf []mgl32.Vec3, origin, axis mgl32.Vec3, radius, width float32, detail int, cull *core.Plane) []mgl32.Vec3 {
	n := core.NormalizeOrZero(axis)
	if n.Len() == 0 || detail < 3 {
		return buf
	}
	forward := core.Perpendicular(n).Mul(radius)
	right := core.NormalizeOrZero(n.Cross(forward)).Mul(radius)

	at := func(i int) mgl32.Vec3 {
		angle := 2 * math.Pi * float64(i) / float64(detail)
		return origin.
			Add(right.Mul(float32(math.Cos(angle)))).
			Add(forward.Mul(float32(math.Sin(angle))))
	}

	last := at(0)
	for i := 1; i <= detail; i++ {
		next := at(i)
		if cull == nil || cull.Side(last) {
			mid := last.Add(next).Mul(0.5)
			radial := core.NormalizeOrZero(mid.Sub(origin))
			buf = appendBox(buf, last, next, radial, n, width)
		}
		last = next
	}
	return buf
}

// rebuildHandles regenerates every cached handle mesh from the current pivot,
// axis directions and camera distance.
func (c *Controller) rebuildHandles() {
	dm := c.DistanceMultiplier()
	c.axisInfo.set(c.target, c.pivot, c.cfg.HandleLength*dm, c.cfg.Space)

	c.handleLines.clear()
	c.handleTriangles.clear()
	lineWidth := c.cfg.HandleWidth * dm
	coneSize := c.cfg.TriangleSize * dm
	for i, a := range linearAxes {
		if !c.cfg.Layout.Translate[i] {
			continue
		}
		dir := c.axisInfo.Direction(a)
		end := c.axisInfo.End(a)
		o1, o2 := c.axisInfo.others(a)

		length := c.pivot.Sub(end).Len()
		if !core.IsInDirection(end.Sub(c.pivot), dir) {
			length = -length
		}
		lines := c.handleLines.buffer(a)
		*lines = appendBox(*lines, c.pivot, c.pivot.Add(dir.Mul(length)), o1, o2, lineWidth)

		tris := c.handleTriangles.buffer(a)
		*tris = appendCone(*tris, end, dir, o1, o2, coneSize)
	}

	c.setCircles(&c.axisInfo, &c.circleLines)

	if s := c.session; s != nil && s.handle == HandleRotate && c.cfg.Space == SpaceGlobal {
		var turned AxisInfo
		turned.XDirection = s.totalRotation.Rotate(mgl32.Vec3{1, 0, 0})
		turned.YDirection = s.totalRotation.Rotate(mgl32.Vec3{0, 1, 0})
		turned.ZDirection = s.totalRotation.Rotate(mgl32.Vec3{0, 0, 1})
		c.setCircles(&turned, &c.dragCircleLines)
	}
}

func (c *Controller) setCircles(info *AxisInfo, out *AxisVectors) {
	out.clear()

	dm := c.DistanceMultiplier()
	radius := c.cfg.CircleRadius * dm
	width := c.cfg.HandleWidth * dm
	toCamera := core.NormalizeOrZero(c.camera.Position.Sub(c.pivot))
	cull := core.NewPlane(toCamera, c.pivot)

	for i, a := range linearAxes {
		if !c.cfg.Layout.Rotate[i] {
			continue
		}
		buf := out.buffer(a)
		*buf = appendCircle(*buf, c.pivot, info.Direction(a), radius, width, c.cfg.CircleDetail, &cull)
	}
	if c.cfg.Layout.FreeRotate {
		out.All = appendCircle(out.All, c.pivot, toCamera.Mul(-1), radius, width, c.cfg.CircleDetail, nil)
	}
}
