package gizmo

import (
	"github.com/gekko3d/rtgizmo/rt/draw"
)

func (c *Controller) colorFor(a Axis, base draw.Color) draw.Color {
	if c.axis != a {
		return base
	}
	if c.phase == PhaseDragging {
		return c.cfg.Colors.Selected
	}
	return c.cfg.Colors.Hover
}

// Draw submits the gizmo for this frame. Later calls draw over earlier ones.
func (c *Controller) Draw(r draw.Renderer) {
	if c.target == nil || c.camera == nil || r == nil {
		return
	}

	xColor := c.colorFor(AxisX, c.cfg.Colors.X)
	yColor := c.colorFor(AxisY, c.cfg.Colors.Y)
	zColor := c.colorFor(AxisZ, c.cfg.Colors.Z)
	allColor := c.colorFor(AxisAny, c.cfg.Colors.All)

	r.DrawQuads(c.handleLines.Z, zColor)
	r.DrawQuads(c.handleLines.X, xColor)
	r.DrawQuads(c.handleLines.Y, yColor)

	r.DrawTriangles(c.handleTriangles.X, xColor)
	r.DrawTriangles(c.handleTriangles.Y, yColor)
	r.DrawTriangles(c.handleTriangles.Z, zColor)

	rings := &c.circleLines
	if s := c.session; s != nil && s.handle == HandleRotate && c.cfg.Space == SpaceGlobal {
		rings = &c.dragCircleLines
	}
	r.DrawQuads(rings.All, allColor)
	r.DrawQuads(rings.X, xColor)
	r.DrawQuads(rings.Y, yColor)
	r.DrawQuads(rings.Z, zColor)
}
