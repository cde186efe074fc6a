package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is the set of points p with Normal·p + Distance = 0.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

func NewPlane(normal, point mgl32.Vec3) Plane {
	n := NormalizeOrZero(normal)
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// Side reports whether p lies strictly on the side the normal points to.
func (p Plane) Side(point mgl32.Vec3) bool {
	return p.Normal.Dot(point)+p.Distance > 0
}

// LinePlaneIntersect intersects the infinite line through linePoint with the
// plane through planePoint. ok is false when the line runs parallel to the plane.
func LinePlaneIntersect(linePoint, lineDir, planePoint, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	dir := NormalizeOrZero(lineDir)
	denom := dir.Dot(planeNormal)
	if math.Abs(float64(denom)) < epsilon {
		return mgl32.Vec3{}, false
	}
	length := planePoint.Sub(linePoint).Dot(planeNormal) / denom
	return linePoint.Add(dir.Mul(length)), true
}

// ClosestPointsOnSegmentToLine returns the point on segment [a, b] closest to
// the infinite line through lineOrigin along lineDir, and the matching point on
// that line.
func ClosestPointsOnSegmentToLine(a, b, lineOrigin, lineDir mgl32.Vec3) (onSegment, onLine mgl32.Vec3) {
	d1 := b.Sub(a)
	d2 := lineDir
	r := a.Sub(lineOrigin)

	aa := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	if e < epsilon {
		// No usable line; treat it as the point lineOrigin.
		s := clamp01(-d1.Dot(r) / maxf(aa, epsilon))
		return a.Add(d1.Mul(s)), lineOrigin
	}
	if aa < epsilon {
		return a, lineOrigin.Add(d2.Mul(f / e))
	}

	c := d1.Dot(r)
	bb := d1.Dot(d2)
	denom := aa*e - bb*bb

	var s float32
	if denom > epsilon {
		s = clamp01((bb*f - c*e) / denom)
	}
	t := (bb*s + f) / e

	return a.Add(d1.Mul(s)), lineOrigin.Add(d2.Mul(t))
}

// SegmentLineDistance is the shortest distance between segment [a, b] and a ray's line.
func SegmentLineDistance(a, b mgl32.Vec3, ray Ray) float32 {
	p, q := ClosestPointsOnSegmentToLine(a, b, ray.Origin, ray.Direction)
	return p.Sub(q).Len()
}

// ProjectOnPlane removes the component of v along planeNormal.
func ProjectOnPlane(v, planeNormal mgl32.Vec3) mgl32.Vec3 {
	n := NormalizeOrZero(planeNormal)
	return v.Sub(n.Mul(v.Dot(n)))
}

// MagnitudeInDirection is the signed length of v along direction.
func MagnitudeInDirection(v, direction mgl32.Vec3) float32 {
	return v.Dot(NormalizeOrZero(direction))
}

func IsParallel(a, b mgl32.Vec3) bool {
	d := NormalizeOrZero(a).Dot(NormalizeOrZero(b))
	return math.Abs(float64(d)) > 1-1e-4
}

func IsInDirection(v, direction mgl32.Vec3) bool {
	return v.Dot(direction) > 0
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Perpendicular returns some unit vector orthogonal to v.
func Perpendicular(v mgl32.Vec3) mgl32.Vec3 {
	n := NormalizeOrZero(v)
	if math.Abs(float64(n.X())) < 0.9 {
		return NormalizeOrZero(n.Cross(mgl32.Vec3{1, 0, 0}))
	}
	return NormalizeOrZero(n.Cross(mgl32.Vec3{0, 1, 0}))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
