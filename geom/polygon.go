package geom

import "math"

// Polygon is an ordered list of vertices. Collision routines assume it is
// convex; winding may be either direction.
type Polygon []Vec2

// Rect builds an axis-aligned rectangle polygon with its top-left corner at
// (x, y).
func Rect(x, y, w, h float64) Polygon {
	return Polygon{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// Centroid returns the vertex average. An empty polygon has a zero centroid.
func (p Polygon) Centroid() Vec2 {
	if len(p) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, v := range p {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(p))
	return Vec2{X: c.X / n, Y: c.Y / n}
}

// Project returns the interval covered by p on axis.
func (p Polygon) Project(axis Vec2) (min, max float64) {
	if len(p) == 0 {
		return 0, 0
	}
	min = Dot(p[0], axis)
	max = min
	for _, v := range p[1:] {
		d := Dot(v, axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// Bounds returns the axis-aligned bounding box of p.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range p {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// Translate returns a copy of p moved by d.
func (p Polygon) Translate(d Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Add(v, d)
	}
	return out
}

// Edge returns the i-th edge, wrapping around to the first vertex.
func (p Polygon) Edge(i int) Segment {
	return Segment{A: p[i], B: p[(i+1)%len(p)]}
}

// Segment is a directed line segment.
type Segment struct {
	A, B Vec2
}

// Dir returns B-A.
func (s Segment) Dir() Vec2 { return Sub(s.B, s.A) }

// Normal returns the unit right-hand normal of the segment, or zero for a
// degenerate segment.
func (s Segment) Normal() Vec2 {
	d := s.Dir()
	return Normalize(Vec2{X: d.Y, Y: -d.X})
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Vec2 {
	return Vec2{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// SegmentIntersect returns the intersection point of segments p1p2 and
// q1q2. Parallel, collinear and zero-length segments report no intersection.
func SegmentIntersect(p1, p2, q1, q2 Vec2) (Vec2, bool) {
	r := Sub(p2, p1)
	s := Sub(q2, q1)
	denom := Cross(r, s)
	if math.Abs(denom) < Epsilon {
		return Vec2{}, false
	}
	qp := Sub(q1, p1)
	t := Cross(qp, s) / denom
	u := Cross(qp, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return Add(p1, Scale(r, t)), true
}
