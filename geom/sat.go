package geom

import "math"

// CollisionResult is the outcome of a SAT test. Results rented from a pool
// are only valid until that pool is reset.
type CollisionResult struct {
	Collided bool
	Normal   Vec2    // unit vector pointing from body A toward body B
	Depth    float64 // overlap along Normal
}

// Intersect runs the separating axis test between convex polygons a and b
// and writes the minimum translation into out. It returns out.Collided.
//
// Every edge of a, then every edge of b, contributes a candidate axis.
// Zero-length edges contribute nothing, and a polygon with fewer than three
// vertices never collides. Touching intervals count as separated.
func Intersect(a, b Polygon, out *CollisionResult) bool {
	*out = CollisionResult{}
	if len(a) < 3 || len(b) < 3 {
		return false
	}

	depth := math.Inf(1)
	var normal Vec2
	for _, poly := range [2]Polygon{a, b} {
		for i := range poly {
			edge := Sub(poly[(i+1)%len(poly)], poly[i])
			axis := Normalize(Perp(edge))
			if axis.X == 0 && axis.Y == 0 {
				continue
			}
			minA, maxA := a.Project(axis)
			minB, maxB := b.Project(axis)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap <= 0 {
				return false
			}
			if overlap < depth {
				depth = overlap
				normal = axis
			}
		}
	}

	if math.IsInf(depth, 1) {
		// Every edge was degenerate.
		return false
	}

	if Dot(Sub(b.Centroid(), a.Centroid()), normal) < 0 {
		normal = Vec2{X: -normal.X, Y: -normal.Y}
	}

	out.Collided = true
	out.Normal = normal
	out.Depth = depth
	return true
}
