package geom

import (
	"cmp"
	"slices"
)

// ConvexHull returns the convex hull of points using the monotone chain
// algorithm. Duplicate and collinear points are dropped. With fewer than
// three distinct points the distinct points are returned as-is, sorted; such
// a polygon never collides.
func ConvexHull(points []Vec2) Polygon {
	pts := make([]Vec2, len(points))
	copy(pts, points)
	out := make([]Vec2, 2*len(points)+1)
	n := hullInto(out, pts)
	return Polygon(out[:n:n])
}

// SweptHull is a fixed-size buffer for the hull of an ECB's previous and
// current quads. It holds no heap references, so it can live in a pool.
type SweptHull struct {
	pts [8]Vec2
	out [17]Vec2
	n   int
}

// Build computes the hull of prev and cur and returns it. The returned
// polygon aliases h and is overwritten by the next Build.
func (h *SweptHull) Build(prev, cur [4]Vec2) Polygon {
	copy(h.pts[:4], prev[:])
	copy(h.pts[4:], cur[:])
	h.n = hullInto(h.out[:], h.pts[:])
	return h.Polygon()
}

// Polygon returns the last built hull.
func (h *SweptHull) Polygon() Polygon {
	return Polygon(h.out[:h.n:h.n])
}

// hullInto sorts pts in place and writes the hull into out, which must hold
// at least 2*len(pts)+1 points. It returns the hull length.
func hullInto(out, pts []Vec2) int {
	slices.SortFunc(pts, func(a, b Vec2) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})

	// Drop duplicates.
	n := 0
	for i := range pts {
		if n > 0 && Nearly(pts[i], pts[n-1], Epsilon) {
			continue
		}
		pts[n] = pts[i]
		n++
	}
	pts = pts[:n]

	if n < 3 {
		return copy(out, pts)
	}

	k := 0
	for i := 0; i < n; i++ {
		for k >= 2 && Cross(Sub(out[k-1], out[k-2]), Sub(pts[i], out[k-2])) <= Epsilon {
			k--
		}
		out[k] = pts[i]
		k++
	}
	lower := k + 1
	for i := n - 2; i >= 0; i-- {
		for k >= lower && Cross(Sub(out[k-1], out[k-2]), Sub(pts[i], out[k-2])) <= Epsilon {
			k--
		}
		out[k] = pts[i]
		k++
	}
	// The last point repeats the first.
	return k - 1
}
