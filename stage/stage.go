// Package stage holds the static collision geometry of a match: convex solid
// pieces, their classified surfaces, ledges, spawn points and blast zone.
// A Stage is immutable once built and may be shared by any number of matches.
package stage

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/platfight/geom"
)

var (
	ErrMissingStage = errors.New("stage: no stage geometry")
	ErrTooFewPoints = errors.New("stage: piece needs at least three distinct points")
)

// SurfaceKind classifies a piece edge by the direction it faces.
type SurfaceKind int

const (
	Ground    SurfaceKind = iota // faces up
	LeftWall                     // faces left, on the left side of a piece
	RightWall                    // faces right, on the right side of a piece
	Ceiling                      // faces down
)

func (k SurfaceKind) String() string {
	switch k {
	case Ground:
		return "ground"
	case LeftWall:
		return "left_wall"
	case RightWall:
		return "right_wall"
	case Ceiling:
		return "ceiling"
	default:
		return "unknown"
	}
}

// Piece is one convex solid polygon.
type Piece struct {
	Name    string
	Polygon geom.Polygon
	// Grabbable pieces expose ledges at the ends of their ground.
	Grabbable bool
}

// Edge is a classified piece edge.
type Edge struct {
	geom.Segment
	Kind   SurfaceKind
	Normal geom.Vec2 // outward unit normal
	Piece  int
}

// Ledge is a grabbable corner. Side is -1 for a ledge on the left end of a
// ground surface and 1 for the right end.
type Ledge struct {
	Point geom.Vec2
	Side  float64
	Piece int
}

// Spawn is a starting position at a fighter's feet.
type Spawn struct {
	Pos    geom.Vec2
	Facing float64
}

// BlastZone is the area a fighter must stay inside.
type BlastZone struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b BlastZone) Contains(p geom.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Stage is the immutable collision geometry of a match.
type Stage struct {
	Name      string
	Pieces    []Piece
	Ground    []Edge
	LeftWall  []Edge
	RightWall []Edge
	Ceiling   []Edge
	Ledges    []Ledge
	Spawns    []Spawn
	BlastZone BlastZone
}

// New builds a stage from its pieces. Each piece is replaced by its convex
// hull and its edges are classified by their outward normal. The blast zone
// defaults to the piece bounds padded by margin on every side.
func New(name string, pieces []Piece, spawns []Spawn, margin float64) (*Stage, error) {
	if len(pieces) == 0 {
		return nil, ErrMissingStage
	}

	s := &Stage{
		Name:   name,
		Pieces: make([]Piece, 0, len(pieces)),
		Spawns: append([]Spawn(nil), spawns...),
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range pieces {
		hull := geom.ConvexHull(p.Polygon)
		if len(hull) < 3 {
			return nil, fmt.Errorf("%w: %q", ErrTooFewPoints, p.Name)
		}
		p.Polygon = hull
		s.Pieces = append(s.Pieces, p)
		s.classify(i, p)

		x0, y0, x1, y1 := hull.Bounds()
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}

	s.BlastZone = BlastZone{
		MinX: minX - margin,
		MinY: minY - margin,
		MaxX: maxX + margin,
		MaxY: maxY + margin,
	}
	return s, nil
}

func (s *Stage) classify(index int, p Piece) {
	poly := p.Polygon
	c := poly.Centroid()
	kinds := make([]SurfaceKind, len(poly))

	for i := range poly {
		seg := poly.Edge(i)
		n := seg.Normal()
		if geom.Dot(n, geom.Sub(seg.Midpoint(), c)) < 0 {
			n = geom.Scale(n, -1)
		}
		kind := surfaceKind(n)
		kinds[i] = kind

		e := Edge{Segment: seg, Kind: kind, Normal: n, Piece: index}
		switch kind {
		case Ground:
			s.Ground = append(s.Ground, e)
		case LeftWall:
			s.LeftWall = append(s.LeftWall, e)
		case RightWall:
			s.RightWall = append(s.RightWall, e)
		case Ceiling:
			s.Ceiling = append(s.Ceiling, e)
		}
	}

	if !p.Grabbable {
		return
	}
	n := len(poly)
	for i := range poly {
		if kinds[i] != Ground {
			continue
		}
		seg := poly.Edge(i)
		prev, next := kinds[(i+n-1)%n], kinds[(i+1)%n]
		left, right := seg.A, seg.B
		leftKind, rightKind := prev, next
		if left.X > right.X {
			left, right = right, left
			leftKind, rightKind = next, prev
		}
		if leftKind == LeftWall {
			s.Ledges = append(s.Ledges, Ledge{Point: left, Side: -1, Piece: index})
		}
		if rightKind == RightWall {
			s.Ledges = append(s.Ledges, Ledge{Point: right, Side: 1, Piece: index})
		}
	}
}

func surfaceKind(n geom.Vec2) SurfaceKind {
	if math.Abs(n.Y) >= math.Abs(n.X) {
		if n.Y < 0 {
			return Ground
		}
		return Ceiling
	}
	if n.X < 0 {
		return LeftWall
	}
	return RightWall
}

// Hull returns the main stage polygon.
func (s *Stage) Hull() geom.Polygon {
	return s.Pieces[0].Polygon
}

// GroundAt casts a vertical segment of the given length down from sensor and
// returns the first ground hit.
func (s *Stage) GroundAt(sensor geom.Vec2, length float64) (geom.Vec2, bool) {
	end := geom.Vec2{X: sensor.X, Y: sensor.Y + length}
	best := math.Inf(1)
	var hit geom.Vec2
	for _, e := range s.Ground {
		at, ok := geom.SegmentIntersect(sensor, end, e.A, e.B)
		if ok && at.Y < best {
			best = at.Y
			hit = at
		}
	}
	return hit, !math.IsInf(best, 1)
}

// Grounded reports whether the sensor segment touches any ground surface.
func (s *Stage) Grounded(sensor geom.Vec2, length float64) bool {
	_, ok := s.GroundAt(sensor, length)
	return ok
}

// NearestLedge returns the closest ledge within radius of p.
func (s *Stage) NearestLedge(p geom.Vec2, radius float64) (Ledge, bool) {
	best := radius
	var found Ledge
	ok := false
	for _, l := range s.Ledges {
		if d := geom.Length(geom.Sub(l.Point, p)); d <= best {
			best = d
			found = l
			ok = true
		}
	}
	return found, ok
}

// Spawn returns the spawn point for player index, cycling through the
// stage's spawns. A stage without spawns spawns everyone above its hull.
func (s *Stage) Spawn(index int) Spawn {
	if len(s.Spawns) == 0 {
		x0, y0, x1, _ := s.Hull().Bounds()
		return Spawn{Pos: geom.Vec2{X: (x0 + x1) / 2, Y: y0}, Facing: 1}
	}
	return s.Spawns[index%len(s.Spawns)]
}
