package stage

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"
)

const (
	// Resolv tag for stage pieces
	ResolvSolid = "solid"
	// Resolv tag for player probes
	ResolvProbe = "probe"

	spaceCellSize = 32
)

// Space is a resolv broadphase holding one object per stage piece. It is
// created per match; the Stage itself is never mutated.
type Space struct {
	stage  *Stage
	space  *resolv.Space
	ox, oy float64
}

// NewSpace builds a broadphase covering the stage's blast zone.
func (s *Stage) NewSpace() *Space {
	bz := s.BlastZone
	w := int(math.Ceil(bz.MaxX - bz.MinX))
	h := int(math.Ceil(bz.MaxY - bz.MinY))

	sp := &Space{
		stage: s,
		space: resolv.NewSpace(w, h, spaceCellSize, spaceCellSize),
		ox:    bz.MinX,
		oy:    bz.MinY,
	}
	for i := range s.Pieces {
		x0, y0, x1, y1 := s.Pieces[i].Polygon.Bounds()
		obj := resolv.NewObject(x0-sp.ox, y0-sp.oy, x1-x0, y1-y0, ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, x1-x0, y1-y0))
		obj.Data = i
		sp.space.Add(obj)
	}
	return sp
}

// Stage returns the stage the space was built from.
func (sp *Space) Stage() *Stage { return sp.stage }

// Probe is a movable query box registered in a Space.
type Probe struct {
	space *Space
	obj   *resolv.Object
}

// NewProbe adds a probe to the space.
func (sp *Space) NewProbe() *Probe {
	obj := resolv.NewObject(0, 0, 1, 1, ResolvProbe)
	sp.space.Add(obj)
	return &Probe{space: sp, obj: obj}
}

// Remove takes a probe out of the space.
func (sp *Space) Remove(p *Probe) {
	sp.space.Remove(p.obj)
}

// Candidates moves the probe over the given bounds and appends the indices
// of pieces whose bounding boxes overlap it to dst, in piece order.
func (p *Probe) Candidates(minX, minY, maxX, maxY float64, dst []int) []int {
	sp := p.space
	p.obj.X = minX - sp.ox
	p.obj.Y = minY - sp.oy
	p.obj.W = math.Max(maxX-minX, 1)
	p.obj.H = math.Max(maxY-minY, 1)
	p.obj.Update()

	check := p.obj.Check(0, 0, ResolvSolid)
	if check == nil {
		return dst
	}
	start := len(dst)
	for _, o := range check.ObjectsByTags(ResolvSolid) {
		i, ok := o.Data.(int)
		if !ok {
			continue
		}
		x0, y0, x1, y1 := sp.stage.Pieces[i].Polygon.Bounds()
		if x1 < minX || x0 > maxX || y1 < minY || y0 > maxY {
			continue
		}
		dst = append(dst, i)
	}
	slices.Sort(dst[start:])
	return dst
}
