package components

import (
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/pool"
)

// Pools holds the per-tick allocators. Everything rented from them is
// invalid once Reset runs at the end of the tick.
type Pools struct {
	Results *pool.Pool[geom.CollisionResult]
	Hulls   *pool.Pool[geom.SweptHull]
}

func NewPools(capacity int) *Pools {
	return &Pools{
		Results: pool.New[geom.CollisionResult]("results", capacity),
		Hulls:   pool.New[geom.SweptHull]("hulls", capacity),
	}
}

// Stats appends the occupancy of every pool to dst.
func (p *Pools) Stats(dst []pool.Stats) []pool.Stats {
	return append(dst, p.Results.Stats(), p.Hulls.Stats())
}

// Reset starts a new epoch on every pool.
func (p *Pools) Reset() {
	p.Results.Reset()
	p.Hulls.Reset()
}
