package systems

import (
	"log"

	"github.com/automoto/platfight/components"
	"github.com/yohamta/donburi/ecs"
)

// ResetPools captures pool occupancy and starts a new pool epoch. Must run
// LAST: nothing rented this tick may be used after it.
func ResetPools(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.Pools == nil {
		return
	}

	match.PoolStats = match.Pools.Stats(match.PoolStats[:0])
	if !match.OverflowLogged {
		for _, s := range match.PoolStats {
			if s.Overflow > 0 {
				log.Printf("[core] Pool %s overflowed on frame %d: %d past capacity %d", s.Name, match.Frame, s.Overflow, s.Cap)
				match.OverflowLogged = true
			}
		}
	}
	match.Pools.Reset()
}
