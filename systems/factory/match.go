package factory

import (
	"github.com/automoto/platfight/archetypes"
	"github.com/automoto/platfight/components"
	cfg "github.com/automoto/platfight/config"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton for a stage and state table.
func CreateMatch(ecs *ecs.ECS, s *stage.Stage, table *fsm.Table) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		Stage:   s,
		Space:   s.NewSpace(),
		Table:   table,
		Pools:   components.NewPools(cfg.Sim.PoolCapacity),
		Players: make([]*donburi.Entry, 0, cfg.Sim.MaxPlayers),
		Inputs:  make([]messages.PlayerInput, 0, cfg.Sim.MaxPlayers),
	})
	return match
}
