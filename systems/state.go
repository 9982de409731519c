package systems

import (
	"github.com/automoto/platfight/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStateMachines advances every player's state machine one tick, in
// slot order.
func UpdateStateMachines(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	view := NewMatchView(match)

	for _, e := range match.Players {
		sm := components.FSM.Get(e).Machine
		if sm == nil {
			continue
		}
		in := components.Input.Get(e).Current(match.Frame)
		sm.Update(view, in)
	}
}
