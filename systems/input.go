package systems

import (
	"github.com/automoto/platfight/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput records this tick's input into every player's history.
// Must run BEFORE UpdateStateMachines in the system order.
func UpdateInput(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	match.KOs = match.KOs[:0]

	for i, e := range match.Players {
		history := components.Input.Get(e)
		if i < len(match.Inputs) {
			history.Record(match.Frame, match.Inputs[i])
		} else {
			history.Record(match.Frame, history.Current(match.Frame))
		}
	}
}
