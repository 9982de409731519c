// Package moveset defines the default fighter: its action states, the hooks
// that drive its physics and the conditions that move it between states.
package moveset

import (
	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/stage"
)

// StageWorld is a World that also exposes the match stage. Ledge conditions
// and hooks only work when the world implements it.
type StageWorld interface {
	fsm.World
	Stage() *stage.Stage
}

func physicsOf(w fsm.World, player int) *components.PhysicsData {
	e, ok := w.Player(player)
	if !ok || e == nil || !e.HasComponent(components.Physics) {
		return nil
	}
	return components.Physics.Get(e)
}

func ecbOf(w fsm.World, player int) *components.ECBData {
	e, ok := w.Player(player)
	if !ok || e == nil || !e.HasComponent(components.ECB) {
		return nil
	}
	return components.ECB.Get(e)
}

func stageOf(w fsm.World) *stage.Stage {
	if sw, ok := w.(StageWorld); ok {
		return sw.Stage()
	}
	return nil
}
