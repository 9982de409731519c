package archetypes

import (
	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only layer the simulation uses.
const Default ecs.LayerID = 0

var (
	Match = newArchetype(
		tags.Match,
		components.Match,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.ECB,
		components.Input,
		components.FSM,
		components.Contact,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
