package systems

import (
	"log"

	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBlastZone knocks out players that left the stage's blast zone and
// respawns them at their spawn point.
func UpdateBlastZone(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	for i, e := range match.Players {
		physics := components.Physics.Get(e)
		if match.Stage.BlastZone.Contains(physics.Pos) {
			continue
		}
		handleKO(match, e)
		match.KOs = append(match.KOs, i)
	}
}

func handleKO(match *components.MatchData, e *donburi.Entry) {
	player := components.Player.Get(e)
	player.KOs++
	player.Damage = 0
	log.Printf("[core] Player %d KO'd on frame %d (%d total)", player.Index, match.Frame, player.KOs)

	factory.PlacePlayer(match, e, match.Stage.Spawn(player.Index))
}
