package factory

import (
	"errors"

	"github.com/automoto/platfight/archetypes"
	"github.com/automoto/platfight/components"
	cfg "github.com/automoto/platfight/config"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrMatchFull = errors.New("factory: match is full")

// CreatePlayer spawns a fighter in the next free slot of the match.
func CreatePlayer(ecs *ecs.ECS, match *components.MatchData, name string) (*donburi.Entry, error) {
	index := len(match.Players)
	if index >= cfg.Sim.MaxPlayers {
		return nil, ErrMatchFull
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Index: index,
		Name:  name,
		Probe: match.Space.NewProbe(),
	})
	components.Input.SetValue(player, components.NewInputHistory(match.Frame, cfg.Sim.InputHistorySize))
	components.FSM.SetValue(player, components.FSMData{
		Machine: fsm.New(match.Table, index),
	})

	match.Players = append(match.Players, player)
	match.Inputs = append(match.Inputs, messages.PlayerInput{})

	PlacePlayer(match, player, match.Stage.Spawn(index))
	return player, nil
}

// PlacePlayer resets a fighter's movement and puts it at spawn, standing
// if there is ground under the spawn point and falling otherwise.
func PlacePlayer(match *components.MatchData, e *donburi.Entry, spawn stage.Spawn) {
	pos := geom.Vec2{X: spawn.Pos.X, Y: spawn.Pos.Y - cfg.Physics.CollisionEpsilon}
	physics := components.NewPhysics(pos, spawn.Facing, cfg.Player)
	physics.Grounded = match.Stage.Grounded(pos, cfg.Physics.GroundSensorLength)
	components.Physics.SetValue(e, physics)
	components.ECB.SetValue(e, components.NewECB(pos, cfg.Player.Width, cfg.Player.Height))
	components.Contact.SetValue(e, components.ContactData{Ground: physics.Grounded})

	state := cfg.Idle
	if !physics.Grounded {
		state = cfg.NeutralFall
	}
	if sm := components.FSM.Get(e).Machine; sm != nil {
		_ = sm.SetInitialState(state)
	}
}
