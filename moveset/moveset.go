package moveset

import (
	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/shared/messages"
)

type physicsFunc func(p *components.PhysicsData, w fsm.World, player int, in messages.PlayerInput)

type def struct {
	id      config.StateID
	frames  int
	gravity bool
	enter   physicsFunc
	update  physicsFunc
	exit    physicsFunc
}

// state builds the fsm definition. Entering any state installs its gravity
// flag on the fighter before the state's own enter hook runs.
func (d def) state() fsm.State {
	gravity, enter := d.gravity, d.enter
	return fsm.State{
		ID:          d.id,
		FrameLength: d.frames,
		Gravity:     d.gravity,
		OnEnter: physicsHook(func(p *components.PhysicsData, w fsm.World, player int, in messages.PlayerInput) {
			p.Gravity = gravity
			if enter != nil {
				enter(p, w, player, in)
			}
		}),
		OnUpdate: physicsHook(d.update),
		OnExit:   physicsHook(d.exit),
	}
}

type direct = map[config.GameEvent]config.StateID

func merge(maps ...direct) direct {
	out := direct{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

var (
	groundActions = direct{
		config.EventJump: config.JumpSquat,
		config.EventDown: config.Crouch,
	}
	groundAttacks = direct{
		config.EventAttack:     config.Jab,
		config.EventSideAttack: config.ForwardTilt,
		config.EventUpAttack:   config.UpTilt,
		config.EventDownAttack: config.DownTilt,
	}
	airActions = direct{
		config.EventAirDodge:   config.AirDodge,
		config.EventAttack:     config.NeutralAir,
		config.EventSideAttack: config.ForwardAir,
		config.EventUpAttack:   config.UpAir,
		config.EventDownAttack: config.DownAir,
	}
)

// Default builds the default fighter's table from the frame data in effect.
func Default() (*fsm.Table, error) {
	f := config.Frames
	b := fsm.NewBuilder().Initial(config.Idle)

	defs := []def{
		{id: config.Idle, gravity: true},
		{id: config.StartWalk, frames: f.StartWalk, gravity: true, enter: startWalkEnter, update: walk},
		{id: config.Turn, frames: f.Turn, gravity: true, enter: flipFacing},
		{id: config.Walk, gravity: true, update: walk},
		{id: config.Dash, frames: f.Dash, gravity: true, enter: dashEnter, update: dash},
		{id: config.DashTurn, frames: f.DashTurn, gravity: true, enter: dashTurnEnter},
		{id: config.Run, gravity: true, update: run},
		{id: config.RunTurn, frames: f.RunTurn, gravity: true, enter: flipFacing, update: run},
		{id: config.StopRun, frames: f.StopRun, gravity: true},
		{id: config.Crouch, gravity: true},
		{id: config.JumpSquat, frames: f.JumpSquat, gravity: true, update: jumpSquat},
		{id: config.Land, frames: f.Land, gravity: true, enter: landEnter},
		{id: config.SoftLand, frames: f.SoftLand, gravity: true, enter: landEnter},

		{id: config.Jump, gravity: true, enter: jumpEnter, update: drift},
		{id: config.NeutralFall, gravity: true, enter: fallEnter, update: drift},
		{id: config.LedgeGrab, enter: ledgeGrabEnter, update: ledgeGrab, exit: ledgeGrabExit},
		{id: config.AirDodge, frames: f.AirDodge, enter: airDodgeEnter},
		{id: config.Helpless, gravity: true, update: drift},

		{id: config.Jab, frames: f.Jab, gravity: true, enter: attackEnter},
		{id: config.ForwardTilt, frames: f.ForwardTilt, gravity: true, enter: attackEnter},
		{id: config.UpTilt, frames: f.UpTilt, gravity: true, enter: attackEnter},
		{id: config.DownTilt, frames: f.DownTilt, gravity: true, enter: attackEnter},

		{id: config.NeutralAir, frames: f.NeutralAir, gravity: true, update: drift},
		{id: config.ForwardAir, frames: f.ForwardAir, gravity: true, update: drift},
		{id: config.BackAir, frames: f.BackAir, gravity: true, update: drift},
		{id: config.UpAir, frames: f.UpAir, gravity: true, update: drift},
		{id: config.DownAir, frames: f.DownAir, gravity: true, update: drift},

		{id: config.HitStop, enter: hitStopEnter, update: hitStop, exit: hitStopExit},
		{id: config.Launch, frames: f.Launch, gravity: true, enter: launchEnter, update: launch},
		{id: config.Tumble, gravity: true, update: tumble},
	}
	for _, d := range defs {
		b.State(d.state())
	}

	for _, m := range maps() {
		b.Map(m)
	}
	return b.Build()
}

func maps() []fsm.ActionStateMap {
	fall := FallOffEdge(config.NeutralFall)
	aerial := []fsm.Condition{
		SoftLanded(config.SoftLand),
		Landed(config.Land),
		GrabLedge(config.LedgeGrab),
		CanDoubleJump(config.Jump),
		BackAttack(config.BackAir),
	}
	aerialAttack := []fsm.Condition{Landed(config.Land)}
	afterGroundAttack := []fsm.Condition{fsm.Always(config.Idle)}
	afterAerial := []fsm.Condition{fsm.Always(config.NeutralFall)}
	landing := []fsm.Condition{
		HoldForward(config.Walk),
		HoldBack(config.Turn),
		fsm.Always(config.Idle),
	}

	return []fsm.ActionStateMap{
		{
			State:        config.Idle,
			Conditionals: []fsm.Condition{fall, TurnCondition("turn", config.Turn)},
			Direct: merge(groundActions, groundAttacks, direct{
				config.EventMove:     config.StartWalk,
				config.EventMoveFast: config.Dash,
			}),
		},
		{
			State:        config.StartWalk,
			Conditionals: []fsm.Condition{fall, TurnCondition("turn", config.Turn)},
			Direct: merge(groundActions, groundAttacks, direct{
				config.EventMoveFast: config.Dash,
			}),
			Defaults: []fsm.Condition{HoldForward(config.Walk), fsm.Always(config.Idle)},
		},
		{
			State:        config.Turn,
			Conditionals: []fsm.Condition{fall},
			Direct: merge(groundActions, groundAttacks, direct{
				config.EventMoveFast: config.Dash,
			}),
			Defaults: []fsm.Condition{HoldForward(config.Walk), fsm.Always(config.Idle)},
		},
		{
			State: config.Walk,
			Conditionals: []fsm.Condition{
				fall,
				TurnCondition("turn", config.Turn),
				Neutral(config.Idle),
			},
			Direct: merge(groundActions, groundAttacks),
		},
		{
			State: config.Dash,
			Conditionals: []fsm.Condition{
				fall,
				TurnCondition("dash_turn", config.DashTurn),
			},
			Direct:   direct{config.EventJump: config.JumpSquat},
			Defaults: []fsm.Condition{HoldForward(config.Run), fsm.Always(config.Idle)},
		},
		{
			State:        config.DashTurn,
			Conditionals: []fsm.Condition{fall},
			Direct:       direct{config.EventJump: config.JumpSquat},
			Defaults:     []fsm.Condition{HoldForward(config.Dash), fsm.Always(config.Idle)},
		},
		{
			State: config.Run,
			Conditionals: []fsm.Condition{
				fall,
				TurnCondition("run_turn", config.RunTurn),
				Neutral(config.StopRun),
			},
			Direct: merge(groundActions, direct{
				config.EventAttack: config.Jab,
			}),
		},
		{
			State:        config.RunTurn,
			Conditionals: []fsm.Condition{fall},
			Direct:       direct{config.EventJump: config.JumpSquat},
			Defaults:     []fsm.Condition{HoldForward(config.Run), fsm.Always(config.Idle)},
		},
		{
			State:        config.StopRun,
			Conditionals: []fsm.Condition{fall},
			Direct:       direct{config.EventJump: config.JumpSquat},
			Defaults:     []fsm.Condition{fsm.Always(config.Idle)},
		},
		{
			State:        config.Crouch,
			Conditionals: []fsm.Condition{fall, ReleaseDown(config.Idle)},
			Direct: direct{
				config.EventJump:       config.JumpSquat,
				config.EventAttack:     config.DownTilt,
				config.EventDownAttack: config.DownTilt,
			},
		},
		{
			State:    config.JumpSquat,
			Defaults: []fsm.Condition{fsm.Always(config.Jump)},
		},
		{
			State:    config.Land,
			Defaults: landing,
		},
		{
			State:    config.SoftLand,
			Defaults: landing,
		},

		{
			State:        config.Jump,
			Conditionals: append(append([]fsm.Condition{}, aerial...), Falling(config.NeutralFall)),
			Direct:       airActions,
		},
		{
			State:        config.NeutralFall,
			Conditionals: aerial,
			Direct:       airActions,
		},
		{
			State:        config.LedgeGrab,
			Conditionals: []fsm.Condition{CanDoubleJump(config.Jump)},
			Direct:       direct{config.EventDown: config.NeutralFall},
		},
		{
			State:        config.AirDodge,
			Conditionals: []fsm.Condition{Landed(config.Land)},
			Defaults:     []fsm.Condition{fsm.Always(config.Helpless)},
		},
		{
			State:        config.Helpless,
			Conditionals: []fsm.Condition{Landed(config.Land), GrabLedge(config.LedgeGrab)},
		},

		{State: config.Jab, Conditionals: []fsm.Condition{fall}, Defaults: afterGroundAttack},
		{State: config.ForwardTilt, Conditionals: []fsm.Condition{fall}, Defaults: afterGroundAttack},
		{State: config.UpTilt, Conditionals: []fsm.Condition{fall}, Defaults: afterGroundAttack},
		{
			State:        config.DownTilt,
			Conditionals: []fsm.Condition{fall},
			Defaults:     []fsm.Condition{HoldDown(config.Crouch), fsm.Always(config.Idle)},
		},

		{State: config.NeutralAir, Conditionals: aerialAttack, Defaults: afterAerial},
		{State: config.ForwardAir, Conditionals: aerialAttack, Defaults: afterAerial},
		{State: config.BackAir, Conditionals: aerialAttack, Defaults: afterAerial},
		{State: config.UpAir, Conditionals: aerialAttack, Defaults: afterAerial},
		{State: config.DownAir, Conditionals: aerialAttack, Defaults: afterAerial},

		{
			State: config.HitStop,
			Conditionals: []fsm.Condition{
				HitStopElapsed(config.Launch, true),
				All("hit_stop_grounded", config.Idle, HitStopElapsed(config.Idle, false), Grounded(config.Idle)),
				HitStopElapsed(config.NeutralFall, false),
			},
		},
		{
			State:        config.Launch,
			Conditionals: []fsm.Condition{Landed(config.Land)},
			Defaults:     []fsm.Condition{fsm.Always(config.Tumble)},
		},
		{
			State: config.Tumble,
			Conditionals: []fsm.Condition{
				Landed(config.Land),
				Actionable(CanDoubleJump(config.Jump)),
			},
		},
	}
}
