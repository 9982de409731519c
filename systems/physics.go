package systems

import (
	"github.com/automoto/platfight/components"
	cfg "github.com/automoto/platfight/config"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// ApplyGravity accelerates airborne players whose state has gravity
// enabled.
func ApplyGravity(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	for _, e := range components.Match.Get(matchEntry).Players {
		applyGravity(components.Physics.Get(e))
	}
}

func applyGravity(physics *components.PhysicsData) {
	if physics.Grounded || !physics.Gravity {
		return
	}
	gravity := physics.Speeds.Gravity
	terminal := physics.Speeds.TerminalFall
	if physics.FastFall {
		gravity *= cfg.Physics.FastFallMultiplier
		terminal = physics.Speeds.FastFallTerminal
	}
	physics.Vel.Y = gamemath.ApplyGravity(physics.Vel.Y, gravity, terminal)
}

// IntegrateVelocity moves every player by its velocity, decays horizontal
// speed and rebuilds the ECB at the new position.
func IntegrateVelocity(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	for _, e := range components.Match.Get(matchEntry).Players {
		physics := components.Physics.Get(e)
		integrate(physics)
		components.ECB.Get(e).Update(physics.Pos)
	}
}

func integrate(physics *components.PhysicsData) {
	physics.Pos = geom.Add(physics.Pos, physics.Vel)

	decay := cfg.Physics.AirDecay
	if physics.Grounded {
		decay = cfg.Physics.GroundDecay
	}
	physics.Vel.X = gamemath.ApplyDecay(physics.Vel.X, decay, cfg.Physics.SnapThreshold)
	// Vertical speed is driven by gravity, so it only snaps.
	physics.Vel.Y = gamemath.ApplyDecay(physics.Vel.Y, 0, cfg.Physics.SnapThreshold)

	if physics.LedgeCooldown > 0 {
		physics.LedgeCooldown--
	}
}
