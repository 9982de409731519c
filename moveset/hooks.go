package moveset

import (
	"math"

	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/shared/gamemath"
	"github.com/automoto/platfight/shared/messages"
)

func frontVertex(facing float64) int {
	if facing < 0 {
		return components.ECBLeft
	}
	return components.ECBRight
}

// physicsHook adapts a function over the fighter's physics to a Hook. The
// hook does nothing for a player without physics.
func physicsHook(fn func(p *components.PhysicsData, w fsm.World, player int, in messages.PlayerInput)) fsm.Hook {
	if fn == nil {
		return nil
	}
	return func(w fsm.World, player int, in messages.PlayerInput) {
		if p := physicsOf(w, player); p != nil {
			fn(p, w, player, in)
		}
	}
}

func flipFacing(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Facing = -p.Facing
}

// faceStick turns the fighter toward the stick if it is deflected.
func faceStick(p *components.PhysicsData, in messages.PlayerInput) {
	if math.Abs(in.LX) > config.Input.AxisDeadzone {
		p.Facing = gamemath.Sign(in.LX)
	}
}

func startWalkEnter(p *components.PhysicsData, _ fsm.World, _ int, in messages.PlayerInput) {
	faceStick(p, in)
}

func walk(p *components.PhysicsData, _ fsm.World, _ int, in messages.PlayerInput) {
	if math.Abs(in.LX) <= config.Input.AxisDeadzone {
		return
	}
	clamp := p.Speeds.WalkMax * math.Min(math.Abs(in.LX), 1)
	p.Vel.X = gamemath.AddClampedImpulse(p.Vel.X, clamp, gamemath.Sign(in.LX)*p.Speeds.WalkAccel)
}

func dashEnter(p *components.PhysicsData, _ fsm.World, _ int, in messages.PlayerInput) {
	faceStick(p, in)
	p.Vel.X = p.Facing * p.Speeds.DashSpeed
}

func dash(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Vel.X = gamemath.AddClampedImpulse(p.Vel.X, p.Speeds.DashMax, p.Facing*p.Speeds.RunAccel)
}

func run(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Vel.X = gamemath.AddClampedImpulse(p.Vel.X, p.Speeds.RunMax, p.Facing*p.Speeds.RunAccel)
}

func dashTurnEnter(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Facing = -p.Facing
	p.Vel.X /= 2
}

func jumpSquat(p *components.PhysicsData, _ fsm.World, _ int, in messages.PlayerInput) {
	p.JumpHeld = in.Jump
}

// jumpEnter launches a ground jump from jump squat or an aerial jump.
func jumpEnter(p *components.PhysicsData, _ fsm.World, _ int, in messages.PlayerInput) {
	p.FastFall = false
	if p.Grounded {
		v := p.Speeds.ShortHopVelocity
		if p.JumpHeld {
			v = p.Speeds.JumpVelocity
		}
		p.Vel.Y = -v
		p.Grounded = false
		p.JumpCount = 1
		return
	}
	p.Vel.Y = -p.Speeds.DoubleJumpVelocity
	p.Vel.X = in.LX * p.Speeds.AirMax
	p.JumpCount++
}

// drift applies air control and fast-fall.
func drift(p *components.PhysicsData, w fsm.World, player int, in messages.PlayerInput) {
	if math.Abs(in.LX) > config.Input.AxisDeadzone {
		clamp := p.Speeds.AirMax * math.Min(math.Abs(in.LX), 1)
		p.Vel.X = gamemath.AddClampedImpulse(p.Vel.X, clamp, gamemath.Sign(in.LX)*p.Speeds.AirAccel)
	}

	// Fast-fall on a downward flick once falling.
	_, prev := w.Input(player)
	t := config.Input.FastFallThreshold
	if !p.Grounded && p.Vel.Y > 0 && in.LY >= t && prev.LY < t {
		p.FastFall = true
	}
}

// fallEnter spends the ground jump when the fighter leaves the ground
// without jumping.
func fallEnter(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	if p.JumpCount == 0 {
		p.JumpCount = 1
	}
}

func landEnter(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Land()
	if p.Vel.Y > 0 {
		p.Vel.Y = 0
	}
}

func airDodgeEnter(p *components.PhysicsData, _ fsm.World, _ int, in messages.PlayerInput) {
	p.FastFall = false
	dir := geom.Normalize(geom.V(in.LX, in.LY))
	p.Vel = geom.Scale(dir, p.Speeds.AirDodgeSpeed)
}

func ledgeGrabEnter(p *components.PhysicsData, w fsm.World, player int, _ messages.PlayerInput) {
	i, ok := findLedge(w, player)
	s := stageOf(w)
	if !ok || s == nil {
		return
	}
	l := s.Ledges[i]
	p.Ledge = i
	p.Vel = geom.Vec2{}
	p.FastFall = false
	// Hanging counts as having used the ground jump.
	p.JumpCount = 1

	// Hang with the front corner just outside the ledge.
	hw := p.Speeds.Width/2 + config.Physics.CollisionEpsilon
	p.Pos = geom.Vec2{X: l.Point.X + l.Side*hw, Y: l.Point.Y + p.Speeds.Height/2}
	if e := ecbOf(w, player); e != nil {
		e.Place(p.Pos)
	}
}

func ledgeGrabExit(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Ledge = -1
	p.LedgeCooldown = config.Physics.LedgeRegrabTicks
}

func ledgeGrab(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Vel = geom.Vec2{}
}

func hitStopEnter(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Vel = geom.Vec2{}
	p.FastFall = false
	p.Ledge = -1
}

func hitStop(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Vel = geom.Vec2{}
	if p.HitStop > 0 {
		p.HitStop--
	}
}

// hitStopExit releases the stored knockback. Only a launch keeps hitstun.
func hitStopExit(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	if geom.Length(p.Knockback) < config.Combat.TumbleSpeed {
		p.HitStun = 0
	}
	p.Vel = p.Knockback
	p.Knockback = geom.Vec2{}
}

func launchEnter(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	if p.Vel.Y < 0 {
		p.Grounded = false
	}
}

func launch(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	if p.HitStun > 0 {
		p.HitStun--
	}
	speed := geom.Length(p.Vel)
	if speed > 0 {
		next := math.Max(speed-config.Combat.LaunchDecay, 0)
		p.Vel = geom.Scale(p.Vel, next/speed)
	}
}

func tumble(p *components.PhysicsData, w fsm.World, player int, in messages.PlayerInput) {
	if p.HitStun > 0 {
		p.HitStun--
		return
	}
	drift(p, w, player, in)
}

func attackEnter(p *components.PhysicsData, _ fsm.World, _ int, _ messages.PlayerInput) {
	p.Vel.X /= 2
}
