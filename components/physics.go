package components

import (
	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/geom"
	"github.com/yohamta/donburi"
)

// PhysicsData is a fighter's movement state. Pos is the bottom center of
// the collision box, at the fighter's feet.
type PhysicsData struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Facing float64 // -1 left, 1 right

	FastFall  bool
	Gravity   bool // Gravity applies while airborne
	Grounded  bool
	JumpCount int  // Jumps used since last touching ground. Falling off an edge uses one
	JumpHeld  bool // Jump was held through the last jump squat

	Speeds config.SpeedProfile

	// Hit reaction
	HitStop   int       // Ticks of frozen movement left
	HitStun   int       // Ticks of lost control left
	Knockback geom.Vec2 // Velocity applied when hitstop ends

	Ledge         int // Index of the held ledge, or -1
	LedgeCooldown int // Ticks before a ledge can be grabbed again
}

var Physics = donburi.NewComponentType[PhysicsData]()

// NewPhysics returns the physics state of a fighter standing at pos.
func NewPhysics(pos geom.Vec2, facing float64, speeds config.SpeedProfile) PhysicsData {
	if facing == 0 {
		facing = config.DirectionRight
	}
	return PhysicsData{
		Pos:     pos,
		Facing:  facing,
		Gravity: true,
		Speeds:  speeds,
		Ledge:   -1,
	}
}

// Airborne reports whether the fighter is off the ground.
func (p *PhysicsData) Airborne() bool {
	return !p.Grounded
}

// Land resets the aerial flags on touching ground.
func (p *PhysicsData) Land() {
	p.Grounded = true
	p.FastFall = false
	p.JumpCount = 0
}
