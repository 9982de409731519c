package moveset

import (
	"math"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/geom"
)

// forward returns the stick deflection along the fighter's facing.
func forward(w fsm.World, player int) (cur, prev float64, ok bool) {
	p := physicsOf(w, player)
	if p == nil {
		return 0, 0, false
	}
	in, last := w.Input(player)
	return p.Facing * in.LX, p.Facing * last.LX, true
}

// TurnCondition fires on the tick the stick crosses TurnThreshold against
// the fighter's facing. Holding the stick back does not fire again.
func TurnCondition(name string, target config.StateID) fsm.Condition {
	return fsm.When(name, target, func(w fsm.World, player int) bool {
		cur, prev, ok := forward(w, player)
		if !ok {
			return false
		}
		t := config.Input.TurnThreshold
		return cur <= -t && prev > -t
	})
}

// HoldForward holds while the stick points along the fighter's facing.
func HoldForward(target config.StateID) fsm.Condition {
	return fsm.When("hold_forward", target, func(w fsm.World, player int) bool {
		cur, _, ok := forward(w, player)
		return ok && cur > config.Input.AxisDeadzone
	})
}

// HoldBack holds while the stick points against the fighter's facing.
func HoldBack(target config.StateID) fsm.Condition {
	return fsm.When("hold_back", target, func(w fsm.World, player int) bool {
		cur, _, ok := forward(w, player)
		return ok && cur < -config.Input.AxisDeadzone
	})
}

// Neutral holds while the stick is inside the deadzone horizontally.
func Neutral(target config.StateID) fsm.Condition {
	return fsm.When("neutral", target, func(w fsm.World, player int) bool {
		in, _ := w.Input(player)
		return math.Abs(in.LX) <= config.Input.AxisDeadzone
	})
}

// HoldDown holds while the stick is pushed past CrouchThreshold.
func HoldDown(target config.StateID) fsm.Condition {
	return fsm.When("hold_down", target, func(w fsm.World, player int) bool {
		in, _ := w.Input(player)
		return in.LY >= config.Input.CrouchThreshold
	})
}

// ReleaseDown holds once the stick leaves the crouch range.
func ReleaseDown(target config.StateID) fsm.Condition {
	return fsm.When("release_down", target, func(w fsm.World, player int) bool {
		in, _ := w.Input(player)
		return in.LY < config.Input.CrouchThreshold
	})
}

// FallOffEdge fires when a grounded state loses its footing.
func FallOffEdge(target config.StateID) fsm.Condition {
	return fsm.When("fall_off_edge", target, func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		return p != nil && !p.Grounded
	})
}

// Landed fires when an aerial state touches ground while not rising.
func Landed(target config.StateID) fsm.Condition {
	return fsm.When("landed", target, func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		return p != nil && p.Grounded && p.Vel.Y >= 0
	})
}

// SoftLanded fires on landing when the fighter was not fast-falling.
func SoftLanded(target config.StateID) fsm.Condition {
	return fsm.When("soft_landed", target, func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		return p != nil && p.Grounded && p.Vel.Y >= 0 && !p.FastFall
	})
}

// Falling fires once upward motion stops.
func Falling(target config.StateID) fsm.Condition {
	return fsm.When("falling", target, func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		return p != nil && !p.Grounded && p.Vel.Y > 0
	})
}

// CanDoubleJump fires on a jump event while aerial jumps remain.
func CanDoubleJump(target config.StateID) fsm.Condition {
	return fsm.When("double_jump", target, func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		if p == nil || p.Grounded {
			return false
		}
		in, _ := w.Input(player)
		return in.Event == config.EventJump && p.JumpCount < p.Speeds.MaxJumps
	})
}

// BackAttack fires on a side attack pointing against the fighter's facing.
func BackAttack(target config.StateID) fsm.Condition {
	return fsm.When("back_attack", target, func(w fsm.World, player int) bool {
		in, _ := w.Input(player)
		cur, _, ok := forward(w, player)
		return ok && in.Event == config.EventSideAttack && cur < 0
	})
}

// HitStopElapsed fires when the freeze of a hit has run out. With strong
// set it only fires for knockback fast enough to launch.
func HitStopElapsed(target config.StateID, strong bool) fsm.Condition {
	name := "hit_stop_elapsed"
	if strong {
		name = "hit_stop_elapsed_strong"
	}
	return fsm.When(name, target, func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		if p == nil || p.HitStop > 0 {
			return false
		}
		return !strong || geom.Length(p.Knockback) >= config.Combat.TumbleSpeed
	})
}

// Grounded holds while the fighter stands on ground.
func Grounded(target config.StateID) fsm.Condition {
	return fsm.When("grounded", target, func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		return p != nil && p.Grounded
	})
}

// GrabLedge fires when a falling fighter's front corner comes within
// LedgeGrabRadius of a ledge it is facing.
func GrabLedge(target config.StateID) fsm.Condition {
	return fsm.When("grab_ledge", target, func(w fsm.World, player int) bool {
		_, ok := findLedge(w, player)
		return ok
	})
}

func findLedge(w fsm.World, player int) (int, bool) {
	p := physicsOf(w, player)
	e := ecbOf(w, player)
	s := stageOf(w)
	if p == nil || e == nil || s == nil || p.Grounded || p.Vel.Y < 0 || p.LedgeCooldown > 0 {
		return -1, false
	}
	front := e.Cur[frontVertex(p.Facing)]
	best, found := config.Physics.LedgeGrabRadius, -1
	for i, l := range s.Ledges {
		// A fighter grabs a ledge on the left end of a surface facing right.
		if l.Side != -p.Facing {
			continue
		}
		if d := geom.Length(geom.Sub(l.Point, front)); d <= best {
			best, found = d, i
		}
	}
	return found, found >= 0
}

// Actionable wraps c so it only holds once hitstun has worn off.
func Actionable(c fsm.Condition) fsm.Condition {
	return fsm.When(c.Name(), c.Target(), func(w fsm.World, player int) bool {
		p := physicsOf(w, player)
		return p != nil && p.HitStun == 0 && c.Evaluate(w, player)
	})
}

// All holds when every condition holds.
func All(name string, target config.StateID, conds ...fsm.Condition) fsm.Condition {
	return fsm.When(name, target, func(w fsm.World, player int) bool {
		for _, c := range conds {
			if !c.Evaluate(w, player) {
				return false
			}
		}
		return true
	})
}
