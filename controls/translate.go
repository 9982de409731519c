// Package controls turns raw controller state into the per-tick input the
// simulation consumes. It does not poll devices; callers fill RawState.
package controls

import (
	"math"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
)

// RawState is one player's controller state for one tick. Sticks range
// from -1 to 1 with +Y down.
type RawState struct {
	LX, LY float64
	RX, RY float64

	Jump   bool
	Attack bool
	Guard  bool
}

// Translator resolves one event per player per tick. It remembers the
// previous tick of every player so presses and flicks fire once.
type Translator struct {
	prev []RawState
}

func NewTranslator(players int) *Translator {
	return &Translator{prev: make([]RawState, players)}
}

// Translate resolves raw into the input for frame and remembers it as the
// player's previous state.
func (t *Translator) Translate(player, frame int, raw RawState) messages.PlayerInput {
	for player >= len(t.prev) {
		t.prev = append(t.prev, RawState{})
	}
	raw = deadzone(raw)
	prev := t.prev[player]
	t.prev[player] = raw

	return messages.PlayerInput{
		Frame: frame,
		Event: resolve(raw, prev),
		LX:    raw.LX,
		LY:    raw.LY,
		RX:    raw.RX,
		RY:    raw.RY,
		Jump:  raw.Jump,
	}
}

// Reset forgets the previous state of every player.
func (t *Translator) Reset() {
	clear(t.prev)
}

func deadzone(raw RawState) RawState {
	dz := config.Input.AxisDeadzone
	for _, v := range []*float64{&raw.LX, &raw.LY, &raw.RX, &raw.RY} {
		if math.Abs(*v) < dz {
			*v = 0
		}
	}
	return raw
}

// resolve picks the highest priority event: jump, then guard, then
// attacks, then crouch, then movement.
func resolve(raw, prev RawState) config.GameEvent {
	in := config.Input
	switch {
	case raw.Jump && !prev.Jump:
		return config.EventJump
	case raw.Guard && !prev.Guard:
		return config.EventAirDodge
	case raw.Guard:
		return config.EventGuard
	case raw.Attack && !prev.Attack:
		return attack(raw)
	case raw.LY >= in.CrouchThreshold:
		return config.EventDown
	case math.Abs(raw.LX) >= in.DashThreshold && math.Abs(prev.LX) < in.DashThreshold:
		return config.EventMoveFast
	case raw.LX != 0:
		return config.EventMove
	default:
		return config.EventIdle
	}
}

// attack picks the attack for the stick direction held as the button is
// pressed. The C-stick overrides the left stick.
func attack(raw RawState) config.GameEvent {
	x, y := raw.LX, raw.LY
	if raw.RX != 0 || raw.RY != 0 {
		x, y = raw.RX, raw.RY
	}
	in := config.Input
	switch {
	case y <= -in.CrouchThreshold:
		return config.EventUpAttack
	case y >= in.CrouchThreshold:
		return config.EventDownAttack
	case math.Abs(x) >= in.TurnThreshold:
		return config.EventSideAttack
	default:
		return config.EventAttack
	}
}
