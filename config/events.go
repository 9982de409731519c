package config

// GameEvent is the single resolved input action for one player on one tick.
type GameEvent int

const (
	EventNone GameEvent = iota
	EventIdle
	EventMove
	EventMoveFast
	EventJump
	EventAttack
	EventUpAttack
	EventDownAttack
	EventSideAttack
	EventDown
	EventGuard
	EventLand
	EventSoftLand
	EventFall
	EventLedgeGrab
	EventAirDodge
	EventCount // Must be last - used for array sizing
)

var eventNames = [EventCount]string{
	EventNone:       "none",
	EventIdle:       "idle",
	EventMove:       "move",
	EventMoveFast:   "move_fast",
	EventJump:       "jump",
	EventAttack:     "attack",
	EventUpAttack:   "up_attack",
	EventDownAttack: "down_attack",
	EventSideAttack: "side_attack",
	EventDown:       "down",
	EventGuard:      "guard",
	EventLand:       "land",
	EventSoftLand:   "soft_land",
	EventFall:       "fall",
	EventLedgeGrab:  "ledge_grab",
	EventAirDodge:   "air_dodge",
}

func (e GameEvent) String() string {
	if e < 0 || e >= EventCount {
		return "unknown"
	}
	return eventNames[e]
}

// ParseEvent returns the event with the given name as produced by String.
func ParseEvent(name string) (GameEvent, bool) {
	for i, n := range eventNames {
		if n == name {
			return GameEvent(i), true
		}
	}
	return EventNone, false
}
