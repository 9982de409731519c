// Package messages holds the values passed between the simulation core and
// its collaborators. It has no dependencies on ebiten or the ECS so both the
// headless runner and the sandbox can share it.
package messages

import "github.com/automoto/platfight/config"

// PlayerInput is one player's resolved input for one tick: a single event
// plus the four analog axes, already debounced by the input collaborator.
type PlayerInput struct {
	Frame int              `json:"frame"` // Tick the input was recorded for
	Event config.GameEvent `json:"event"`
	LX    float64          `json:"lx"` // Left stick, -1 left to 1 right
	LY    float64          `json:"ly"` // Left stick, -1 up to 1 down
	RX    float64          `json:"rx"`
	RY    float64          `json:"ry"`
	Jump  bool             `json:"jump,omitempty"` // Jump button held
}

// NewPlayerInput creates an input with the given event and left stick.
func NewPlayerInput(frame int, event config.GameEvent, lx, ly float64) PlayerInput {
	return PlayerInput{
		Frame: frame,
		Event: event,
		LX:    lx,
		LY:    ly,
	}
}
