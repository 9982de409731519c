package messages

import "github.com/automoto/platfight/geom"

// Hit is a landed attack reported to the simulation between ticks.
type Hit struct {
	Target    int       `json:"target"`    // Slot of the player that was hit
	Damage    float64   `json:"damage"`    // Percent added to the target
	Knockback geom.Vec2 `json:"knockback"` // Base launch velocity
}
