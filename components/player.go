package components

import (
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/stage"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index  int // Slot in the match, 0-3
	Name   string
	Damage float64 // Accumulated damage percent
	KOs    int     // Times this player left the blast zone

	Probe *stage.Probe // Broadphase query box
}

var Player = donburi.NewComponentType[PlayerData]()

// ContactData is the result of the last collision pass for one fighter.
type ContactData struct {
	Ground    bool
	Ceiling   bool
	WallLeft  bool // Wall on the fighter's left
	WallRight bool // Wall on the fighter's right
	Corner    bool

	Normal geom.Vec2 // Normal of the deepest hit, pointing into the stage
	Depth  float64
	Hits   int // SAT hits this tick
}

var Contact = donburi.NewComponentType[ContactData]()
