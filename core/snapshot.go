package core

import (
	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/pool"
)

// Snapshot is an immutable copy of the world after a completed tick.
// Renderers read it from any goroutine.
type Snapshot struct {
	Frame   int              `json:"frame"` // Tick that produced the snapshot
	Stage   string           `json:"stage"`
	Players []PlayerSnapshot `json:"players"`
	Pools   []pool.Stats     `json:"pools"`
}

type PlayerSnapshot struct {
	Index       int            `json:"index"`
	Name        string         `json:"name"`
	Pos         geom.Vec2      `json:"pos"`
	Vel         geom.Vec2      `json:"vel"`
	Facing      float64        `json:"facing"`
	State       config.StateID `json:"state"`
	StateName   string         `json:"state_name"`
	StateFrames int            `json:"state_frames"`
	Hull        [4]geom.Vec2   `json:"hull"`
	Grounded    bool           `json:"grounded"`
	Damage      float64        `json:"damage"`
	KOs         int            `json:"kos"`

	Contact components.ContactData `json:"contact"`
}

// Player returns the snapshot of the player in slot index.
func (s *Snapshot) Player(index int) (PlayerSnapshot, bool) {
	if s == nil || index < 0 || index >= len(s.Players) {
		return PlayerSnapshot{}, false
	}
	return s.Players[index], true
}

func takeSnapshot(frame int, match *components.MatchData) *Snapshot {
	snap := &Snapshot{
		Frame:   frame,
		Stage:   match.Stage.Name,
		Players: make([]PlayerSnapshot, len(match.Players)),
		Pools:   append([]pool.Stats(nil), match.PoolStats...),
	}
	for i, e := range match.Players {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		sm := components.FSM.Get(e).Machine
		snap.Players[i] = PlayerSnapshot{
			Index:       player.Index,
			Name:        player.Name,
			Pos:         physics.Pos,
			Vel:         physics.Vel,
			Facing:      physics.Facing,
			State:       sm.Current(),
			StateName:   sm.Current().String(),
			StateFrames: sm.Frames(),
			Hull:        components.ECB.Get(e).Cur,
			Grounded:    physics.Grounded,
			Damage:      player.Damage,
			KOs:         player.KOs,
			Contact:     *components.Contact.Get(e),
		}
	}
	return snap
}
