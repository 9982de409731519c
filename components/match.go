package components

import (
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/pool"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
	"github.com/yohamta/donburi"
)

// MatchData is the singleton holding the per-match state shared by every
// system.
type MatchData struct {
	Frame int // Tick being simulated

	Stage *stage.Stage
	Space *stage.Space
	Table *fsm.Table
	Pools *Pools

	// Players in slot order. Systems iterate this instead of a query so the
	// order is stable across runs.
	Players []*donburi.Entry

	// Inputs holds this tick's input per slot until it is recorded.
	Inputs []messages.PlayerInput

	// Scratch buffer for broadphase candidates.
	Candidates []int

	// Pool occupancy captured just before the last reset.
	PoolStats      []pool.Stats
	OverflowLogged bool

	// Slots knocked out on the last tick.
	KOs []int
}

var Match = donburi.NewComponentType[MatchData]()

// MustFindMatch returns the match singleton or panics if it does not exist.
func MustFindMatch(w donburi.World) *MatchData {
	e, ok := Match.First(w)
	if !ok {
		panic("components: no match entity")
	}
	return Match.Get(e)
}
