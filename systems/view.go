package systems

import (
	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
	"github.com/yohamta/donburi"
)

// MatchView exposes the match singleton to state machine hooks and
// conditions.
type MatchView struct {
	match *components.MatchData
}

func NewMatchView(m *components.MatchData) MatchView {
	return MatchView{match: m}
}

func (v MatchView) Frame() int { return v.match.Frame }

func (v MatchView) Player(index int) (*donburi.Entry, bool) {
	if index < 0 || index >= len(v.match.Players) {
		return nil, false
	}
	e := v.match.Players[index]
	return e, e != nil && e.Valid()
}

// Input returns the recorded input of the current and previous tick. A
// missing frame reads as the zero input.
func (v MatchView) Input(index int) (cur, prev messages.PlayerInput) {
	e, ok := v.Player(index)
	if !ok || !e.HasComponent(components.Input) {
		return cur, prev
	}
	h := components.Input.Get(e)
	return h.Current(v.match.Frame), h.Previous(v.match.Frame)
}

func (v MatchView) Stage() *stage.Stage { return v.match.Stage }
