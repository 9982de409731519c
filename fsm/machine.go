package fsm

import (
	"fmt"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
)

// StateMachine tracks one player's current action state.
type StateMachine struct {
	table   *Table
	player  int
	current config.StateID
	frames  int
	last    Rule

	transitions int

	// OnTransition, if set, is called after every state change.
	OnTransition func(from, to config.StateID, rule Rule)
}

// New creates a machine for player in the table's initial state.
func New(table *Table, player int) *StateMachine {
	return &StateMachine{
		table:   table,
		player:  player,
		current: table.Initial(),
	}
}

// SetInitialState puts the machine in id without running any hooks and
// resets the frame counter.
func (sm *StateMachine) SetInitialState(id config.StateID) error {
	if _, ok := sm.table.State(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, id)
	}
	sm.current = id
	sm.frames = 0
	sm.last = Rule{}
	return nil
}

// Update runs one tick: it resolves the next state and either changes to it
// or updates the current state.
func (sm *StateMachine) Update(w World, in messages.PlayerInput) {
	next, rule, ok := sm.table.Resolve(sm.current, sm.frames, in, w, sm.player)
	if ok {
		if _, known := sm.table.State(next); known {
			sm.changeState(w, next, rule, in)
			return
		}
	}

	sm.last = Rule{}
	if st, ok := sm.table.State(sm.current); ok && st.OnUpdate != nil {
		st.OnUpdate(w, sm.player, in)
	}
	sm.frames++
}

// ForceState changes to id outside of normal resolution, for example when
// the player is hit. Unknown states are ignored.
func (sm *StateMachine) ForceState(w World, id config.StateID, in messages.PlayerInput) bool {
	if _, ok := sm.table.State(id); !ok {
		return false
	}
	sm.changeState(w, id, Rule{Kind: RuleForced, Target: id}, in)
	return true
}

// changeState exits the old state, enters the new one and runs its first
// update, all within the calling tick.
func (sm *StateMachine) changeState(w World, next config.StateID, rule Rule, in messages.PlayerInput) {
	prev := sm.current
	if st, ok := sm.table.State(prev); ok && st.OnExit != nil {
		st.OnExit(w, sm.player, in)
	}

	sm.current = next
	sm.frames = 0
	sm.last = rule
	sm.transitions++

	st, _ := sm.table.State(next)
	if st.OnEnter != nil {
		st.OnEnter(w, sm.player, in)
	}
	if st.OnUpdate != nil {
		st.OnUpdate(w, sm.player, in)
	}
	sm.frames = 1

	if sm.OnTransition != nil {
		sm.OnTransition(prev, next, rule)
	}
}

// Current returns the current state.
func (sm *StateMachine) Current() config.StateID { return sm.current }

// State returns the definition of the current state.
func (sm *StateMachine) State() *State {
	st, _ := sm.table.State(sm.current)
	return st
}

// Frames returns the ticks spent in the current state, including the tick
// it was entered on.
func (sm *StateMachine) Frames() int { return sm.frames }

// LastRule returns the rule that changed state on the most recent tick, or
// a zero Rule if the state did not change.
func (sm *StateMachine) LastRule() Rule { return sm.last }

// Transitions returns the number of state changes so far.
func (sm *StateMachine) Transitions() int { return sm.transitions }

func (sm *StateMachine) Player() int { return sm.player }

func (sm *StateMachine) Table() *Table { return sm.table }
