// Package fsm resolves a fighter's action state each tick from a table of
// per-state transition rules.
//
// Resolution follows one fixed priority: conditional transitions, then the
// direct event mapping, then the default transitions once the state's frame
// length has elapsed. If nothing matches the current state keeps running.
package fsm

import (
	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
	"github.com/yohamta/donburi"
)

// World is the read view of the match that hooks and conditions see.
type World interface {
	// Frame returns the tick being simulated.
	Frame() int
	// Player returns the entity of the player with the given index.
	Player(player int) (*donburi.Entry, bool)
	// Input returns the player's input for this tick and the previous one.
	// Missing frames read as the zero input.
	Input(player int) (cur, prev messages.PlayerInput)
}

// Hook runs on a state change or state update.
type Hook func(w World, player int, in messages.PlayerInput)

// State is the immutable definition of one action state.
type State struct {
	ID config.StateID

	// FrameLength is the number of ticks the state runs before its default
	// transitions are consulted. Zero means the state has no frame length
	// and its defaults never run.
	FrameLength int

	// Gravity reports whether gravity applies while airborne in this state.
	Gravity bool

	OnEnter  Hook
	OnUpdate Hook
	OnExit   Hook
}

func (s *State) HasFrameLength() bool {
	return s.FrameLength > 0
}

// Condition is a named predicate bound to a target state. Evaluate must not
// mutate the world.
type Condition interface {
	Name() string
	Target() config.StateID
	Evaluate(w World, player int) bool
}

// Predicate is the function form of Condition.Evaluate.
type Predicate func(w World, player int) bool

type condition struct {
	name   string
	target config.StateID
	fn     Predicate
}

func (c condition) Name() string                      { return c.name }
func (c condition) Target() config.StateID            { return c.target }
func (c condition) Evaluate(w World, player int) bool { return c.fn(w, player) }

// When binds fn to target under name.
func When(name string, target config.StateID, fn Predicate) Condition {
	return condition{name: name, target: target, fn: fn}
}

// Always is a condition that always holds. It ends default lists so a state
// never stalls at its frame length.
func Always(target config.StateID) Condition {
	return condition{
		name:   "always",
		target: target,
		fn:     func(World, int) bool { return true },
	}
}

// RuleKind names the tier a transition was resolved by.
type RuleKind int

const (
	RuleNone RuleKind = iota
	RuleConditional
	RuleDirect
	RuleDefault
	RuleForced
)

func (k RuleKind) String() string {
	switch k {
	case RuleConditional:
		return "conditional"
	case RuleDirect:
		return "direct"
	case RuleDefault:
		return "default"
	case RuleForced:
		return "forced"
	default:
		return "none"
	}
}

// Rule describes the transition taken on a tick.
type Rule struct {
	Kind   RuleKind
	Name   string // condition name or event name
	Target config.StateID
}
