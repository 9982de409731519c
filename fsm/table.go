package fsm

import (
	"errors"
	"fmt"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
)

var (
	ErrDuplicateState             = errors.New("fsm: duplicate state")
	ErrDuplicateMap               = errors.New("fsm: duplicate action state map")
	ErrUnknownState               = errors.New("fsm: unknown state")
	ErrUnknownTarget              = errors.New("fsm: transition to undefined state")
	ErrDefaultsWithoutFrameLength = errors.New("fsm: default transitions on a state without frame length")
	ErrNoInitialState             = errors.New("fsm: no initial state")
)

// ActionStateMap holds the transition rules of one state.
type ActionStateMap struct {
	State config.StateID

	// Direct maps this tick's event to a target state.
	Direct map[config.GameEvent]config.StateID

	// Conditionals are evaluated in order every tick, before Direct.
	Conditionals []Condition

	// Defaults are evaluated in order on the tick the state's frame length
	// elapses, after Conditionals and Direct.
	Defaults []Condition
}

// priority is the order transition tiers are consulted in.
var priority = [...]RuleKind{RuleConditional, RuleDirect, RuleDefault}

// Table is a validated, read-only set of states and their rules. It is
// shared by every state machine built from it.
type Table struct {
	states  [config.StateCount]*State
	maps    [config.StateCount]*ActionStateMap
	initial config.StateID
}

// State returns the definition of id.
func (t *Table) State(id config.StateID) (*State, bool) {
	if !id.Valid() || t.states[id] == nil {
		return nil, false
	}
	return t.states[id], true
}

// Map returns the rules of id.
func (t *Table) Map(id config.StateID) (*ActionStateMap, bool) {
	if !id.Valid() || t.maps[id] == nil {
		return nil, false
	}
	return t.maps[id], true
}

// Initial returns the state new machines start in.
func (t *Table) Initial() config.StateID {
	return t.initial
}

// Resolve returns the state current transitions to this tick, the rule that
// selected it, and whether any rule matched. frames is the number of ticks
// already spent in current.
func (t *Table) Resolve(current config.StateID, frames int, in messages.PlayerInput, w World, player int) (config.StateID, Rule, bool) {
	m, ok := t.Map(current)
	if !ok {
		return current, Rule{}, false
	}
	st, _ := t.State(current)

	for _, kind := range priority {
		switch kind {
		case RuleConditional:
			if c := firstTrue(m.Conditionals, w, player); c != nil {
				return c.Target(), Rule{Kind: kind, Name: c.Name(), Target: c.Target()}, true
			}
		case RuleDirect:
			if next, ok := m.Direct[in.Event]; ok {
				return next, Rule{Kind: kind, Name: in.Event.String(), Target: next}, true
			}
		case RuleDefault:
			if st == nil || !st.HasFrameLength() || frames != st.FrameLength {
				continue
			}
			if c := firstTrue(m.Defaults, w, player); c != nil {
				return c.Target(), Rule{Kind: kind, Name: c.Name(), Target: c.Target()}, true
			}
		}
	}
	return current, Rule{}, false
}

func firstTrue(conds []Condition, w World, player int) Condition {
	for _, c := range conds {
		if c.Evaluate(w, player) {
			return c
		}
	}
	return nil
}

// Builder collects states and rules and validates them into a Table.
type Builder struct {
	states     []State
	maps       []ActionStateMap
	initial    config.StateID
	hasInitial bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// State adds a state definition.
func (b *Builder) State(s State) *Builder {
	b.states = append(b.states, s)
	return b
}

// Map adds the rules of a state.
func (b *Builder) Map(m ActionStateMap) *Builder {
	b.maps = append(b.maps, m)
	return b
}

// Initial sets the state new machines start in.
func (b *Builder) Initial(id config.StateID) *Builder {
	b.initial = id
	b.hasInitial = true
	return b
}

// Build validates the collected definitions. Every configuration fault is
// reported here so nothing can fail mid-tick.
func (b *Builder) Build() (*Table, error) {
	t := &Table{}

	for i := range b.states {
		s := b.states[i]
		if !s.ID.Valid() {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownState, s.ID)
		}
		if t.states[s.ID] != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateState, s.ID)
		}
		t.states[s.ID] = &s
	}

	for i := range b.maps {
		m := b.maps[i]
		st, ok := t.State(m.State)
		if !ok {
			return nil, fmt.Errorf("%w: rules for %s", ErrUnknownState, m.State)
		}
		if t.maps[m.State] != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMap, m.State)
		}
		if len(m.Defaults) > 0 && !st.HasFrameLength() {
			return nil, fmt.Errorf("%w: %s", ErrDefaultsWithoutFrameLength, m.State)
		}
		if err := t.checkTargets(&m); err != nil {
			return nil, err
		}
		t.maps[m.State] = &m
	}

	if !b.hasInitial {
		return nil, ErrNoInitialState
	}
	if _, ok := t.State(b.initial); !ok {
		return nil, fmt.Errorf("%w: initial state %s", ErrUnknownState, b.initial)
	}
	t.initial = b.initial

	return t, nil
}

func (t *Table) checkTargets(m *ActionStateMap) error {
	for ev, target := range m.Direct {
		if _, ok := t.State(target); !ok {
			return fmt.Errorf("%w: %s on %s -> %s", ErrUnknownTarget, m.State, ev, target)
		}
	}
	for _, list := range [2][]Condition{m.Conditionals, m.Defaults} {
		for _, c := range list {
			if _, ok := t.State(c.Target()); !ok {
				return fmt.Errorf("%w: %s %q -> %s", ErrUnknownTarget, m.State, c.Name(), c.Target())
			}
		}
	}
	return nil
}
