package fsm

import (
	"errors"
	"testing"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
	"github.com/yohamta/donburi"
)

type testWorld struct {
	frame     int
	cur, prev messages.PlayerInput
}

func (w *testWorld) Frame() int { return w.frame }

func (w *testWorld) Player(int) (*donburi.Entry, bool) { return nil, false }

func (w *testWorld) Input(int) (messages.PlayerInput, messages.PlayerInput) { return w.cur, w.prev }

// step feeds one tick of input to sm.
func (w *testWorld) step(sm *StateMachine, in messages.PlayerInput) {
	w.prev = w.cur
	w.cur = in
	sm.Update(w, in)
	w.frame++
}

func stickX(w World, player int) float64 {
	cur, _ := w.Input(player)
	return cur.LX
}

type hookLog []string

func (l *hookLog) hook(name string) Hook {
	return func(World, int, messages.PlayerInput) { *l = append(*l, name) }
}

const dashLength = 8

func testTable(t *testing.T, log *hookLog) *Table {
	t.Helper()
	table, err := NewBuilder().
		State(State{ID: config.Idle, OnEnter: log.hook("idle.enter"), OnUpdate: log.hook("idle.update"), OnExit: log.hook("idle.exit")}).
		State(State{ID: config.StartWalk, OnEnter: log.hook("startwalk.enter"), OnUpdate: log.hook("startwalk.update")}).
		State(State{ID: config.Dash, FrameLength: dashLength}).
		State(State{ID: config.Run}).
		State(State{ID: config.DashTurn}).
		State(State{ID: config.JumpSquat}).
		Map(ActionStateMap{
			State: config.Idle,
			Direct: map[config.GameEvent]config.StateID{
				config.EventMove:     config.StartWalk,
				config.EventMoveFast: config.Dash,
				config.EventJump:     config.JumpSquat,
			},
		}).
		Map(ActionStateMap{
			State: config.Dash,
			Direct: map[config.GameEvent]config.StateID{
				config.EventJump: config.JumpSquat,
			},
			Conditionals: []Condition{
				When("reverse", config.DashTurn, func(w World, p int) bool { return stickX(w, p) < -0.5 }),
			},
			Defaults: []Condition{
				When("forward", config.Run, func(w World, p int) bool { return stickX(w, p) > 0.5 }),
				Always(config.Idle),
			},
		}).
		Initial(config.Idle).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return table
}

func TestSetInitialState(t *testing.T) {
	var log hookLog
	sm := New(testTable(t, &log), 0)
	if err := sm.SetInitialState(config.Dash); err != nil {
		t.Fatalf("SetInitialState: %v", err)
	}
	if sm.Current() != config.Dash || sm.Frames() != 0 {
		t.Fatalf("state = %v frames = %d, want Dash 0", sm.Current(), sm.Frames())
	}
	if len(log) != 0 {
		t.Fatalf("hooks ran on SetInitialState: %v", log)
	}
	if err := sm.SetInitialState(config.Tumble); !errors.Is(err, ErrUnknownState) {
		t.Fatalf("SetInitialState(undefined) error = %v, want ErrUnknownState", err)
	}
}

func TestMoveEntersStartWalkSameTick(t *testing.T) {
	var log hookLog
	sm := New(testTable(t, &log), 0)
	w := &testWorld{}

	w.step(sm, messages.NewPlayerInput(0, config.EventMove, 0.4, 0))

	if sm.Current() != config.StartWalk {
		t.Fatalf("state = %v, want StartWalk", sm.Current())
	}
	if sm.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", sm.Frames())
	}
	want := []string{"idle.exit", "startwalk.enter", "startwalk.update"}
	if len(log) != len(want) {
		t.Fatalf("hooks = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("hooks = %v, want %v", log, want)
		}
	}
	if r := sm.LastRule(); r.Kind != RuleDirect || r.Target != config.StartWalk {
		t.Fatalf("last rule = %+v, want direct to StartWalk", r)
	}
}

func TestDashDefaults(t *testing.T) {
	cases := []struct {
		name  string
		final float64
		want  config.StateID
	}{
		{"forward_held", 0.9, config.Run},
		{"neutral", 0, config.Idle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var log hookLog
			sm := New(testTable(t, &log), 0)
			if err := sm.SetInitialState(config.Dash); err != nil {
				t.Fatal(err)
			}
			w := &testWorld{}

			for i := 0; i < dashLength; i++ {
				w.step(sm, messages.NewPlayerInput(i, config.EventNone, 0.3, 0))
				if sm.Current() != config.Dash {
					t.Fatalf("tick %d: state = %v, want Dash", i+1, sm.Current())
				}
			}
			if sm.Frames() != dashLength {
				t.Fatalf("frames = %d, want %d", sm.Frames(), dashLength)
			}

			w.step(sm, messages.NewPlayerInput(dashLength, config.EventNone, c.final, 0))
			if sm.Current() != c.want {
				t.Fatalf("state = %v, want %v", sm.Current(), c.want)
			}
			if sm.LastRule().Kind != RuleDefault {
				t.Fatalf("rule = %v, want default", sm.LastRule().Kind)
			}
		})
	}
}

func TestResolutionPriority(t *testing.T) {
	var log hookLog
	table := testTable(t, &log)

	t.Run("conditional_before_direct", func(t *testing.T) {
		sm := New(table, 0)
		_ = sm.SetInitialState(config.Dash)
		w := &testWorld{}
		w.step(sm, messages.NewPlayerInput(0, config.EventJump, -0.9, 0))
		if sm.Current() != config.DashTurn || sm.LastRule().Kind != RuleConditional {
			t.Fatalf("state = %v rule = %v, want DashTurn by conditional", sm.Current(), sm.LastRule().Kind)
		}
	})

	t.Run("direct_before_default", func(t *testing.T) {
		sm := New(table, 0)
		_ = sm.SetInitialState(config.Dash)
		w := &testWorld{}
		for i := 0; i < dashLength; i++ {
			w.step(sm, messages.NewPlayerInput(i, config.EventNone, 0.3, 0))
		}
		w.step(sm, messages.NewPlayerInput(dashLength, config.EventJump, 0.9, 0))
		if sm.Current() != config.JumpSquat || sm.LastRule().Kind != RuleDirect {
			t.Fatalf("state = %v rule = %v, want JumpSquat by direct", sm.Current(), sm.LastRule().Kind)
		}
	})

	t.Run("direct_ignores_frames", func(t *testing.T) {
		sm := New(table, 0)
		_ = sm.SetInitialState(config.Dash)
		w := &testWorld{}
		w.step(sm, messages.NewPlayerInput(0, config.EventJump, 0.3, 0))
		if sm.Current() != config.JumpSquat {
			t.Fatalf("state = %v, want JumpSquat", sm.Current())
		}
	})

	t.Run("unmapped_event_stays", func(t *testing.T) {
		sm := New(table, 0)
		w := &testWorld{}
		w.step(sm, messages.NewPlayerInput(0, config.EventAttack, 0, 0))
		if sm.Current() != config.Idle || sm.Frames() != 1 {
			t.Fatalf("state = %v frames = %d, want Idle 1", sm.Current(), sm.Frames())
		}
	})
}

func TestDefaultsWithoutMatchStay(t *testing.T) {
	table, err := NewBuilder().
		State(State{ID: config.Land, FrameLength: 2}).
		State(State{ID: config.Idle}).
		Map(ActionStateMap{
			State:    config.Land,
			Defaults: []Condition{When("never", config.Idle, func(World, int) bool { return false })},
		}).
		Initial(config.Land).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	sm := New(table, 0)
	w := &testWorld{}
	for i := 0; i < 5; i++ {
		w.step(sm, messages.PlayerInput{Frame: i})
	}
	if sm.Current() != config.Land || sm.Frames() != 5 {
		t.Fatalf("state = %v frames = %d, want Land 5", sm.Current(), sm.Frames())
	}
}

func TestForceState(t *testing.T) {
	var log hookLog
	sm := New(testTable(t, &log), 0)
	w := &testWorld{}
	if !sm.ForceState(w, config.StartWalk, messages.PlayerInput{}) {
		t.Fatalf("ForceState refused a defined state")
	}
	if sm.Current() != config.StartWalk || sm.LastRule().Kind != RuleForced || sm.Frames() != 1 {
		t.Fatalf("state = %v rule = %v frames = %d", sm.Current(), sm.LastRule().Kind, sm.Frames())
	}
	if sm.ForceState(w, config.Tumble, messages.PlayerInput{}) {
		t.Fatalf("ForceState accepted an undefined state")
	}
	if sm.Transitions() != 1 {
		t.Fatalf("transitions = %d, want 1", sm.Transitions())
	}
}

func TestBuildFaults(t *testing.T) {
	cases := []struct {
		name string
		b    *Builder
		want error
	}{
		{
			"duplicate_state",
			NewBuilder().State(State{ID: config.Idle}).State(State{ID: config.Idle}).Initial(config.Idle),
			ErrDuplicateState,
		},
		{
			"defaults_without_frame_length",
			NewBuilder().State(State{ID: config.Idle}).
				Map(ActionStateMap{State: config.Idle, Defaults: []Condition{Always(config.Idle)}}).
				Initial(config.Idle),
			ErrDefaultsWithoutFrameLength,
		},
		{
			"unknown_direct_target",
			NewBuilder().State(State{ID: config.Idle}).
				Map(ActionStateMap{State: config.Idle, Direct: map[config.GameEvent]config.StateID{config.EventJump: config.JumpSquat}}).
				Initial(config.Idle),
			ErrUnknownTarget,
		},
		{
			"unknown_conditional_target",
			NewBuilder().State(State{ID: config.Idle}).
				Map(ActionStateMap{State: config.Idle, Conditionals: []Condition{Always(config.Run)}}).
				Initial(config.Idle),
			ErrUnknownTarget,
		},
		{
			"rules_for_undefined_state",
			NewBuilder().State(State{ID: config.Idle}).Map(ActionStateMap{State: config.Run}).Initial(config.Idle),
			ErrUnknownState,
		},
		{
			"duplicate_map",
			NewBuilder().State(State{ID: config.Idle}).
				Map(ActionStateMap{State: config.Idle}).Map(ActionStateMap{State: config.Idle}).
				Initial(config.Idle),
			ErrDuplicateMap,
		},
		{
			"no_initial_state",
			NewBuilder().State(State{ID: config.Idle}),
			ErrNoInitialState,
		},
		{
			"invalid_id",
			NewBuilder().State(State{ID: config.StateNone}).Initial(config.Idle),
			ErrUnknownState,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table, err := c.b.Build()
			if !errors.Is(err, c.want) {
				t.Fatalf("Build() error = %v, want %v", err, c.want)
			}
			if table != nil {
				t.Fatalf("Build() returned a table alongside an error")
			}
		})
	}
}
