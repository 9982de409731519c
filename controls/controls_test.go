package controls

import (
	"errors"
	"strings"
	"testing"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
)

func TestTranslatePriority(t *testing.T) {
	cases := []struct {
		name string
		prev RawState
		raw  RawState
		want config.GameEvent
	}{
		{"nothing", RawState{}, RawState{}, config.EventIdle},
		{"jump_beats_attack", RawState{}, RawState{Jump: true, Attack: true}, config.EventJump},
		{"jump_held", RawState{Jump: true}, RawState{Jump: true}, config.EventIdle},
		{"guard_press", RawState{}, RawState{Guard: true, Attack: true}, config.EventAirDodge},
		{"guard_held", RawState{Guard: true}, RawState{Guard: true}, config.EventGuard},
		{"up_attack", RawState{}, RawState{Attack: true, LY: -0.9}, config.EventUpAttack},
		{"down_attack", RawState{}, RawState{Attack: true, LY: 0.9}, config.EventDownAttack},
		{"side_attack", RawState{}, RawState{Attack: true, LX: -0.7}, config.EventSideAttack},
		{"c_stick_overrides", RawState{}, RawState{Attack: true, LX: 0.9, RY: -1}, config.EventUpAttack},
		{"neutral_attack", RawState{}, RawState{Attack: true, LX: 0.3}, config.EventAttack},
		{"attack_held_walks", RawState{Attack: true}, RawState{Attack: true, LX: 0.5}, config.EventMove},
		{"down", RawState{}, RawState{LY: 0.7, LX: 0.9}, config.EventDown},
		{"flick", RawState{LX: 0.3}, RawState{LX: 0.9}, config.EventMoveFast},
		{"held_past_dash", RawState{LX: 0.9}, RawState{LX: 0.95}, config.EventMove},
		{"walk", RawState{}, RawState{LX: -0.5}, config.EventMove},
		{"inside_deadzone", RawState{}, RawState{LX: 0.1}, config.EventIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := NewTranslator(1)
			tr.Translate(0, 0, c.prev)
			if got := tr.Translate(0, 1, c.raw).Event; got != c.want {
				t.Fatalf("event = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTranslateAxes(t *testing.T) {
	tr := NewTranslator(0)
	in := tr.Translate(2, 7, RawState{LX: 0.1, LY: -0.5, RX: 0.2, Jump: true})
	if in.LX != 0 || in.RX != 0 || in.LY != -0.5 || !in.Jump || in.Frame != 7 {
		t.Fatalf("input = %+v", in)
	}

	// Each player keeps its own previous state.
	tr.Translate(0, 8, RawState{Jump: true})
	if got := tr.Translate(1, 8, RawState{Jump: true}).Event; got != config.EventJump {
		t.Fatalf("player 1 event = %v, want jump", got)
	}
	tr.Reset()
	if got := tr.Translate(0, 9, RawState{Jump: true}).Event; got != config.EventJump {
		t.Fatalf("after reset event = %v, want jump", got)
	}
}

const walkAndJump = `
# walk right, then jump
10 move 0.6 0
2  none 0.6 0
4  jump 0   0
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript(strings.NewReader(walkAndJump))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Len() != 16 {
		t.Fatalf("len = %d, want 16", s.Len())
	}
	first, _ := s.At(0)
	held, _ := s.At(9)
	jump, _ := s.At(12)
	jumpHeld, _ := s.At(15)
	if first.Event != config.EventMove || first.LX != 0.6 {
		t.Fatalf("frame 0 = %+v", first)
	}
	if held.Event != config.EventNone || held.LX != 0.6 || held.Frame != 9 {
		t.Fatalf("frame 9 = %+v", held)
	}
	if jump.Event != config.EventJump || !jump.Jump || jumpHeld.Event != config.EventNone || !jumpHeld.Jump {
		t.Fatalf("jump frames = %+v %+v", jump, jumpHeld)
	}
	if _, ok := s.At(16); ok {
		t.Fatalf("At past the end found a frame")
	}
}

func TestParseScriptErrors(t *testing.T) {
	cases := map[string]string{
		"fields":      "10 move 0.5",
		"frames":      "0 move 0 0",
		"event":       "5 teleport 0 0",
		"axis":        "5 move left 0",
		"second_line": "5 move 0 0\n5 move 0 x",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseScript(strings.NewReader(text)); !errors.Is(err, ErrBadScript) {
				t.Fatalf("err = %v, want ErrBadScript", err)
			}
		})
	}
}

func TestScriptSource(t *testing.T) {
	long, _ := ParseScript(strings.NewReader("3 move 1 0"))
	short, _ := ParseScript(strings.NewReader("1 jump 0 0"))
	src := ScriptSource{Scripts: []*Script{long, short}}

	in, ok := src.Inputs(2, nil)
	if !ok || len(in) != 2 || in[0].LX != 1 || in[1] != (messages.PlayerInput{Frame: 2}) {
		t.Fatalf("frame 2 = %+v, %v", in, ok)
	}
	if _, ok := src.Inputs(3, nil); ok {
		t.Fatalf("source did not end with its longest script")
	}
}
