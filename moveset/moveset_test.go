package moveset

import (
	"math"
	"testing"

	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
	"github.com/yohamta/donburi"
)

type testWorld struct {
	world     donburi.World
	player    *donburi.Entry
	stage     *stage.Stage
	frame     int
	cur, prev messages.PlayerInput
}

func (w *testWorld) Frame() int { return w.frame }

func (w *testWorld) Player(int) (*donburi.Entry, bool) { return w.player, w.player != nil }

func (w *testWorld) Input(int) (messages.PlayerInput, messages.PlayerInput) { return w.cur, w.prev }

func (w *testWorld) Stage() *stage.Stage { return w.stage }

func (w *testWorld) step(sm *fsm.StateMachine, in messages.PlayerInput) {
	in.Frame = w.frame
	w.prev = w.cur
	w.cur = in
	sm.Update(w, in)
	w.frame++
}

func (w *testWorld) physics() *components.PhysicsData {
	return components.Physics.Get(w.player)
}

func newFighter(t *testing.T, pos geom.Vec2, facing float64, grounded bool) (*testWorld, *fsm.StateMachine) {
	t.Helper()
	table, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	world := donburi.NewWorld()
	e := world.Entry(world.Create(components.Physics, components.ECB))
	p := components.NewPhysics(pos, facing, config.Player)
	p.Grounded = grounded
	components.Physics.SetValue(e, p)
	components.ECB.SetValue(e, components.NewECB(pos, config.Player.Width, config.Player.Height))

	w := &testWorld{world: world, player: e, stage: stage.Battlefield()}
	return w, fsm.New(table, 0)
}

func move(lx float64) messages.PlayerInput {
	ev := config.EventMove
	if lx == 0 {
		ev = config.EventNone
	}
	return messages.PlayerInput{Event: ev, LX: lx}
}

func TestDefaultTableBuilds(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for s := config.StateID(0); s < config.StateCount; s++ {
		if _, ok := table.State(s); !ok {
			t.Fatalf("state %v missing from the default table", s)
		}
	}
}

func TestTurnFiresOnce(t *testing.T) {
	w, sm := newFighter(t, geom.V(600, 600), config.DirectionRight, true)

	turns := 0
	sm.OnTransition = func(_, to config.StateID, _ fsm.Rule) {
		if to == config.Turn {
			turns++
		}
	}

	w.step(sm, move(0))
	w.step(sm, move(-0.6))
	if sm.Current() != config.Turn {
		t.Fatalf("state = %v, want Turn", sm.Current())
	}
	if w.physics().Facing != config.DirectionLeft {
		t.Fatalf("facing = %v, want left", w.physics().Facing)
	}

	for i := 0; i < 30; i++ {
		w.step(sm, move(-0.6))
	}
	if turns != 1 {
		t.Fatalf("turned %d times, want 1", turns)
	}
	if sm.Current() != config.Walk {
		t.Fatalf("state = %v, want Walk after the turn", sm.Current())
	}
}

func TestLandDefaults(t *testing.T) {
	cases := []struct {
		name string
		lx   float64
		want config.StateID
	}{
		{"forward", 0.8, config.Walk},
		{"back", -0.8, config.Turn},
		{"neutral", 0, config.Idle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, sm := newFighter(t, geom.V(600, 600), config.DirectionRight, true)
			if err := sm.SetInitialState(config.Land); err != nil {
				t.Fatal(err)
			}
			for i := 0; i < config.Frames.Land; i++ {
				w.step(sm, messages.PlayerInput{})
			}
			if sm.Current() != config.Land {
				t.Fatalf("left Land early: %v", sm.Current())
			}
			w.step(sm, messages.PlayerInput{LX: c.lx})
			if sm.Current() != c.want {
				t.Fatalf("state = %v, want %v", sm.Current(), c.want)
			}
		})
	}
}

func TestJumpHeights(t *testing.T) {
	cases := []struct {
		name string
		held bool
		want float64
	}{
		{"full_hop", true, -config.Player.JumpVelocity},
		{"short_hop", false, -config.Player.ShortHopVelocity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, sm := newFighter(t, geom.V(600, 600), config.DirectionRight, true)
			w.step(sm, messages.PlayerInput{Event: config.EventJump, Jump: true})
			if sm.Current() != config.JumpSquat {
				t.Fatalf("state = %v, want JumpSquat", sm.Current())
			}
			for i := 1; i < config.Frames.JumpSquat; i++ {
				w.step(sm, messages.PlayerInput{Jump: c.held})
			}
			w.step(sm, messages.PlayerInput{Jump: c.held})

			p := w.physics()
			if sm.Current() != config.Jump {
				t.Fatalf("state = %v, want Jump", sm.Current())
			}
			if p.Vel.Y != c.want || p.Grounded || p.JumpCount != 1 {
				t.Fatalf("vel.y = %v grounded = %v jumps = %d, want %v false 1", p.Vel.Y, p.Grounded, p.JumpCount, c.want)
			}
		})
	}
}

func TestBackwardTiltFacesWalk(t *testing.T) {
	w, sm := newFighter(t, geom.V(600, 600), config.DirectionRight, true)

	// Left of the deadzone but short of a turn.
	w.step(sm, move(-0.3))
	if sm.Current() != config.StartWalk {
		t.Fatalf("state = %v, want StartWalk", sm.Current())
	}
	p := w.physics()
	if p.Facing != config.DirectionLeft || p.Vel.X >= 0 {
		t.Fatalf("facing %v vel %v, want walking left while facing left", p.Facing, p.Vel.X)
	}
}

func TestWalkOffEdgeSpendsGroundJump(t *testing.T) {
	w, sm := newFighter(t, geom.V(600, 600), config.DirectionRight, true)
	w.step(sm, messages.PlayerInput{})
	p := w.physics()

	p.Grounded = false
	w.step(sm, messages.PlayerInput{})
	if sm.Current() != config.NeutralFall || p.JumpCount != 1 {
		t.Fatalf("state %v jumps %d, want NeutralFall with the ground jump spent", sm.Current(), p.JumpCount)
	}

	w.step(sm, messages.PlayerInput{Event: config.EventJump})
	if p.JumpCount != 2 || p.Vel.Y != -config.Player.DoubleJumpVelocity {
		t.Fatalf("double jump not applied: jumps %d vel %v", p.JumpCount, p.Vel.Y)
	}
	w.step(sm, messages.PlayerInput{})
	w.step(sm, messages.PlayerInput{Event: config.EventJump})
	if p.JumpCount != 2 {
		t.Fatalf("jumped past the limit: %d", p.JumpCount)
	}
}

func TestDoubleJumpLimit(t *testing.T) {
	w, sm := newFighter(t, geom.V(600, 400), config.DirectionRight, false)
	_ = sm.SetInitialState(config.Jump)
	p := w.physics()
	p.JumpCount = 1
	p.Vel.Y = -3

	w.step(sm, messages.PlayerInput{Event: config.EventJump})
	if p.JumpCount != 2 || p.Vel.Y != -config.Player.DoubleJumpVelocity {
		t.Fatalf("double jump not applied: jumps %d vel %v", p.JumpCount, p.Vel.Y)
	}

	w.step(sm, messages.PlayerInput{})
	w.step(sm, messages.PlayerInput{Event: config.EventJump})
	if p.JumpCount != 2 {
		t.Fatalf("jumped past the limit: %d", p.JumpCount)
	}
}

func TestLedgeGrabAndDrop(t *testing.T) {
	// Front corner just below and left of the left ledge at (300, 600).
	pos := geom.V(283, 633)
	w, sm := newFighter(t, pos, config.DirectionRight, false)
	_ = sm.SetInitialState(config.NeutralFall)
	p := w.physics()
	p.Vel.Y = 2

	w.step(sm, messages.PlayerInput{})
	if sm.Current() != config.LedgeGrab {
		t.Fatalf("state = %v, want LedgeGrab", sm.Current())
	}
	if p.Ledge < 0 || p.Gravity || p.Vel != (geom.Vec2{}) {
		t.Fatalf("hang state = ledge %d gravity %v vel %+v", p.Ledge, p.Gravity, p.Vel)
	}
	wantX := 300 - (config.Player.Width/2 + config.Physics.CollisionEpsilon)
	if math.Abs(p.Pos.X-wantX) > 1e-9 {
		t.Fatalf("hang x = %v, want %v", p.Pos.X, wantX)
	}

	w.step(sm, messages.PlayerInput{Event: config.EventDown})
	if sm.Current() != config.NeutralFall || p.Ledge != -1 || !p.Gravity {
		t.Fatalf("drop failed: state %v ledge %d gravity %v", sm.Current(), p.Ledge, p.Gravity)
	}
	w.step(sm, messages.PlayerInput{})
	if sm.Current() == config.LedgeGrab {
		t.Fatalf("regrabbed the ledge during cooldown")
	}
}

func TestHitStopReleasesKnockback(t *testing.T) {
	cases := []struct {
		name      string
		grounded  bool
		knockback geom.Vec2
		want      config.StateID
	}{
		{"strong", false, geom.V(10, -10), config.Launch},
		{"weak_grounded", true, geom.V(2, 0), config.Idle},
		{"weak_airborne", false, geom.V(2, -1), config.NeutralFall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, sm := newFighter(t, geom.V(600, 500), config.DirectionRight, c.grounded)
			p := w.physics()
			p.HitStop = 3
			p.HitStun = 20
			p.Knockback = c.knockback

			sm.ForceState(w, config.HitStop, messages.PlayerInput{})
			for i := 0; i < 2; i++ {
				w.step(sm, messages.PlayerInput{})
				if sm.Current() != config.HitStop || p.Vel != (geom.Vec2{}) {
					t.Fatalf("tick %d: state %v vel %+v, want frozen in HitStop", i, sm.Current(), p.Vel)
				}
			}
			w.step(sm, messages.PlayerInput{})
			if sm.Current() != c.want {
				t.Fatalf("state = %v, want %v", sm.Current(), c.want)
			}
			if p.Knockback != (geom.Vec2{}) || geom.Dot(p.Vel, c.knockback) <= 0 {
				t.Fatalf("knockback not released: vel %+v", p.Vel)
			}
			if launched := c.want == config.Launch; launched != (p.HitStun > 0) {
				t.Fatalf("hitstun = %d after %v", p.HitStun, sm.Current())
			}
		})
	}
}
