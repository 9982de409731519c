// Package core runs the simulation: a World advances one fixed tick per
// call and publishes a snapshot for renderers, and a GameLoop drives it in
// real time.
package core

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/automoto/platfight/components"
	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/fsm"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/moveset"
	"github.com/automoto/platfight/replay"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
	"github.com/automoto/platfight/systems"
	"github.com/automoto/platfight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownPlayer = errors.New("core: unknown player")

// World owns one match. Tick, AddPlayer and ApplyHit must be called from
// a single goroutine; Snapshot may be called from any.
type World struct {
	ecs   *ecs.ECS
	match *components.MatchData

	frameLog *replay.FrameLog
	hits     []messages.Hit // Applied since the last tick
	snapshot atomic.Pointer[Snapshot]
}

// NewWorld creates a match on s with the default moveset.
func NewWorld(s *stage.Stage) (*World, error) {
	table, err := moveset.Default()
	if err != nil {
		return nil, fmt.Errorf("build moveset: %w", err)
	}
	return NewWorldWithTable(s, table), nil
}

// NewWorldWithTable creates a match on s whose fighters use table.
func NewWorldWithTable(s *stage.Stage, table *fsm.Table) *World {
	w := &World{ecs: ecs.NewECS(donburi.NewWorld())}
	factory.CreateMatch(w.ecs, s, table)
	w.match = components.MustFindMatch(w.ecs.World)

	// Order matters: see the package systems docs.
	w.ecs.AddSystem(systems.UpdateInput)
	w.ecs.AddSystem(systems.ApplyGravity)
	w.ecs.AddSystem(systems.UpdateStateMachines)
	w.ecs.AddSystem(systems.IntegrateVelocity)
	w.ecs.AddSystem(systems.UpdateCollisions)
	w.ecs.AddSystem(systems.UpdateBlastZone)
	w.ecs.AddSystem(systems.ResetPools)

	if config.Sim.FrameLogEnabled {
		w.frameLog = replay.NewFrameLog(s.Name, config.Sim.TickRate, config.Sim.InputHistorySize)
	}
	w.snapshot.Store(takeSnapshot(-1, w.match))

	log.Printf("[core] World created on stage %q (%d pieces, pool capacity %d)", s.Name, len(s.Pieces), config.Sim.PoolCapacity)
	return w
}

// AddPlayer spawns a fighter in the next slot and returns the slot.
func (w *World) AddPlayer(name string) (int, error) {
	e, err := factory.CreatePlayer(w.ecs, w.match, name)
	if err != nil {
		return -1, err
	}
	sm := components.FSM.Get(e).Machine
	sm.OnTransition = func(_, to config.StateID, _ fsm.Rule) {
		stateTransitions.WithLabelValues(to.String()).Inc()
	}

	index := components.Player.Get(e).Index
	playerCount.Set(float64(len(w.match.Players)))
	w.snapshot.Store(takeSnapshot(w.match.Frame-1, w.match))
	log.Printf("[core] Player %d (%s) joined at %+v", index, name, components.Physics.Get(e).Pos)
	return index, nil
}

// Tick simulates one frame. inputs are indexed by slot; missing slots get
// the zero input.
func (w *World) Tick(inputs []messages.PlayerInput) *Snapshot {
	start := time.Now()
	m := w.match

	for i := range m.Inputs {
		m.Inputs[i] = messages.PlayerInput{}
		if i < len(inputs) {
			m.Inputs[i] = inputs[i]
		}
		m.Inputs[i].Frame = m.Frame
	}

	w.ecs.Update()

	if w.frameLog != nil {
		w.frameLog.Append(m.Frame, start, m.Inputs, m.PoolStats, w.hits)
	}
	w.hits = w.hits[:0]
	snap := takeSnapshot(m.Frame, m)
	m.Frame++
	w.snapshot.Store(snap)

	observeTick(m, time.Since(start).Seconds())
	return snap
}

// Snapshot returns the state after the last completed tick.
func (w *World) Snapshot() *Snapshot {
	return w.snapshot.Load()
}

// Frame returns the next frame to be simulated.
func (w *World) Frame() int { return w.match.Frame }

func (w *World) Players() int { return len(w.match.Players) }

func (w *World) Stage() *stage.Stage { return w.match.Stage }

// FrameLog returns the log of every tick so far, or nil when frame logging
// is disabled.
func (w *World) FrameLog() *replay.FrameLog { return w.frameLog }

// EnableFrameLog starts logging ticks from the next frame on.
func (w *World) EnableFrameLog() {
	if w.frameLog == nil {
		w.frameLog = replay.NewFrameLog(w.match.Stage.Name, config.Sim.TickRate, config.Sim.InputHistorySize)
	}
}

// ApplyHit puts the target in hitstop. Damage scales the knockback, and
// the freeze and hitstun lengths follow the combat tuning. A hit on a
// fighter already in hitstop restarts the freeze with the new knockback.
// Call it between ticks; applied hits are kept in the frame log.
func (w *World) ApplyHit(hit messages.Hit) error {
	if hit.Target < 0 || hit.Target >= len(w.match.Players) {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, hit.Target)
	}
	e := w.match.Players[hit.Target]
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)

	c := config.Combat
	player.Damage += hit.Damage
	knockback := geom.Scale(hit.Knockback, 1+player.Damage/100)

	physics.Knockback = knockback
	physics.HitStop = clampTicks(hit.Damage*c.HitStopPerDamage, c.MinHitStop, c.MaxHitStop)
	physics.HitStun = int(math.Round(geom.Length(knockback) * c.HitStunPerSpeed))
	w.hits = append(w.hits, hit)

	// Re-entering would run the exit hook and release the new knockback
	// early.
	sm := components.FSM.Get(e).Machine
	if sm.Current() == config.HitStop {
		return nil
	}
	view := systems.NewMatchView(w.match)
	in := components.Input.Get(e).Current(w.match.Frame - 1)
	sm.ForceState(view, config.HitStop, in)
	return nil
}

func clampTicks(v float64, lo, hi int) int {
	n := int(math.Round(v))
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Retune copies the current speed profile into every fighter. Frame data
// is baked into the state table and only changes for new worlds.
func (w *World) Retune() {
	for _, e := range w.match.Players {
		components.Physics.Get(e).Speeds = config.Player
		box := components.ECB.Get(e)
		box.Width, box.Height = config.Player.Width, config.Player.Height
	}
}
