package core

import (
	"context"
	"log"
	"time"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
)

// InputSource supplies the inputs for a frame, appended to dst in slot
// order. It reports false when it has nothing more to play.
type InputSource interface {
	Inputs(frame int, dst []messages.PlayerInput) ([]messages.PlayerInput, bool)
}

// HitSource is implemented by sources that also supply the hits landing
// before a frame, such as a replay.
type HitSource interface {
	Hits(frame int, dst []messages.Hit) []messages.Hit
}

// GameLoop ticks a World at a fixed rate.
type GameLoop struct {
	world    *World
	source   InputSource
	tickRate int
	reload   <-chan config.Tuning

	// OnTick, if set, is called after every tick on the loop goroutine.
	OnTick func(*Snapshot)

	inputs []messages.PlayerInput
	hits   []messages.Hit
}

func NewGameLoop(world *World, source InputSource, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = config.Sim.TickRate
	}
	return &GameLoop{
		world:    world,
		source:   source,
		tickRate: tickRate,
	}
}

// WithReload makes the loop apply tunings received on ch between ticks.
func (g *GameLoop) WithReload(ch <-chan config.Tuning) *GameLoop {
	g.reload = ch
	return g
}

// Run ticks until ctx is done or the source runs out. It returns ctx.Err()
// when cancelled and nil when the source ended.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[core] Game loop started at %d ticks/second", g.tickRate)
	defer func() {
		log.Printf("[core] Game loop stopped at frame %d", g.world.Frame())
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-g.reload:
			if g.retune(t) {
				ticker.Reset(time.Second / time.Duration(g.tickRate))
			}
		case <-ticker.C:
			if !g.Step() {
				return nil
			}
		}
	}
}

// Step runs one tick with the source's inputs, applying the source's hits
// first when it has any. It reports false without ticking once the source
// has ended.
func (g *GameLoop) Step() bool {
	frame := g.world.Frame()
	var ok bool
	g.inputs, ok = g.source.Inputs(frame, g.inputs[:0])
	if !ok {
		return false
	}
	if hs, isHits := g.source.(HitSource); isHits {
		g.hits = hs.Hits(frame, g.hits[:0])
		for _, h := range g.hits {
			if err := g.world.ApplyHit(h); err != nil {
				log.Printf("[core] Dropped hit at frame %d: %v", frame, err)
			}
		}
	}
	snap := g.world.Tick(g.inputs)
	if g.OnTick != nil {
		g.OnTick(snap)
	}
	return true
}

// Drain ticks as fast as possible until the source ends or limit ticks
// have run. A limit of zero or less means no limit. It returns the number
// of ticks run.
func (g *GameLoop) Drain(limit int) int {
	n := 0
	for limit <= 0 || n < limit {
		if !g.Step() {
			break
		}
		n++
	}
	return n
}

// retune installs t and reports whether the tick rate changed.
func (g *GameLoop) retune(t config.Tuning) bool {
	t.Apply()
	g.world.Retune()
	log.Printf("[core] Applied tuning at frame %d", g.world.Frame())
	if t.Sim.TickRate > 0 && t.Sim.TickRate != g.tickRate {
		g.tickRate = t.Sim.TickRate
		return true
	}
	return false
}
