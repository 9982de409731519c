package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/controls"
	"github.com/automoto/platfight/core"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 1200
	screenHeight = 800
)

var (
	stageColor  = color.RGBA{0x9a, 0xa5, 0xb1, 0xff}
	ledgeColor  = color.RGBA{0xf5, 0xc5, 0x42, 0xff}
	zoneColor   = color.RGBA{0x80, 0x30, 0x30, 0xff}
	playerColor = []color.RGBA{
		{0xe0, 0x4a, 0x4a, 0xff},
		{0x4a, 0x8c, 0xe0, 0xff},
		{0x5a, 0xc8, 0x5a, 0xff},
		{0xd0, 0x8a, 0xe0, 0xff},
	}
)

// Game is the sandbox: it feeds local controllers into a World and draws
// the latest snapshot.
type Game struct {
	world      *core.World
	translator *controls.Translator
	camera     *Camera
	watcher    *config.Watcher

	inputs    []messages.PlayerInput
	paused    bool
	showDebug bool
}

func NewGame(s *stage.Stage, players int, watcher *config.Watcher) (*Game, error) {
	world, err := core.NewWorld(s)
	if err != nil {
		return nil, err
	}
	for i := 0; i < players; i++ {
		if _, err := world.AddPlayer(fmt.Sprintf("p%d", i+1)); err != nil {
			return nil, err
		}
	}
	var start geom.Vec2
	if p, ok := world.Snapshot().Player(0); ok {
		start = p.Pos
	}
	return &Game{
		world:      world,
		translator: controls.NewTranslator(players),
		camera:     NewCamera(start),
		watcher:    watcher,
		inputs:     make([]messages.PlayerInput, players),
		showDebug:  true,
	}, nil
}

func (g *Game) Update() error {
	g.pollTuning()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	step := inpututil.IsKeyJustPressed(ebiten.KeyN)
	if g.paused && !step {
		return nil
	}

	frame := g.world.Frame()
	for i := range g.inputs {
		g.inputs[i] = messages.PlayerInput{}
		if i < len(bindings) {
			g.inputs[i] = g.translator.Translate(i, frame, pollRaw(bindings[i]))
		}
	}
	snap := g.world.Tick(g.inputs)
	g.camera.Update(snap, 1/float32(ebiten.TPS()))
	return nil
}

// pollTuning applies a reloaded tuning file between ticks.
func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case t := <-g.watcher.Updates:
		t.Apply()
		g.world.Retune()
		if t.Sim.TickRate > 0 {
			ebiten.SetTPS(t.Sim.TickRate)
		}
		log.Printf("Applied tuning at frame %d", g.world.Frame())
	case err := <-g.watcher.Errors:
		log.Printf("Tuning reload rejected: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	off := g.camera.Offset(screenWidth, screenHeight)
	s := g.world.Stage()

	z := s.BlastZone
	drawPolygon(screen, geom.Rect(z.MinX, z.MinY, z.MaxX-z.MinX, z.MaxY-z.MinY), off, zoneColor)
	for _, p := range s.Pieces {
		drawPolygon(screen, p.Polygon, off, stageColor)
	}
	for _, l := range s.Ledges {
		at := geom.Add(l.Point, off)
		vector.DrawFilledCircle(screen, float32(at.X), float32(at.Y), 3, ledgeColor, true)
	}

	snap := g.world.Snapshot()
	for _, p := range snap.Players {
		clr := playerColor[p.Index%len(playerColor)]
		drawPolygon(screen, geom.Polygon(p.Hull[:]), off, clr)
		feet := geom.Add(p.Pos, off)
		vector.StrokeLine(screen, float32(feet.X), float32(feet.Y-30),
			float32(feet.X+p.Facing*12), float32(feet.Y-30), 2, clr, true)
		label := fmt.Sprintf("%s %s  %.0f%%", p.Name, p.StateName, p.Damage)
		ebitenutil.DebugPrintAt(screen, label, int(feet.X)-30, int(feet.Y)-80)
	}

	if g.showDebug {
		g.drawDebug(screen, snap)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, snap *core.Snapshot) {
	msg := fmt.Sprintf("frame %d  tps %.0f  fps %.0f", snap.Frame, ebiten.ActualTPS(), ebiten.ActualFPS())
	if g.paused {
		msg += "  [paused: N steps]"
	}
	for _, p := range snap.Players {
		msg += fmt.Sprintf("\n%s %-14s f%-3d pos(%.1f, %.1f) vel(%.2f, %.2f) ground=%v KOs=%d",
			p.Name, p.StateName, p.StateFrames, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Grounded, p.KOs)
	}
	for _, ps := range snap.Pools {
		msg += fmt.Sprintf("\npool %s: %d/%d peak %d overflow %d", ps.Name, ps.Len, ps.Cap, ps.HighWater, ps.Overflow)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func drawPolygon(screen *ebiten.Image, poly geom.Polygon, off geom.Vec2, clr color.Color) {
	for i := range poly {
		e := poly.Edge(i)
		a, b := geom.Add(e.A, off), geom.Add(e.B, off)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, clr, true)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	stagePath := flag.String("stage", "", "TMX stage file (default: built-in battlefield)")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	players := flag.Int("players", 2, "Local players")
	flag.Parse()

	var watcher *config.Watcher
	if *tuningPath != "" {
		t, err := config.Load(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
		if watcher, err = config.NewWatcher(*tuningPath); err != nil {
			log.Printf("Warning: tuning will not reload: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	s := stage.Battlefield()
	if *stagePath != "" {
		var err error
		dir, file := filepath.Split(*stagePath)
		if dir == "" {
			dir = "."
		}
		if s, err = stage.LoadTMX(os.DirFS(dir), file); err != nil {
			log.Fatalf("Failed to load stage: %v", err)
		}
	}

	game, err := NewGame(s, *players, watcher)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("platfight sandbox")
	ebiten.SetTPS(config.Sim.TickRate)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
