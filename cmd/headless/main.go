// Command headless runs a match without a window. Inputs come from scripts
// or a saved replay. The match is served over HTTP while it runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/controls"
	"github.com/automoto/platfight/core"
	"github.com/automoto/platfight/replay"
	"github.com/automoto/platfight/server"
	"github.com/automoto/platfight/shared/messages"
	"github.com/automoto/platfight/stage"
)

const storageApp = "platfight"

func main() {
	stagePath := flag.String("stage", "", "TMX stage file (default: built-in battlefield)")
	tuningPath := flag.String("tuning", "", "YAML tuning file overlaid on the defaults")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	scripts := flag.String("script", "", "Comma-separated input scripts, one per player")
	replayName := flag.String("replay", "", "Play back a saved replay instead of scripts")
	record := flag.String("record", "", "Save the match as a replay with this name")
	players := flag.Int("players", 2, "Idle players to add when no script or replay is given")
	fast := flag.Bool("fast", false, "Tick as fast as possible instead of in real time")
	frames := flag.Int("frames", 3600, "Frame limit for -fast and idle runs")
	addr := flag.String("addr", "127.0.0.1:7380", "HTTP address for /metrics and /snapshot (empty disables)")
	flag.Parse()

	if *tuningPath != "" {
		t, err := config.Load(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	s, err := loadStage(*stagePath)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	world, err := core.NewWorld(s)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	if *record != "" {
		world.EnableFrameLog()
	}

	store, err := replay.OpenStore(storageApp)
	if err != nil && (*replayName != "" || *record != "") {
		log.Fatalf("Failed to open replay storage: %v", err)
	}

	source, count, err := inputSource(store, *replayName, *scripts, *players, *frames)
	if err != nil {
		log.Fatalf("Failed to load inputs: %v", err)
	}
	for i := 0; i < count; i++ {
		if _, err := world.AddPlayer(fmt.Sprintf("p%d", i+1)); err != nil {
			log.Fatalf("Failed to add player %d: %v", i+1, err)
		}
	}

	loop := core.NewGameLoop(world, source, config.Sim.TickRate)
	if *watch && *tuningPath != "" {
		watcher, err := config.NewWatcher(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer watcher.Close()
		go func() {
			for err := range watcher.Errors {
				log.Printf("Tuning reload rejected: %v", err)
			}
		}()
		loop.WithReload(watcher.Updates)
	}

	if *addr != "" {
		srv := server.NewServer(world, false)
		if _, err := srv.Start(*addr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
		defer srv.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting match on %q with %d players (tick rate: %d/s)", s.Name, count, config.Sim.TickRate)
	if *fast {
		n := loop.Drain(*frames)
		log.Printf("Ran %d frames", n)
	} else if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Game loop error: %v", err)
	}

	if *record != "" {
		if err := store.Save(*record, world.FrameLog()); err != nil {
			log.Printf("Failed to save replay: %v", err)
		}
	}
	printSummary(world.Snapshot())
}

func loadStage(path string) (*stage.Stage, error) {
	if path == "" {
		return stage.Battlefield(), nil
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return stage.LoadTMX(os.DirFS(dir), file)
}

// inputSource picks the match inputs and the number of players they drive.
func inputSource(store *replay.Store, replayName, scripts string, players, frames int) (core.InputSource, int, error) {
	switch {
	case replayName != "":
		l, err := store.Load(replayName)
		if err != nil {
			return nil, 0, err
		}
		if l.Len() == 0 {
			return nil, 0, fmt.Errorf("replay %q is empty", replayName)
		}
		return replay.NewSource(l), len(l.Records[0].Inputs), nil

	case scripts != "":
		var src controls.ScriptSource
		for _, path := range strings.Split(scripts, ",") {
			f, err := os.Open(strings.TrimSpace(path))
			if err != nil {
				return nil, 0, err
			}
			sc, err := controls.ParseScript(f)
			f.Close()
			if err != nil {
				return nil, 0, fmt.Errorf("%s: %w", path, err)
			}
			src.Scripts = append(src.Scripts, sc)
		}
		return src, len(src.Scripts), nil

	default:
		return idleSource{frames: frames}, players, nil
	}
}

// idleSource feeds empty inputs until the frame limit.
type idleSource struct {
	frames int
}

func (s idleSource) Inputs(frame int, dst []messages.PlayerInput) ([]messages.PlayerInput, bool) {
	return dst, frame < s.frames
}

func printSummary(snap *core.Snapshot) {
	log.Printf("Match ended at frame %d", snap.Frame)
	for _, p := range snap.Players {
		log.Printf("  %s: %s at (%.1f, %.1f), damage %.0f, KOs %d",
			p.Name, p.StateName, p.Pos.X, p.Pos.Y, p.Damage, p.KOs)
	}
}
