package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStateNames(t *testing.T) {
	for s := StateID(0); s < StateCount; s++ {
		name := s.String()
		if name == "" || name == "None" {
			t.Fatalf("state %d has no name", s)
		}
		got, ok := ParseState(name)
		if !ok || got != s {
			t.Fatalf("ParseState(%q) = %v, %v, want %v", name, got, ok, s)
		}
	}
	if StateNone.String() != "None" || StateNone.Valid() {
		t.Fatalf("StateNone should be invalid and named None")
	}
}

func TestEventNames(t *testing.T) {
	for e := GameEvent(0); e < EventCount; e++ {
		got, ok := ParseEvent(e.String())
		if !ok || got != e {
			t.Fatalf("ParseEvent(%q) = %v, %v, want %v", e.String(), got, ok, e)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	tuning, err := Load(filepath.Join("testdata", "tuning.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tuning.Physics.CollisionEpsilon != 0.25 {
		t.Fatalf("collision_epsilon = %v, want 0.25", tuning.Physics.CollisionEpsilon)
	}
	if tuning.Player.WalkMax != 3.5 || tuning.Player.MaxJumps != 3 {
		t.Fatalf("player overrides not applied: %+v", tuning.Player)
	}
	if tuning.Sim.TickRate != 120 {
		t.Fatalf("tick_rate = %d, want 120", tuning.Sim.TickRate)
	}
	// Untouched fields keep their defaults.
	if tuning.Player.Gravity != Player.Gravity || tuning.Frames != Frames {
		t.Fatalf("untouched fields changed")
	}
	// Load does not apply.
	if Sim.TickRate == 120 {
		t.Fatalf("Load applied the tuning")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_tick_rate.yaml"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load() error = %v, want ErrInvalid", err)
	}

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("Load(missing) error = %v, want a read error", err)
	}
}

func TestApplyRoundTrip(t *testing.T) {
	saved := Current()
	t.Cleanup(saved.Apply)

	tuning := Current()
	tuning.Sim.PoolCapacity = 7
	tuning.Apply()
	if Sim.PoolCapacity != 7 {
		t.Fatalf("PoolCapacity = %d, want 7", Sim.PoolCapacity)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("sim:\n  tick_rate: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("sim:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case tuning := <-w.Updates:
			if tuning.Sim.TickRate == 30 {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("no reload with tick_rate 30 observed")
		}
	}
}
