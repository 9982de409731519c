package main

import (
	"errors"
	"testing"

	"github.com/automoto/platfight/controls"
	"github.com/automoto/platfight/replay"
	"github.com/automoto/platfight/shared/messages"
)

func TestInputSourceScripts(t *testing.T) {
	src, n, err := inputSource(nil, "", "testdata/walk.script, testdata/guard.script", 2, 0)
	if err != nil {
		t.Fatalf("inputSource: %v", err)
	}
	if n != 2 {
		t.Fatalf("players = %d, want 2", n)
	}
	if _, ok := src.(controls.ScriptSource); !ok {
		t.Fatalf("source is %T, want controls.ScriptSource", src)
	}
	in, ok := src.Inputs(0, nil)
	if !ok || len(in) != 2 {
		t.Fatalf("frame 0 inputs = %v, %v", in, ok)
	}
}

func TestInputSourceMissingReplay(t *testing.T) {
	_, _, err := inputSource(replay.NewStore(nil), "nope", "", 2, 0)
	if !errors.Is(err, replay.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestIdleSourceStopsAtLimit(t *testing.T) {
	src, n, err := inputSource(nil, "", "", 3, 5)
	if err != nil || n != 3 {
		t.Fatalf("inputSource = %d, %v", n, err)
	}
	var dst []messages.PlayerInput
	if _, ok := src.Inputs(4, dst); !ok {
		t.Fatalf("frame 4 ended early")
	}
	if _, ok := src.Inputs(5, dst); ok {
		t.Fatalf("frame 5 should end the source")
	}
}

func TestLoadStageDefault(t *testing.T) {
	s, err := loadStage("")
	if err != nil {
		t.Fatalf("loadStage: %v", err)
	}
	if s.Name != "battlefield" {
		t.Fatalf("stage = %q", s.Name)
	}
}

func TestLoadStageTMX(t *testing.T) {
	s, err := loadStage("../../stage/testdata/arena.tmx")
	if err != nil {
		t.Fatalf("loadStage: %v", err)
	}
	if len(s.Pieces) == 0 {
		t.Fatalf("stage %q has no pieces", s.Name)
	}
}
