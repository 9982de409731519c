package replay

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/pool"
	"github.com/automoto/platfight/shared/messages"
)

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func sampleLog() *FrameLog {
	l := NewFrameLog("battlefield", 60, 4)
	start := time.Unix(100, 0)
	for f := 0; f < 3; f++ {
		in := []messages.PlayerInput{messages.NewPlayerInput(f, config.EventMove, float64(f)/10, 0)}
		l.Append(f, start.Add(time.Duration(f)*time.Second/60), in, []pool.Stats{{Name: "results", Len: f}}, nil)
	}
	return l
}

func TestFrameLogAppend(t *testing.T) {
	l := sampleLog()
	if l.Len() != 3 || l.First() != 0 {
		t.Fatalf("len %d first %d, want 3 frames from 0", l.Len(), l.First())
	}
	if l.Append(5, time.Now(), nil, nil, nil) {
		t.Fatalf("Append accepted a gap")
	}
	in, ok := l.Inputs(2)
	if !ok || len(in) != 1 || in[0].LX != 0.2 {
		t.Fatalf("Inputs(2) = %+v, %v", in, ok)
	}
	if _, ok := l.Inputs(3); ok {
		t.Fatalf("Inputs past the end reported a record")
	}
	if l.Records[2].Elapsed != 2*time.Second/60 {
		t.Fatalf("elapsed = %v", l.Records[2].Elapsed)
	}
}

func TestAppendCopiesInputs(t *testing.T) {
	l := NewFrameLog("s", 60, 1)
	buf := []messages.PlayerInput{{Event: config.EventJump}}
	l.Append(0, time.Now(), buf, nil, nil)
	buf[0].Event = config.EventAttack
	if in, _ := l.Inputs(0); in[0].Event != config.EventJump {
		t.Fatalf("log aliases the caller's buffer")
	}
}

func TestSourcePlaysBack(t *testing.T) {
	src := NewSource(sampleLog())
	var buf []messages.PlayerInput
	for f := 0; f < 3; f++ {
		var ok bool
		buf, ok = src.Inputs(f, buf[:0])
		if !ok || len(buf) != 1 || buf[0].Frame != f {
			t.Fatalf("frame %d: %+v, %v", f, buf, ok)
		}
	}
	if _, ok := src.Inputs(3, buf[:0]); ok {
		t.Fatalf("source did not end with the log")
	}
}

func TestStore(t *testing.T) {
	items := memItems{}
	s := NewStore(items)
	if err := s.Save("match1", sampleLog()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := items["replay_match1"]; !ok {
		t.Fatalf("saved under keys %v", items)
	}

	got, err := s.Load("match1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Stage != "battlefield" || got.Len() != 3 || got.Records[1].Inputs[0].Event != config.EventMove {
		t.Fatalf("loaded %+v", got)
	}

	if _, err := s.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(missing) err = %v, want ErrNotFound", err)
	}
}

func TestStoreWithoutStorage(t *testing.T) {
	var s Store
	if err := s.Save("x", sampleLog()); err != nil {
		t.Fatalf("Save on empty store: %v", err)
	}
	if _, err := s.Load("x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store err = %v, want ErrNotFound", err)
	}
}
