package controls

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/automoto/platfight/config"
	"github.com/automoto/platfight/shared/messages"
)

var ErrBadScript = errors.New("controls: bad script")

// Script is a scripted input sequence for one player. Each line of its text
// form holds a segment:
//
//	frames event lx ly
//
// The event fires on the first frame of the segment and the stick is held
// for all of them. A jump segment also holds the jump button. Blank lines
// and lines starting with # are ignored.
type Script struct {
	frames []messages.PlayerInput
}

// ParseScript reads a script from r.
func ParseScript(r io.Reader) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.parseSegment(text); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadScript, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("controls: read script: %w", err)
	}
	return s, nil
}

func (s *Script) parseSegment(text string) error {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return fmt.Errorf("want 4 fields, got %d", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("frame count %q must be a positive integer", fields[0])
	}
	event, ok := config.ParseEvent(fields[1])
	if !ok {
		return fmt.Errorf("unknown event %q", fields[1])
	}
	lx, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("lx: %w", err)
	}
	ly, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return fmt.Errorf("ly: %w", err)
	}

	for i := 0; i < n; i++ {
		in := messages.PlayerInput{
			Frame: len(s.frames),
			LX:    lx,
			LY:    ly,
			Jump:  event == config.EventJump,
		}
		if i == 0 {
			in.Event = event
		}
		s.frames = append(s.frames, in)
	}
	return nil
}

func (s *Script) Len() int { return len(s.frames) }

// At returns the scripted input for frame.
func (s *Script) At(frame int) (messages.PlayerInput, bool) {
	if frame < 0 || frame >= len(s.frames) {
		return messages.PlayerInput{}, false
	}
	return s.frames[frame], true
}

// ScriptSource plays one script per player slot. A player whose script has
// ended idles; the source ends once every script has.
type ScriptSource struct {
	Scripts []*Script
}

func (src ScriptSource) Inputs(frame int, dst []messages.PlayerInput) ([]messages.PlayerInput, bool) {
	active := false
	for _, s := range src.Scripts {
		in, ok := s.At(frame)
		active = active || ok
		in.Frame = frame
		dst = append(dst, in)
	}
	return dst, active
}
