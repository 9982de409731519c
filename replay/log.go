// Package replay records the inputs of a match frame by frame so it can be
// saved, loaded and fed back into a world.
package replay

import (
	"time"

	"github.com/automoto/platfight/pool"
	"github.com/automoto/platfight/shared/messages"
)

// FrameRecord is everything logged for one tick.
type FrameRecord struct {
	Frame   int                    `json:"frame"`
	Elapsed time.Duration          `json:"elapsed"` // Since the first record
	Inputs  []messages.PlayerInput `json:"inputs"`
	Pools   []pool.Stats           `json:"pools,omitempty"`
	Hits    []messages.Hit         `json:"hits,omitempty"` // Applied before the tick
}

// FrameLog is an append-only log of consecutive frames.
type FrameLog struct {
	Stage    string        `json:"stage"`
	TickRate int           `json:"tick_rate"`
	Records  []FrameRecord `json:"records"`

	start time.Time
}

// NewFrameLog returns an empty log with room for capacity frames.
func NewFrameLog(stage string, tickRate, capacity int) *FrameLog {
	return &FrameLog{
		Stage:    stage,
		TickRate: tickRate,
		Records:  make([]FrameRecord, 0, capacity),
	}
}

// Append copies the inputs, pool stats and hits of a finished tick into
// the log. Frames must be appended in order; an out of order frame is
// dropped and Append reports false.
func (l *FrameLog) Append(frame int, now time.Time, inputs []messages.PlayerInput, pools []pool.Stats, hits []messages.Hit) bool {
	if n := len(l.Records); n > 0 && frame != l.Records[n-1].Frame+1 {
		return false
	}
	if len(l.Records) == 0 {
		l.start = now
	}
	l.Records = append(l.Records, FrameRecord{
		Frame:   frame,
		Elapsed: now.Sub(l.start),
		Inputs:  append([]messages.PlayerInput(nil), inputs...),
		Pools:   append([]pool.Stats(nil), pools...),
		Hits:    append([]messages.Hit(nil), hits...),
	})
	return true
}

func (l *FrameLog) Len() int { return len(l.Records) }

// First returns the first logged frame, or 0 for an empty log.
func (l *FrameLog) First() int {
	if len(l.Records) == 0 {
		return 0
	}
	return l.Records[0].Frame
}

// Inputs returns the inputs logged for frame.
func (l *FrameLog) Inputs(frame int) ([]messages.PlayerInput, bool) {
	i := frame - l.First()
	if i < 0 || i >= len(l.Records) {
		return nil, false
	}
	return l.Records[i].Inputs, true
}

// Hits returns the hits applied before frame was ticked.
func (l *FrameLog) Hits(frame int) []messages.Hit {
	i := frame - l.First()
	if i < 0 || i >= len(l.Records) {
		return nil
	}
	return l.Records[i].Hits
}
