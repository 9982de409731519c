package components

import (
	"github.com/automoto/platfight/shared/messages"
	"github.com/yohamta/donburi"
)

// InputHistoryData is a player's append-only input log indexed by frame.
type InputHistoryData struct {
	Start  int // Frame of Frames[0]
	Frames []messages.PlayerInput
}

var Input = donburi.NewComponentType[InputHistoryData]()

// NewInputHistory returns an empty history whose first frame is start.
func NewInputHistory(start, capacity int) InputHistoryData {
	return InputHistoryData{
		Start:  start,
		Frames: make([]messages.PlayerInput, 0, capacity),
	}
}

// Next returns the frame the next Record stores.
func (h *InputHistoryData) Next() int {
	return h.Start + len(h.Frames)
}

// Record appends in at frame. Skipped frames are filled with empty input.
// A frame that was already recorded is left unchanged and Record reports
// false.
func (h *InputHistoryData) Record(frame int, in messages.PlayerInput) bool {
	if frame < h.Next() {
		return false
	}
	for h.Next() < frame {
		h.Frames = append(h.Frames, messages.PlayerInput{Frame: h.Next()})
	}
	in.Frame = frame
	h.Frames = append(h.Frames, in)
	return true
}

// At returns the input recorded for frame.
func (h *InputHistoryData) At(frame int) (messages.PlayerInput, bool) {
	i := frame - h.Start
	if i < 0 || i >= len(h.Frames) {
		return messages.PlayerInput{}, false
	}
	return h.Frames[i], true
}

// Current returns the input for frame, or the zero input if none exists.
func (h *InputHistoryData) Current(frame int) messages.PlayerInput {
	in, _ := h.At(frame)
	return in
}

// Previous returns the input for the frame before frame, or the zero input
// on the first frame.
func (h *InputHistoryData) Previous(frame int) messages.PlayerInput {
	in, _ := h.At(frame - 1)
	return in
}
