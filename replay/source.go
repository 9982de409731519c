package replay

import "github.com/automoto/platfight/shared/messages"

// Source plays a log back one frame at a time.
type Source struct {
	log *FrameLog
}

func NewSource(log *FrameLog) *Source {
	return &Source{log: log}
}

// Inputs appends the logged inputs for frame to dst. It reports false once
// the log has no record for frame.
func (s *Source) Inputs(frame int, dst []messages.PlayerInput) ([]messages.PlayerInput, bool) {
	in, ok := s.log.Inputs(frame)
	if !ok {
		return dst, false
	}
	return append(dst, in...), true
}

// Hits appends the hits logged before frame to dst.
func (s *Source) Hits(frame int, dst []messages.Hit) []messages.Hit {
	return append(dst, s.log.Hits(frame)...)
}
