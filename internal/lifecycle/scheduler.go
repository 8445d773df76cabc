// Package lifecycle provides the frame scheduler and the scoped acquisition
// of listeners and frames used by mounted visual components.
package lifecycle

import "time"

// FrameFunc is invoked once per displayed frame.
type FrameFunc func(now time.Time)

// Handle identifies a requested frame callback.
type Handle uint64

// FrameScheduler queues callbacks for the next frame, the way a browser's
// animation-frame queue does. The shell calls Run once per Draw.
type FrameScheduler struct {
	next    Handle
	pending map[Handle]FrameFunc
	order   []Handle
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{pending: make(map[Handle]FrameFunc)}
}

// Request queues fn for the next Run and returns its handle.
func (s *FrameScheduler) Request(fn FrameFunc) Handle {
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

// Cancel drops a queued callback. It reports whether one was dropped.
func (s *FrameScheduler) Cancel(h Handle) bool {
	if _, ok := s.pending[h]; !ok {
		return false
	}
	delete(s.pending, h)
	return true
}

// Run invokes every callback queued before the call. Callbacks requested
// while running wait for the next frame. It returns how many ran.
func (s *FrameScheduler) Run(now time.Time) int {
	order := s.order
	s.order = nil
	ran := 0
	for _, h := range order {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}
