package lifecycle

import (
	"time"

	"studio-site/internal/event"
)

// Scope collects release functions for everything a component acquires while
// mounted. Close runs them in reverse order exactly once.
type Scope struct {
	releases []func()
	closed   bool
}

func NewScope() *Scope {
	return &Scope{}
}

// Defer registers release to run on Close. On a closed scope it runs
// immediately so late acquisitions cannot leak.
func (s *Scope) Defer(release func()) {
	if s.closed {
		release()
		return
	}
	s.releases = append(s.releases, release)
}

// Subscribe adds a listener and ties its removal to the scope.
func (s *Scope) Subscribe(d *event.Dispatcher, t event.EventType, l event.Listener) {
	sub := d.Subscribe(t, l)
	s.Defer(func() { d.Unsubscribe(sub) })
}

// Close releases everything in reverse order. Subsequent calls do nothing.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool { return s.closed }

// Held returns the number of releases still owed.
func (s *Scope) Held() int { return len(s.releases) }

// Loop keeps exactly one frame request outstanding while running and never
// runs its callback after Stop.
type Loop struct {
	scheduler *FrameScheduler
	fn        FrameFunc
	handle    Handle
	running   bool
}

func NewLoop(scheduler *FrameScheduler, fn FrameFunc) *Loop {
	return &Loop{scheduler: scheduler, fn: fn}
}

// Start requests the first frame. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.handle = l.scheduler.Request(l.tick)
}

// Stop cancels the outstanding frame.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.scheduler.Cancel(l.handle)
	l.handle = 0
}

func (l *Loop) Running() bool { return l.running }

func (l *Loop) tick(now time.Time) {
	if !l.running {
		return
	}
	l.fn(now)
	// fn may have stopped the loop
	if l.running {
		l.handle = l.scheduler.Request(l.tick)
	}
}
