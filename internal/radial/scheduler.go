package radial

import (
	"sort"
	"time"
)

// Scheduler runs callbacks after a delay. Implementations must invoke
// callbacks on the host UI goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending.
	Stop() bool
}

// StepScheduler is a virtual clock driven by the host loop. Callbacks fire
// inside Advance, on the goroutine that calls it.
type StepScheduler struct {
	now     time.Duration
	seq     int
	pending []*stepTimer
}

type stepTimer struct {
	s   *StepScheduler
	due time.Duration
	seq int
	f   func()
}

func NewStepScheduler() *StepScheduler { return &StepScheduler{} }

func (s *StepScheduler) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &stepTimer{s: s, due: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due == s.pending[j].due {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due < s.pending[j].due
	})
	return t
}

// Advance moves the clock forward by d and fires every callback that falls
// due, including ones scheduled by callbacks fired during this call.
func (s *StepScheduler) Advance(d time.Duration) {
	target := s.now + d
	for len(s.pending) > 0 && s.pending[0].due <= target {
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.now = t.due
		t.f()
	}
	s.now = target
}

// Now is the virtual time elapsed since creation.
func (s *StepScheduler) Now() time.Duration { return s.now }

// Pending reports how many callbacks are waiting.
func (s *StepScheduler) Pending() int { return len(s.pending) }

func (t *stepTimer) Stop() bool {
	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			return true
		}
	}
	return false
}
