// Package fx implements the decorative presentation collaborators: particle
// bursts, the parallax star background, and a frame-polled scheduler for
// deferred effects. Nothing in this package reaches back into the simulation.
package fx

import "sort"

// Scheduler is a queue of deferred effects keyed by elapsed time. It is
// polled once per frame from the same clock the frame loop uses, so deferred
// effects stay frame-synchronous and deterministic in tests. Scheduled
// functions must only touch presentation state.
type Scheduler struct {
	now     float64
	pending []scheduled
}

type scheduled struct {
	at float64
	fn func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After queues fn to run once delay seconds of scheduler time have elapsed.
// A zero or negative delay fires on the next Advance call.
func (s *Scheduler) After(delay float64, fn func()) {
	s.pending = append(s.pending, scheduled{at: s.now + delay, fn: fn})
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].at < s.pending[j].at
	})
}

// Advance moves the scheduler clock forward and fires everything that came
// due, in due-time order.
func (s *Scheduler) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	fired := 0
	for _, e := range s.pending {
		if e.at > s.now {
			break
		}
		e.fn()
		fired++
	}
	if fired > 0 {
		s.pending = append(s.pending[:0], s.pending[fired:]...)
	}
}

// Clear drops all pending effects without firing them.
func (s *Scheduler) Clear() {
	s.pending = s.pending[:0]
}

// Pending returns the number of queued effects.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
