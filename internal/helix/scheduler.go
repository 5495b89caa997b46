package helix

import "sort"

// timeEpsilon absorbs float drift from summing fixed steps.
const timeEpsilon = 1e-9

type deferred struct {
	at  float64
	seq uint64
	fn  func()
}

// Scheduler runs deferred effects against the simulation clock. Scheduled
// effects cannot be cancelled individually; Clear drops all of them.
type Scheduler struct {
	now     float64
	seq     uint64
	pending []deferred
}

// After schedules fn to run once the clock has advanced by delay seconds.
func (s *Scheduler) After(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, deferred{at: s.now + delay, seq: s.seq, fn: fn})
}

// Advance moves the clock forward and runs every due effect in due-time
// order. Effects scheduled by a running effect fire in the same call if
// they are already due.
func (s *Scheduler) Advance(dt float64) {
	s.now += dt
	for {
		due := s.popDue()
		if due == nil {
			return
		}
		due.fn()
	}
}

func (s *Scheduler) popDue() *deferred {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	if s.pending[0].at > s.now+timeEpsilon {
		return nil
	}
	d := s.pending[0]
	s.pending = s.pending[1:]
	return &d
}

// Now returns the scheduler clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of effects not yet run.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Clear drops all pending effects and rewinds the clock.
func (s *Scheduler) Clear() {
	s.pending = nil
	s.now = 0
}
