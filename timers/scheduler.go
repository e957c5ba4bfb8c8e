// Package timers provides fire-once callbacks scheduled against a virtual
// clock that only moves when the game loop advances it.
package timers

import (
	"sort"
	"time"
)

// Scheduler holds pending callbacks ordered by due time, then by scheduling order.
// It is not safe for concurrent use; the game loop owns it.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*task
}

type task struct {
	due      time.Duration
	seq      uint64
	fn       func()
	canceled bool
	fired    bool
}

// Handle cancels a scheduled callback. A nil Handle is valid and inert.
type Handle struct {
	t *task
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d after the current virtual time.
// Negative delays are treated as zero.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &task{due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return &Handle{t: t}
}

// Advance moves the clock forward by dt and runs every callback that became due,
// in due order. While a callback runs the clock reads its due time, so work it
// schedules is timed from that point and may also run within this call.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	ran := 0
	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		if t.due > s.now {
			s.now = t.due
		}
		t.fired = true
		t.fn()
		ran++
	}
	s.now = target
	return ran
}

// popDue removes and returns the earliest task due by limit, or nil if none is.
func (s *Scheduler) popDue(limit time.Duration) *task {
	s.compact()
	if len(s.tasks) == 0 {
		return nil
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})

	t := s.tasks[0]
	if t.due > limit {
		return nil
	}
	s.tasks = s.tasks[1:]
	return t
}

// compact drops canceled tasks.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Len returns the number of callbacks still waiting to run.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Clear cancels every pending callback. The clock keeps its time.
func (s *Scheduler) Clear() {
	for _, t := range s.tasks {
		t.canceled = true
	}
	s.tasks = s.tasks[:0]
}

// Cancel prevents the callback from running. Canceling twice, or after it ran, is a no-op.
func (h *Handle) Cancel() {
	if h == nil || h.t == nil {
		return
	}
	h.t.canceled = true
}

// Pending reports whether the callback is still waiting to run.
func (h *Handle) Pending() bool {
	if h == nil || h.t == nil {
		return false
	}
	return !h.t.canceled && !h.t.fired
}
