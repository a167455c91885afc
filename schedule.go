package charm

import (
	"cmp"
	"slices"
	"time"
)

// Clock supplies the current time to the engine's task scheduler.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system monotonic clock.
type WallClock struct{}

// Now returns time.Now().
func (WallClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. Useful for tests and
// for hosts that want delays measured in simulated time.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Task is a delayed continuation owned by an Engine. It runs at the start of
// the first Engine.Update at or after its due time, unless cancelled.
type Task struct {
	due       time.Time
	seq       uint64
	fn        func()
	cancelled bool
	done      bool
}

// Cancel prevents a pending task from running. It reports whether the task
// was still pending.
func (t *Task) Cancel() bool {
	if t == nil || t.cancelled || t.done {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the task has neither run nor been cancelled.
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.done
}

// Due returns the time the task becomes runnable.
func (t *Task) Due() time.Time {
	return t.due
}

// scheduler holds pending tasks. Tasks scheduled while run is firing are
// deferred to the next run, so a zero delay never fires in the same pass.
type scheduler struct {
	clock Clock
	tasks []*Task
	ready []*Task
	seq   uint64
}

func (s *scheduler) after(d time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{due: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// run fires every due task in due-time order, ties broken by scheduling order.
func (s *scheduler) run() {
	if len(s.tasks) == 0 {
		return
	}
	now := s.clock.Now()
	pending := s.tasks
	s.tasks = make([]*Task, 0, len(pending))
	s.ready = s.ready[:0]
	for _, t := range pending {
		switch {
		case t.cancelled:
		case t.due.After(now):
			s.tasks = append(s.tasks, t)
		default:
			s.ready = append(s.ready, t)
		}
	}
	slices.SortFunc(s.ready, func(a, b *Task) int {
		if c := a.due.Compare(b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for i, t := range s.ready {
		s.ready[i] = nil
		if t.cancelled {
			continue
		}
		t.done = true
		t.fn()
	}
	s.ready = s.ready[:0]
}

// pending counts tasks that have not run or been cancelled.
func (s *scheduler) pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// clear cancels every pending task, including those already picked for the
// run in progress.
func (s *scheduler) clear() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	for _, t := range s.ready {
		if t != nil {
			t.cancelled = true
		}
	}
	s.tasks = s.tasks[:0]
}
