package machine

import (
	"math"
	"time"
)

// Task is a delayed one-shot callback owned by a Scheduler.
type Task struct {
	name  string
	due   time.Duration
	epoch uint64
	seq   uint64
	fn    func()
	done  bool
}

// Name returns the label given when the task was scheduled
func (t *Task) Name() string {
	return t.name
}

// Cancel prevents the task from firing. Cancelling a fired task is a no-op.
func (t *Task) Cancel() {
	t.done = true
}

// Done reports whether the task has fired, was cancelled, or went stale
func (t *Task) Done() bool {
	return t.done
}

// Scheduler runs delayed callbacks on a clock advanced by the game loop.
//
// Every task belongs to the epoch that was current when it was scheduled.
// Invalidate starts a new epoch; tasks from older epochs never fire.
type Scheduler struct {
	now   time.Duration
	epoch uint64
	seq   uint64
	tasks []*Task
}

// NewScheduler creates an empty scheduler at time zero, epoch zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make([]*Task, 0, 4),
	}
}

// After schedules fn to run once the clock has advanced by delay
func (s *Scheduler) After(delay time.Duration, name string, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Task{
		name:  name,
		due:   s.now + delay,
		epoch: s.epoch,
		seq:   s.seq,
		fn:    fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt seconds, rounded to the nearest
// nanosecond so whole frames add up to whole delays
func (s *Scheduler) Advance(dt float64) int {
	return s.AdvanceBy(time.Duration(math.Round(dt * float64(time.Second))))
}

// AdvanceBy moves the clock forward and fires every due task of the
// current epoch in due order. Callbacks may schedule new tasks or start a
// new epoch; both are honoured within the same call. Returns the number of
// tasks fired.
func (s *Scheduler) AdvanceBy(d time.Duration) int {
	if d > 0 {
		s.now += d
	}

	fired := 0
	for {
		next := s.nextDue()
		if next == nil {
			break
		}
		next.done = true
		next.fn()
		fired++
	}
	s.compact()
	return fired
}

// Invalidate starts a new epoch and drops every pending task
func (s *Scheduler) Invalidate() uint64 {
	s.epoch++
	for _, t := range s.tasks {
		t.done = true
	}
	s.tasks = s.tasks[:0]
	return s.epoch
}

// Epoch returns the current epoch
func (s *Scheduler) Epoch() uint64 {
	return s.epoch
}

// Now returns the scheduler clock
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks still waiting to fire
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done && t.epoch == s.epoch {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live task whose due time has passed
func (s *Scheduler) nextDue() *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.done || t.epoch != s.epoch || t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.done {
			continue
		}
		if t.epoch != s.epoch {
			t.done = true
			continue
		}
		live = append(live, t)
	}
	// drop references held past the new length
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
