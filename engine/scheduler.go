package engine

import (
	"container/heap"
	"time"
)

// Task is a scheduled callback; one-shot unless created with Every
type Task struct {
	at     time.Time
	seq    uint64
	period time.Duration
	gen    uint64
	fn     func()

	cancelled bool
	index     int // heap position, -1 when not queued
	sched     *Scheduler
}

// Cancel prevents any further firing; safe to call repeatedly and from inside the callback
func (t *Task) Cancel() {
	if t == nil || t.cancelled {
		return
	}
	t.cancelled = true
	if t.index >= 0 {
		heap.Remove(&t.sched.queue, t.index)
	}
}

// Active reports whether the task can still fire
func (t *Task) Active() bool {
	return t != nil && !t.cancelled && t.index >= 0 && t.gen == t.sched.gen
}

// Due returns the next firing time
func (t *Task) Due() time.Time {
	return t.at
}

// Scheduler is the single event loop: a virtual-time queue of callbacks
// Callbacks run inside AdvanceTo on the caller's goroutine, in due-time order
// with ties broken by scheduling order. Not safe for concurrent use
//
// Every task is stamped with the generation current at scheduling time.
// Bump starts a new generation and drops everything older, so late timers of
// a finished run can never act on the next one
type Scheduler struct {
	now   time.Time
	seq   uint64
	gen   uint64
	queue taskQueue
}

// NewScheduler creates a scheduler whose clock starts at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the scheduler's current virtual time
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Generation returns the current generation id
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Bump starts a new generation, discarding every queued task
func (s *Scheduler) Bump() uint64 {
	s.gen++
	for _, t := range s.queue {
		t.cancelled = true
		t.index = -1
	}
	s.queue = s.queue[:0]
	return s.gen
}

// After schedules fn to run once, d from now
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run every period, first firing one period from now
func (s *Scheduler) Every(period time.Duration, fn func()) *Task {
	if period <= 0 {
		period = time.Nanosecond
	}
	return s.schedule(period, period, fn)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Task{
		at:     s.now.Add(d),
		seq:    s.seq,
		period: period,
		gen:    s.gen,
		fn:     fn,
		index:  -1,
		sched:  s,
	}
	heap.Push(&s.queue, t)
	return t
}

// AdvanceTo runs every task due at or before target, then moves the clock to target
// Returns the number of callbacks executed. Targets in the past only run overdue tasks
func (s *Scheduler) AdvanceTo(target time.Time) int {
	ran := 0
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.at.After(target) {
			break
		}
		heap.Pop(&s.queue)

		if next.at.After(s.now) {
			s.now = next.at
		}
		if next.cancelled || next.gen != s.gen {
			continue
		}

		if next.period > 0 {
			// Requeue before running so the callback may cancel itself
			s.seq++
			next.seq = s.seq
			next.at = next.at.Add(next.period)
			heap.Push(&s.queue, next)
		} else {
			next.cancelled = true
		}

		next.fn()
		ran++
	}

	if target.After(s.now) {
		s.now = target
	}
	return ran
}

// Advance moves the clock forward by d
func (s *Scheduler) Advance(d time.Duration) int {
	return s.AdvanceTo(s.now.Add(d))
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// taskQueue is a min-heap on (at, seq)
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
