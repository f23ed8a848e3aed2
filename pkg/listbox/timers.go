package listbox

import (
	"slices"
	"time"
)

// TimerID identifies a repeating timer.
type TimerID uint64

// Timers schedules repeating callbacks on the thread that drives the list
// box. A callback returning false stops its timer.
type Timers interface {
	Every(interval time.Duration, fn func() bool) TimerID
	Cancel(id TimerID)
}

type loopTimer struct {
	id       TimerID
	interval time.Duration
	due      time.Time
	fn       func() bool
}

// LoopTimers is a Timers driven by an event loop. The loop calls Dispatch
// each iteration; due callbacks run inline.
type LoopTimers struct {
	timers map[TimerID]*loopTimer
	nextID TimerID
	now    func() time.Time
}

// NewLoopTimers uses now as its clock, or time.Now when now is nil.
func NewLoopTimers(now func() time.Time) *LoopTimers {
	if now == nil {
		now = time.Now
	}
	return &LoopTimers{
		timers: make(map[TimerID]*loopTimer),
		now:    now,
	}
}

func (t *LoopTimers) Every(interval time.Duration, fn func() bool) TimerID {
	t.nextID++
	t.timers[t.nextID] = &loopTimer{
		id:       t.nextID,
		interval: interval,
		due:      t.now().Add(interval),
		fn:       fn,
	}
	return t.nextID
}

func (t *LoopTimers) Cancel(id TimerID) {
	delete(t.timers, id)
}

// Pending returns the number of armed timers.
func (t *LoopTimers) Pending() int {
	return len(t.timers)
}

// NextDeadline returns the earliest due time, if any timer is armed.
func (t *LoopTimers) NextDeadline() (time.Time, bool) {
	var next time.Time
	found := false
	for _, lt := range t.timers {
		if !found || lt.due.Before(next) {
			next = lt.due
			found = true
		}
	}
	return next, found
}

// Dispatch runs every timer due at now, at most once each, and returns how
// many ran. A timer that fell behind fires once and is rescheduled from now.
func (t *LoopTimers) Dispatch(now time.Time) int {
	var due []*loopTimer
	for _, lt := range t.timers {
		if !lt.due.After(now) {
			due = append(due, lt)
		}
	}
	slices.SortFunc(due, func(a, b *loopTimer) int {
		if c := a.due.Compare(b.due); c != 0 {
			return c
		}
		return int(a.id) - int(b.id)
	})

	fired := 0
	for _, lt := range due {
		// An earlier callback may have cancelled this one.
		if t.timers[lt.id] != lt {
			continue
		}
		fired++
		if !lt.fn() {
			delete(t.timers, lt.id)
			continue
		}
		if t.timers[lt.id] == lt {
			lt.due = now.Add(lt.interval)
		}
	}
	return fired
}
