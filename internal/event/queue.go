package event

import (
	"sync/atomic"
	"time"
)

type phase int

const (
	phaseIdle phase = iota
	phaseInput
	phaseCleared
)

// Pump waits for OS events until the deadline or until woken. Events that
// arrive are pushed through the queue's Push method from the toolkit's callbacks.
type Pump interface {
	WaitTimeout(d time.Duration)
	Wake()
}

// Queue turns a callback-driven toolkit into the iteration model the render
// loop expects: NewEvents, input events, MainEventsCleared and, when a redraw
// was requested, RedrawRequested. Iterations are paced to the frame interval.
//
// Only Wake may be called from another goroutine.
type Queue struct {
	pump     Pump
	interval time.Duration
	now      func() time.Time

	pending  []Event
	phase    phase
	redraw   bool
	deadline time.Time
	woken    atomic.Bool
}

// NewQueue creates a queue. A nil now uses time.Now.
func NewQueue(pump Pump, interval time.Duration, now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{pump: pump, interval: interval, now: now}
}

// Push appends an event from a toolkit callback.
func (q *Queue) Push(ev Event) {
	q.pending = append(q.pending, ev)
}

// Next returns the next event, blocking in the pump between iterations.
func (q *Queue) Next() Event {
	for {
		if len(q.pending) > 0 {
			ev := q.pending[0]
			q.pending = q.pending[1:]
			return ev
		}

		switch q.phase {
		case phaseIdle:
			q.wait()
			q.phase = phaseInput
			return Of(NewEvents)

		case phaseInput:
			q.phase = phaseCleared
			return Of(MainEventsCleared)

		case phaseCleared:
			q.phase = phaseIdle
			if q.redraw {
				q.redraw = false
				return Of(RedrawRequested)
			}
		}
	}
}

// wait blocks until the next frame is due, collecting events as they arrive.
func (q *Queue) wait() {
	if q.deadline.IsZero() {
		q.deadline = q.now()
	}

	for {
		if q.woken.Swap(false) {
			break
		}

		remaining := q.deadline.Sub(q.now())
		if remaining <= 0 {
			break
		}

		q.pump.WaitTimeout(remaining)
	}

	q.deadline = q.deadline.Add(q.interval)
	if now := q.now(); q.deadline.Before(now) {
		// Fell behind; do not try to catch up with a burst of frames.
		q.deadline = now
	}
}

// RequestRedraw schedules RedrawRequested at the end of the current iteration.
func (q *Queue) RequestRedraw() {
	q.redraw = true
}

// Wake interrupts a pending wait.
func (q *Queue) Wake() {
	q.woken.Store(true)
	q.pump.Wake()
}
