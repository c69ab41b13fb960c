package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/ovly/internal/event"
)

type fakePump struct {
	now     time.Time
	waits   []time.Duration
	wakes   int
	onWait  func()
	advance func(d time.Duration) time.Duration
}

func (p *fakePump) clock() time.Time { return p.now }

func (p *fakePump) WaitTimeout(d time.Duration) {
	p.waits = append(p.waits, d)
	if p.onWait != nil {
		p.onWait()
	}

	step := d
	if p.advance != nil {
		step = p.advance(d)
	}
	p.now = p.now.Add(step)
}

func (p *fakePump) Wake() { p.wakes++ }

func newQueue(interval time.Duration) (*event.Queue, *fakePump) {
	p := &fakePump{now: time.Unix(1000, 0)}
	return event.NewQueue(p, interval, p.clock), p
}

func kinds(q *event.Queue, n int) []event.Kind {
	out := make([]event.Kind, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, q.Next().Kind)
	}
	return out
}

func TestQueue_IterationWithoutRedraw(t *testing.T) {
	t.Parallel()

	q, _ := newQueue(10 * time.Millisecond)

	assert.Equal(t, []event.Kind{
		event.NewEvents, event.MainEventsCleared,
		event.NewEvents, event.MainEventsCleared,
	}, kinds(q, 4))
}

func TestQueue_RedrawAfterMainEventsCleared(t *testing.T) {
	t.Parallel()

	q, _ := newQueue(10 * time.Millisecond)

	require.Equal(t, event.NewEvents, q.Next().Kind)
	require.Equal(t, event.MainEventsCleared, q.Next().Kind)
	q.RequestRedraw()
	assert.Equal(t, event.RedrawRequested, q.Next().Kind)
	assert.Equal(t, event.NewEvents, q.Next().Kind)
	assert.Equal(t, event.MainEventsCleared, q.Next().Kind)
	assert.Equal(t, event.NewEvents, q.Next().Kind, "redraw is one-shot")
}

func TestQueue_InputArrivesBetweenNewEventsAndCleared(t *testing.T) {
	t.Parallel()

	q, p := newQueue(10 * time.Millisecond)
	q.Next()
	q.Next()

	p.onWait = func() {
		q.Push(event.Event{Kind: event.CursorMoved, X: 1, Y: 2})
		p.onWait = nil
	}

	assert.Equal(t, event.NewEvents, q.Next().Kind)
	moved := q.Next()
	assert.Equal(t, event.CursorMoved, moved.Kind)
	assert.Equal(t, 1.0, moved.X)
	assert.Equal(t, event.MainEventsCleared, q.Next().Kind)
}

func TestQueue_PacesToInterval(t *testing.T) {
	t.Parallel()

	q, p := newQueue(10 * time.Millisecond)

	kinds(q, 2)
	assert.Empty(t, p.waits, "the first iteration starts immediately")

	kinds(q, 2)
	require.Len(t, p.waits, 1)
	assert.Equal(t, 10*time.Millisecond, p.waits[0])
}

func TestQueue_KeepsWaitingAfterEarlyReturn(t *testing.T) {
	t.Parallel()

	q, p := newQueue(10 * time.Millisecond)
	kinds(q, 2)

	p.advance = func(time.Duration) time.Duration { return 4 * time.Millisecond }
	kinds(q, 2)

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 6 * time.Millisecond, 2 * time.Millisecond}, p.waits)
}

func TestQueue_WakeInterruptsWait(t *testing.T) {
	t.Parallel()

	q, p := newQueue(time.Second)
	kinds(q, 2)

	p.advance = func(time.Duration) time.Duration { return time.Millisecond }
	p.onWait = func() { q.Wake() }

	assert.Equal(t, event.NewEvents, q.Next().Kind)
	assert.Len(t, p.waits, 1)
	assert.Equal(t, 1, p.wakes)
}
