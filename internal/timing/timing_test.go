package timing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/ovly/internal/timing"
)

type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFrameClock_TickReturnsDeltaAndResets(t *testing.T) {
	t.Parallel()

	clk := &fakeNow{t: time.Unix(1000, 0)}
	fc := timing.NewFrameClock(clk.now)

	clk.advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, fc.Tick())

	clk.advance(7 * time.Millisecond)
	assert.Equal(t, 7*time.Millisecond, fc.Tick(), "Second tick should only measure since the first")

	assert.Equal(t, time.Duration(0), fc.Tick(), "No time passed")
}

func TestFrameClock_ClampsLongStalls(t *testing.T) {
	t.Parallel()

	clk := &fakeNow{t: time.Unix(1000, 0)}
	fc := timing.NewFrameClock(clk.now)

	clk.advance(5 * time.Second)
	assert.Equal(t, timing.MaxFrameDelta, fc.Tick())
}

func TestFrameClock_NeverNegative(t *testing.T) {
	t.Parallel()

	clk := &fakeNow{t: time.Unix(1000, 0)}
	fc := timing.NewFrameClock(clk.now)

	clk.advance(-time.Second)
	assert.Equal(t, time.Duration(0), fc.Tick())
}

func TestFrameClock_DefaultsToWallClock(t *testing.T) {
	t.Parallel()

	fc := timing.NewFrameClock(nil)
	assert.GreaterOrEqual(t, fc.Tick(), time.Duration(0))
}

func TestFrameInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fps  int
		want time.Duration
	}{
		{name: "default on zero", fps: 0, want: time.Second / timing.DefaultFrameRate},
		{name: "sixty", fps: 60, want: time.Second / 60},
		{name: "clamped low", fps: 1, want: time.Second / timing.MinFrameRate},
		{name: "clamped high", fps: 100000, want: time.Second / timing.MaxFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, timing.FrameInterval(tt.fps))
		})
	}
}
