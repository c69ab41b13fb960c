// Package timing holds the frame clock and the timing constants of the overlay.
package timing

import "time"

const (
	// DefaultFrameRate is the frame cap used when none is configured.
	// The GL context runs without vsync, so the event wait is the only throttle.
	DefaultFrameRate = 144

	// MinFrameRate and MaxFrameRate bound the configurable frame cap.
	MinFrameRate = 10
	MaxFrameRate = 1000

	// TargetPollInterval is how often the tracker re-reads the target
	// window's bounds and liveness.
	TargetPollInterval = 250 * time.Millisecond

	// MaxFrameDelta caps the delta fed to the UI after a long stall, such as
	// a breakpoint or a suspended session, so animations do not jump.
	MaxFrameDelta = 250 * time.Millisecond
)

// FrameInterval returns the wait timeout for the given frame rate, clamped to
// the supported range.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	fps = max(MinFrameRate, min(fps, MaxFrameRate))
	return time.Second / time.Duration(fps)
}

// FrameClock measures the time between frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock starts a clock at the current time. A nil now uses time.Now,
// which carries a monotonic reading.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now, last: now()}
}

// Tick returns the time elapsed since the previous Tick (or construction)
// and resets the clock.
func (c *FrameClock) Tick() time.Duration {
	t := c.now()
	delta := t.Sub(c.last)
	c.last = t

	if delta < 0 {
		return 0
	}
	return min(delta, MaxFrameDelta)
}
