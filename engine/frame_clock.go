package engine

import (
	"sync/atomic"
	"time"
)

// FrameClock is a TimeProvider that only moves when stepped
// Tests and replays drive it one frame at a time to get exact game timings
type FrameClock struct {
	origin  time.Time
	frame   time.Duration
	elapsed atomic.Int64
}

func NewFrameClock(origin time.Time, frame time.Duration) *FrameClock {
	return &FrameClock{origin: origin, frame: frame}
}

func (c *FrameClock) Now() time.Time {
	return c.origin.Add(time.Duration(c.elapsed.Load()))
}

// Step moves one frame forward and returns the new time
func (c *FrameClock) Step() time.Time {
	return c.Advance(c.frame)
}

// Advance moves the clock by d; negative durations are ignored
func (c *FrameClock) Advance(d time.Duration) time.Time {
	if d > 0 {
		c.elapsed.Add(int64(d))
	}
	return c.Now()
}

// Frames returns the number of whole frames since origin
func (c *FrameClock) Frames() int64 {
	if c.frame <= 0 {
		return 0
	}
	return c.elapsed.Load() / int64(c.frame)
}
