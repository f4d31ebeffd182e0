package scheduler

import "time"

// VirtualClock drives a Frames queue on simulated time.
type VirtualClock struct {
	frames   *Frames
	now      time.Time
	interval time.Duration
}

// NewVirtualClock falls back to DefaultInterval for a non-positive interval.
func NewVirtualClock(frames *Frames, start time.Time, interval time.Duration) *VirtualClock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &VirtualClock{
		frames:   frames,
		now:      start,
		interval: interval,
	}
}

func (c *VirtualClock) Now() time.Time {
	return c.now
}

// Step advances the clock by one frame interval and runs that frame.
func (c *VirtualClock) Step() int {
	c.now = c.now.Add(c.interval)
	return c.frames.RunFrame(c.now)
}

// Advance runs frames until d of simulated time has passed.
func (c *VirtualClock) Advance(d time.Duration) {
	end := c.now.Add(d)
	for c.now.Add(c.interval).Compare(end) <= 0 {
		c.Step()
	}
	if c.now.Before(end) {
		c.now = end
		c.frames.RunFrame(c.now)
	}
}

// RunUntilIdle steps frames until nothing is pending or maxFrames ran.
// It returns the number of frames stepped.
func (c *VirtualClock) RunUntilIdle(maxFrames int) int {
	n := 0
	for !c.frames.Idle() && n < maxFrames {
		c.Step()
		n++
	}
	return n
}
