// Package scheduler provides the "next frame" primitive the counters and
// transitions run on. Callbacks execute one frame at a time on the goroutine
// that calls RunFrame; nothing in here is safe for concurrent use.
package scheduler

import "time"

// FrameFunc is called with the timestamp of the frame it runs in.
type FrameFunc func(now time.Time)

// Requester is what animations need: a way to ask for the next frame.
type Requester interface {
	RequestFrame(fn FrameFunc)
}

// Frames is a queue of callbacks waiting for the next frame.
type Frames struct {
	pending []FrameFunc
}

func NewFrames() *Frames {
	return &Frames{}
}

// RequestFrame schedules fn to run in the next frame. Callbacks requested
// while a frame is running are deferred to the frame after.
func (f *Frames) RequestFrame(fn FrameFunc) {
	f.pending = append(f.pending, fn)
}

// RunFrame runs every callback queued before the call and returns how many ran.
func (f *Frames) RunFrame(now time.Time) int {
	batch := f.pending
	f.pending = nil

	for _, fn := range batch {
		fn(now)
	}
	return len(batch)
}

// Pending returns the number of callbacks waiting for the next frame.
func (f *Frames) Pending() int {
	return len(f.pending)
}

// Idle reports whether no callback is waiting.
func (f *Frames) Idle() bool {
	return len(f.pending) == 0
}
