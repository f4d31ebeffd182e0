package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval is roughly one frame of a 60Hz display.
const DefaultInterval = 16 * time.Millisecond

// Loop drives a Frames queue from a real ticker.
type Loop struct {
	frames   *Frames
	interval time.Duration
	logger   *slog.Logger
	onFrame  func(now time.Time)
}

func NewLoop(frames *Frames, interval time.Duration, logger *slog.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		frames:   frames,
		interval: interval,
		logger:   logger,
	}
}

// OnFrame registers a hook called after the callbacks of every frame,
// typically to paint.
func (l *Loop) OnFrame(fn func(now time.Time)) {
	l.onFrame = fn
}

// Run ticks until the queue drains or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("frame loop started", "interval", l.interval)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	frames := 0
	for !l.frames.Idle() {
		select {
		case <-ctx.Done():
			l.logger.Debug("frame loop cancelled", "frames", frames)
			return ctx.Err()
		case now := <-ticker.C:
			l.frames.RunFrame(now)
			frames++
			if l.onFrame != nil {
				l.onFrame(now)
			}
		}
	}

	l.logger.Debug("frame loop idle", "frames", frames)
	return nil
}
