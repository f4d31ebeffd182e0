package ui

import (
	"math"
	"time"

	"library_landing/internal/animator"
	"library_landing/internal/scheduler"
)

// Scroller eases the scroll offset towards a target row.
type Scroller struct {
	frames   scheduler.Requester
	duration time.Duration
	offset   int
	max      int
	gen      int
}

func NewScroller(frames scheduler.Requester, duration time.Duration) *Scroller {
	return &Scroller{frames: frames, duration: duration}
}

func (s *Scroller) Offset() int {
	return s.offset
}

// SetMax bounds the offset, typically content height minus viewport height.
func (s *Scroller) SetMax(limit int) {
	if limit < 0 {
		limit = 0
	}
	s.max = limit
	s.offset = s.clamp(s.offset)
}

// ScrollBy jumps immediately and cancels any smooth scroll in progress.
func (s *Scroller) ScrollBy(rows int) {
	s.gen++
	s.offset = s.clamp(s.offset + rows)
}

// ScrollTo smoothly scrolls so that row is at the top of the viewport.
func (s *Scroller) ScrollTo(row int) {
	s.gen++
	gen := s.gen
	from := s.offset
	to := s.clamp(row)

	var startedAt time.Time
	started := false

	var step scheduler.FrameFunc
	step = func(now time.Time) {
		if gen != s.gen {
			return
		}
		if !started {
			startedAt = now
			started = true
		}
		p := animator.Progress(now.Sub(startedAt), s.duration)
		s.offset = from + int(math.Round(float64(to-from)*animator.EaseOutQuart(p)))
		if p < 1 {
			s.frames.RequestFrame(step)
		}
	}
	s.frames.RequestFrame(step)
}

func (s *Scroller) clamp(row int) int {
	return min(max(row, 0), s.max)
}
