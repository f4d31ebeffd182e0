package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"library_landing/internal/scheduler"
)

func TestScroller_ScrollToEases(t *testing.T) {
	frames := scheduler.NewFrames()
	clock := scheduler.NewVirtualClock(frames, epoch, 16*time.Millisecond)
	s := NewScroller(frames, 500*time.Millisecond)
	s.SetMax(100)

	s.ScrollTo(40)
	clock.Step()
	assert.Equal(t, 0, s.Offset())

	prev := 0
	for i := 0; i < 10; i++ {
		clock.Step()
		assert.GreaterOrEqual(t, s.Offset(), prev)
		prev = s.Offset()
	}
	assert.Greater(t, prev, 0)

	clock.RunUntilIdle(1000)
	assert.Equal(t, 40, s.Offset())
}

func TestScroller_Clamped(t *testing.T) {
	frames := scheduler.NewFrames()
	clock := scheduler.NewVirtualClock(frames, epoch, 16*time.Millisecond)
	s := NewScroller(frames, 100*time.Millisecond)
	s.SetMax(10)

	s.ScrollTo(50)
	clock.RunUntilIdle(1000)
	assert.Equal(t, 10, s.Offset())

	s.ScrollBy(-100)
	assert.Equal(t, 0, s.Offset())

	s.SetMax(-5)
	assert.Equal(t, 0, s.Offset())
}

func TestScroller_ManualScrollCancelsSmooth(t *testing.T) {
	frames := scheduler.NewFrames()
	clock := scheduler.NewVirtualClock(frames, epoch, 16*time.Millisecond)
	s := NewScroller(frames, 500*time.Millisecond)
	s.SetMax(100)

	s.ScrollTo(80)
	clock.Step()
	clock.Step()
	s.ScrollBy(1)
	at := s.Offset()

	clock.RunUntilIdle(1000)
	assert.Equal(t, at, s.Offset())
}
