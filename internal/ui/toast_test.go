package ui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library_landing/internal/scheduler"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestToastOffset_Phases(t *testing.T) {
	tm := DefaultToastTiming()

	tests := []struct {
		elapsed     time.Duration
		wantOffset  float64
		wantExpired bool
	}{
		{0, 1, false},
		{99 * time.Millisecond, 1, false},
		{400 * time.Millisecond, 0, false},
		{1500 * time.Millisecond, 0, false},
		{2999 * time.Millisecond, 0, false},
		{3300 * time.Millisecond, 1, true},
		{10 * time.Second, 1, true},
	}

	for _, tt := range tests {
		offset, expired := toastOffset(tt.elapsed, tm)
		assert.Equal(t, tt.wantOffset, offset, "elapsed %s", tt.elapsed)
		assert.Equal(t, tt.wantExpired, expired, "elapsed %s", tt.elapsed)
	}
}

func TestToastOffset_Slides(t *testing.T) {
	tm := DefaultToastTiming()

	in, _ := toastOffset(250*time.Millisecond, tm)
	assert.Greater(t, in, 0.0)
	assert.Less(t, in, 1.0)

	out, _ := toastOffset(3150*time.Millisecond, tm)
	assert.Greater(t, out, 0.0)
	assert.Less(t, out, 1.0)
}

func TestToaster_LifecycleOnFrames(t *testing.T) {
	frames := scheduler.NewFrames()
	clock := scheduler.NewVirtualClock(frames, epoch, 16*time.Millisecond)
	n := NewToaster(frames, DefaultToastTiming())

	toast := n.Show("Saved", LevelSuccess)
	require.Len(t, n.Active(), 1)
	assert.Equal(t, 1.0, toast.Offset())

	clock.Step()
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 0.0, toast.Offset())
	assert.Len(t, n.Active(), 1)

	clock.Advance(2900 * time.Millisecond)
	assert.True(t, toast.Expired())
	assert.Empty(t, n.Active())
	assert.True(t, frames.Idle())
}

func TestToaster_UnknownLevelIsInfo(t *testing.T) {
	n := NewToaster(scheduler.NewFrames(), DefaultToastTiming())

	toast := n.Show("hello", Level("critical"))

	assert.Equal(t, LevelInfo, toast.Level)
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#2563eb"), ColorFor(LevelInfo))
	assert.Equal(t, lipgloss.Color("#10b981"), ColorFor(LevelSuccess))
	assert.Equal(t, lipgloss.Color("#f59e0b"), ColorFor(LevelWarning))
	assert.Equal(t, lipgloss.Color("#ef4444"), ColorFor(LevelError))
	assert.Equal(t, lipgloss.Color("#2563eb"), ColorFor(Level("nope")))
}
