package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"library_landing/internal/animator"
	"library_landing/internal/domain"
	"library_landing/internal/scheduler"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

var levelColors = map[Level]lipgloss.Color{
	LevelInfo:    lipgloss.Color("#2563eb"),
	LevelSuccess: lipgloss.Color("#10b981"),
	LevelWarning: lipgloss.Color("#f59e0b"),
	LevelError:   lipgloss.Color("#ef4444"),
}

// ColorFor returns the background colour of a level; unknown levels are info.
func ColorFor(level Level) lipgloss.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return levelColors[LevelInfo]
}

// noticeFor is the toast shown once statistics arrive.
func noticeFor(origin domain.Origin) (Level, string) {
	if origin == domain.OriginLive {
		return LevelSuccess, "Library statistics loaded"
	}
	return LevelWarning, "Backend unavailable, showing demo statistics"
}

// ToastTiming controls the slide in, dwell and slide out of a toast.
type ToastTiming struct {
	EnterDelay time.Duration
	Transition time.Duration
	Visible    time.Duration
}

func DefaultToastTiming() ToastTiming {
	return ToastTiming{
		EnterDelay: 100 * time.Millisecond,
		Transition: 300 * time.Millisecond,
		Visible:    3000 * time.Millisecond,
	}
}

// Toast is a transient notification. Its clock starts at the first frame
// after it was shown.
type Toast struct {
	Message string
	Level   Level

	timing  ToastTiming
	shownAt time.Time
	started bool
	offset  float64
	expired bool
}

// Offset is how far the toast is slid out: 1 is fully off screen, 0 fully shown.
func (t *Toast) Offset() float64 {
	return t.offset
}

func (t *Toast) Expired() bool {
	return t.expired
}

func (t *Toast) update(now time.Time) {
	if !t.started {
		t.shownAt = now
		t.started = true
	}
	t.offset, t.expired = toastOffset(now.Sub(t.shownAt), t.timing)
}

func toastOffset(elapsed time.Duration, tm ToastTiming) (float64, bool) {
	leaveAt := tm.Visible
	switch {
	case elapsed < tm.EnterDelay:
		return 1, false
	case elapsed < tm.EnterDelay+tm.Transition:
		return 1 - animator.EaseOutQuart(animator.Progress(elapsed-tm.EnterDelay, tm.Transition)), false
	case elapsed < leaveAt:
		return 0, false
	case elapsed < leaveAt+tm.Transition:
		return animator.EaseOutQuart(animator.Progress(elapsed-leaveAt, tm.Transition)), false
	default:
		return 1, true
	}
}

// Toaster keeps the active toasts and advances them on the frame queue.
type Toaster struct {
	frames scheduler.Requester
	timing ToastTiming
	active []*Toast
}

func NewToaster(frames scheduler.Requester, timing ToastTiming) *Toaster {
	return &Toaster{frames: frames, timing: timing}
}

// Show queues a toast. Unknown levels render as info.
func (n *Toaster) Show(message string, level Level) *Toast {
	if _, ok := levelColors[level]; !ok {
		level = LevelInfo
	}
	t := &Toast{Message: message, Level: level, timing: n.timing, offset: 1}
	n.active = append(n.active, t)

	var step scheduler.FrameFunc
	step = func(now time.Time) {
		t.update(now)
		if t.expired {
			n.remove(t)
			return
		}
		n.frames.RequestFrame(step)
	}
	n.frames.RequestFrame(step)

	return t
}

// Active returns the toasts currently on screen, oldest first.
func (n *Toaster) Active() []*Toast {
	return n.active
}

func (n *Toaster) remove(t *Toast) {
	for i, a := range n.active {
		if a == t {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return
		}
	}
}
