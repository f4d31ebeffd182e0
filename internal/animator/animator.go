// Package animator counts on-screen numbers up to their targets.
package animator

import (
	"log/slog"
	"math"
	"time"

	"library_landing/internal/scheduler"
)

// DefaultDuration is how long a counter takes to reach its target.
const DefaultDuration = 2000 * time.Millisecond

type State int

const (
	NotStarted State = iota
	Animating
	Done
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Animating:
		return "animating"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Task animates one target from Start to End.
type Task struct {
	ID       string
	Start    int64
	End      int64
	Duration time.Duration

	target    Target
	format    Formatter
	frames    scheduler.Requester
	startedAt time.Time
	state     State
	current   int64
}

func (t *Task) State() State {
	return t.state
}

// Current is the value last rendered.
func (t *Task) Current() int64 {
	return t.current
}

func (t *Task) step(now time.Time) {
	if t.state == Done {
		return
	}
	if t.state == NotStarted {
		t.startedAt = now
		t.state = Animating
	}

	progress := Progress(now.Sub(t.startedAt), t.Duration)
	eased := EaseOutQuart(progress)
	t.current = int64(math.Floor(float64(t.Start) + float64(t.End-t.Start)*eased))
	if progress >= 1 {
		t.current = t.End
	}
	t.target.SetText(t.format(t.current))

	if progress < 1 {
		t.frames.RequestFrame(t.step)
		return
	}
	t.state = Done
}

// Animator schedules counter tasks on a frame queue.
type Animator struct {
	elements Elements
	frames   scheduler.Requester
	format   Formatter
	duration time.Duration
	logger   *slog.Logger
}

type Config struct {
	Duration time.Duration
	Locale   string
}

func New(elements Elements, frames scheduler.Requester, cfg Config, logger *slog.Logger) *Animator {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	return &Animator{
		elements: elements,
		frames:   frames,
		format:   NumberFormatter(cfg.Locale),
		duration: cfg.Duration,
		logger:   logger,
	}
}

// Animate starts one independent counter per entry. Identifiers without a
// matching element are skipped. The returned tasks are keyed by identifier.
func (a *Animator) Animate(values map[string]int64) map[string]*Task {
	tasks := make(map[string]*Task, len(values))
	for id, v := range values {
		target, ok := a.elements.Element(id)
		if !ok {
			a.logger.Debug("element not found, skipping counter", "element", id)
			continue
		}
		tasks[id] = a.AnimateNumber(id, target, 0, v, a.duration)
	}
	return tasks
}

// AnimateNumber counts target from start to end over duration.
func (a *Animator) AnimateNumber(id string, target Target, start, end int64, duration time.Duration) *Task {
	t := &Task{
		ID:       id,
		Start:    start,
		End:      end,
		Duration: duration,
		target:   target,
		format:   a.format,
		frames:   a.frames,
		current:  start,
	}
	a.frames.RequestFrame(t.step)
	return t
}
