package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"library_landing/internal/animator"
	"library_landing/internal/domain"
	"library_landing/internal/scheduler"
)

// Headless plays the counter animation on a plain writer, rewriting a
// single line per frame. It is used when stdout is not a terminal.
type Headless struct {
	out      io.Writer
	loop     *scheduler.Loop
	store    *animator.Store
	animator *animator.Animator
	logger   *slog.Logger
}

func NewHeadless(out io.Writer, loop *scheduler.Loop, store *animator.Store, anim *animator.Animator, logger *slog.Logger) *Headless {
	for _, c := range statCards {
		store.Add(c.element, "0")
	}
	return &Headless{
		out:      out,
		loop:     loop,
		store:    store,
		animator: anim,
		logger:   logger,
	}
}

// Play animates the snapshot to completion or until ctx is cancelled.
func (h *Headless) Play(ctx context.Context, snap domain.Snapshot) error {
	level, message := noticeFor(snap.Origin)
	if _, err := fmt.Fprintf(h.out, "[%s] %s\n", level, message); err != nil {
		return fmt.Errorf("write notice: %w", err)
	}

	h.animator.Animate(snap.Stats.Counters())

	var werr error
	h.loop.OnFrame(func(_ time.Time) {
		if werr == nil {
			_, werr = fmt.Fprint(h.out, "\r"+h.Line())
		}
	})

	if err := h.loop.Run(ctx); err != nil {
		return err
	}
	if werr != nil {
		return fmt.Errorf("write frame: %w", werr)
	}

	h.logger.Debug("headless animation finished", "origin", snap.Origin)

	_, err := fmt.Fprintln(h.out)
	return err
}

// Line renders the four counters as they currently stand.
func (h *Headless) Line() string {
	parts := make([]string, 0, len(statCards))
	for _, c := range statCards {
		parts = append(parts, c.label+": "+h.store.Text(c.element))
	}
	return strings.Join(parts, " | ")
}
