package ui

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library_landing/internal/animator"
	"library_landing/internal/domain"
	"library_landing/internal/scheduler"
)

func TestHeadless_Play(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	frames := scheduler.NewFrames()
	store := animator.NewStore()
	anim := animator.New(store, frames, animator.Config{Duration: 30 * time.Millisecond, Locale: "en"}, logger)
	loop := scheduler.NewLoop(frames, time.Millisecond, logger)

	var out bytes.Buffer
	h := NewHeadless(&out, loop, store, anim, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, h.Play(ctx, fallbackSnapshot()))

	assert.Contains(t, out.String(), "[warning] Backend unavailable, showing demo statistics")
	assert.Equal(t, "Total Books: 1,250 | Students: 340 | Books Issued: 89 | Available: 1,161", h.Line())
	assert.Contains(t, out.String(), "\r"+h.Line()+"\n")
}

func TestHeadless_Live(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	frames := scheduler.NewFrames()
	store := animator.NewStore()
	anim := animator.New(store, frames, animator.Config{Duration: 5 * time.Millisecond}, logger)
	loop := scheduler.NewLoop(frames, time.Millisecond, logger)

	var out bytes.Buffer
	h := NewHeadless(&out, loop, store, anim, logger)

	snap := domain.Snapshot{Origin: domain.OriginLive, Stats: domain.Stats{BooksTotal: 3}}
	require.NoError(t, h.Play(context.Background(), snap))

	assert.Contains(t, out.String(), "[success] Library statistics loaded")
	assert.Equal(t, "3", store.Text(domain.ElementTotalBooks))
}
