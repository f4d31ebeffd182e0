package service

import (
	"context"
	"log/slog"
	"time"

	"library_landing/internal/domain"
)

// StatsAcquirer produces the statistics to display. It never fails: every
// problem on the way to the backend ends in the fallback figures.
type StatsAcquirer struct {
	source    StatsSource
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewStatsAcquirer(source StatsSource, publisher Publisher, logger *slog.Logger) *StatsAcquirer {
	return &StatsAcquirer{
		source:    source,
		publisher: publisher,
		logger:    logger.With("base_url", source.BaseURL()),
		now:       time.Now,
	}
}

func (a *StatsAcquirer) Acquire(ctx context.Context) domain.Snapshot {
	snapshot := a.acquire(ctx)

	a.logger.Info("statistics acquired",
		"origin", snapshot.Origin,
		"books_total", snapshot.Stats.BooksTotal,
		"students_total", snapshot.Stats.StudentsTotal,
		"books_issued", snapshot.Stats.BooksIssued,
		"books_available", snapshot.Stats.BooksAvailable,
	)

	if a.publisher != nil {
		if err := a.publisher.Publish(ctx, &snapshot); err != nil {
			a.logger.Warn("failed to publish snapshot", "error", err)
		}
	}

	return snapshot
}

func (a *StatsAcquirer) acquire(ctx context.Context) domain.Snapshot {
	if !a.source.Available(ctx) {
		a.logger.Info("using demo data for statistics")
		return a.fallback()
	}

	stats, err := a.source.FetchStats(ctx)
	if err != nil {
		a.logger.Warn("error fetching stats, using demo data", "error", err)
		return a.fallback()
	}

	return domain.Snapshot{
		Stats:      stats,
		Origin:     domain.OriginLive,
		AcquiredAt: a.now(),
	}
}

func (a *StatsAcquirer) fallback() domain.Snapshot {
	return domain.Snapshot{
		Stats:      domain.FallbackStats(),
		Origin:     domain.OriginFallback,
		AcquiredAt: a.now(),
	}
}
