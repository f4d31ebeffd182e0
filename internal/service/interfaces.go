package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"library_landing/internal/domain"
)

type StatsSource interface {
	BaseURL() string
	Available(ctx context.Context) bool
	FetchStats(ctx context.Context) (domain.Stats, error)
}

type Publisher interface {
	Publish(ctx context.Context, snapshot *domain.Snapshot) error
	Close() error
}
