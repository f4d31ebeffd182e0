package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"library_landing/internal/domain"
	"library_landing/internal/service/mocks"
)

type StatsAcquirerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockStatsSource
	publisher *mocks.MockPublisher

	acquirer *StatsAcquirer
	logger   *slog.Logger
	now      time.Time
}

func (s *StatsAcquirerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockStatsSource(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.source.EXPECT().BaseURL().Return("http://localhost:5000").AnyTimes()

	s.acquirer = NewStatsAcquirer(s.source, s.publisher, s.logger)
	s.acquirer.now = func() time.Time { return s.now }
}

func (s *StatsAcquirerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatsAcquirerTestSuite(t *testing.T) {
	suite.Run(t, new(StatsAcquirerTestSuite))
}

func (s *StatsAcquirerTestSuite) TestAcquire_Live() {
	ctx := context.Background()
	live := domain.Stats{BooksTotal: 2000, StudentsTotal: 512, BooksIssued: 120, BooksAvailable: 1880}

	s.source.EXPECT().Available(ctx).Return(true)
	s.source.EXPECT().FetchStats(ctx).Return(live, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, snap *domain.Snapshot) error {
			s.Equal(domain.OriginLive, snap.Origin)
			return nil
		},
	)

	snap := s.acquirer.Acquire(ctx)

	s.Equal(domain.OriginLive, snap.Origin)
	s.Equal(live, snap.Stats)
	s.Equal(s.now, snap.AcquiredAt)
}

func (s *StatsAcquirerTestSuite) TestAcquire_UnavailableSkipsFetch() {
	ctx := context.Background()

	s.source.EXPECT().Available(ctx).Return(false)
	s.source.EXPECT().FetchStats(gomock.Any()).Times(0)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	snap := s.acquirer.Acquire(ctx)

	s.Equal(domain.OriginFallback, snap.Origin)
	s.Equal(domain.FallbackStats(), snap.Stats)
}

func (s *StatsAcquirerTestSuite) TestAcquire_FetchError() {
	ctx := context.Background()

	s.source.EXPECT().Available(ctx).Return(true)
	s.source.EXPECT().FetchStats(ctx).Return(domain.Stats{}, errors.New("unexpected status: 500"))
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	snap := s.acquirer.Acquire(ctx)

	s.Equal(domain.OriginFallback, snap.Origin)
	s.Equal(domain.FallbackStats(), snap.Stats)
}

func (s *StatsAcquirerTestSuite) TestAcquire_PublishErrorIgnored() {
	ctx := context.Background()

	s.source.EXPECT().Available(ctx).Return(false)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("channel closed"))

	snap := s.acquirer.Acquire(ctx)

	s.Equal(domain.FallbackStats(), snap.Stats)
}

func (s *StatsAcquirerTestSuite) TestAcquire_PublisherNil() {
	ctx := context.Background()

	acquirer := NewStatsAcquirer(s.source, nil, s.logger)

	s.source.EXPECT().Available(ctx).Return(false)

	snap := acquirer.Acquire(ctx)

	s.Equal(domain.OriginFallback, snap.Origin)
}
