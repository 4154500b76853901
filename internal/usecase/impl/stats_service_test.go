package impl

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	mockRepo "loyalty/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statsServiceFixtures struct {
	service    *statsService
	statsRepo  *mockRepo.MockStatsRepository
	dealerRepo *mockRepo.MockDealerRepository
}

func createTestStatsService(t *testing.T, now time.Time) statsServiceFixtures {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	dealerRepo := mockRepo.NewMockDealerRepository(t)

	service := NewStatsService(StatsServiceParams{
		StatsRepo:  statsRepo,
		DealerRepo: dealerRepo,
		Logger:     newDiscardLogger(),
	}).(*statsService)
	service.now = func() time.Time { return now }

	return statsServiceFixtures{service: service, statsRepo: statsRepo, dealerRepo: dealerRepo}
}

func timeArg(want time.Time) any {
	return mock.MatchedBy(func(got *time.Time) bool { return got != nil && got.Equal(want) })
}

func TestStatsService_ActivationReport(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 4, 5, 0, time.UTC)
	fx := createTestStatsService(t, now)
	ctx := context.Background()

	today := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	fx.statsRepo.EXPECT().CountActivations(ctx, timeArg(today), (*uuid.UUID)(nil)).Return(int64(2), nil)
	fx.statsRepo.EXPECT().CountActivations(ctx, timeArg(today.AddDate(0, 0, -7)), (*uuid.UUID)(nil)).Return(int64(9), nil)
	fx.statsRepo.EXPECT().CountActivations(ctx, timeArg(today.AddDate(0, 0, -30)), (*uuid.UUID)(nil)).Return(int64(31), nil)
	fx.statsRepo.EXPECT().TopDealers(ctx, 10).Return([]entity.LeaderboardEntry{{Code: "DL001", Points: 12}}, nil)
	fx.statsRepo.EXPECT().TopCustomers(ctx, 10).Return([]entity.LeaderboardEntry{{Name: "A", Points: 5}}, nil)
	fx.statsRepo.EXPECT().
		DailyActivations(ctx, today.AddDate(0, 0, -29)).
		Return([]entity.DailyCount{{Date: "2026-04-21", Count: 4}, {Date: "2026-05-20", Count: 2}}, nil)

	report, err := fx.service.ActivationReport(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, report.TotalToday)
	assert.EqualValues(t, 9, report.TotalWeek)
	assert.EqualValues(t, 31, report.TotalMonth)
	assert.Len(t, report.TopDealers, 1)
	assert.Len(t, report.TopCustomers, 1)

	require.Len(t, report.DailyActivations, 30)
	assert.Equal(t, entity.DailyCount{Date: "2026-04-21", Count: 4}, report.DailyActivations[0])
	assert.Equal(t, entity.DailyCount{Date: "2026-04-22", Count: 0}, report.DailyActivations[1])
	assert.Equal(t, entity.DailyCount{Date: "2026-05-20", Count: 2}, report.DailyActivations[29])
}

func TestStatsService_ActivationReport_RepositoryError(t *testing.T) {
	fx := createTestStatsService(t, time.Now())

	fx.statsRepo.EXPECT().CountActivations(mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	_, err := fx.service.ActivationReport(context.Background())
	assert.Error(t, err)
}

func TestStatsService_DealerReport(t *testing.T) {
	now := time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC)
	fx := createTestStatsService(t, now)
	ctx := context.Background()

	dealer := &entity.Dealer{ID: uuid.New(), Code: "DL001", Points: 42, Status: entity.DealerActive}
	today := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

	fx.dealerRepo.EXPECT().FindDealerByID(ctx, dealer.ID).Return(dealer, nil)
	fx.statsRepo.EXPECT().CountActivations(ctx, (*time.Time)(nil), &dealer.ID).Return(int64(42), nil)
	fx.statsRepo.EXPECT().CountActivations(ctx, timeArg(today), &dealer.ID).Return(int64(1), nil)
	fx.statsRepo.EXPECT().CountActivations(ctx, timeArg(today.AddDate(0, 0, -7)), &dealer.ID).Return(int64(6), nil)
	fx.statsRepo.EXPECT().CountActivations(ctx, timeArg(today.AddDate(0, 0, -30)), &dealer.ID).Return(int64(20), nil)
	fx.statsRepo.EXPECT().CountUniqueCustomers(ctx, dealer.ID).Return(int64(17), nil)

	report, err := fx.service.DealerReport(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DealerReport{Total: 42, Today: 1, Week: 6, Month: 20, UniqueCustomers: 17, TotalPoints: 42}, *report)
}

func TestStatsService_DealerReport_UnknownDealer(t *testing.T) {
	fx := createTestStatsService(t, time.Now())
	id := uuid.New()

	fx.dealerRepo.EXPECT().FindDealerByID(mock.Anything, id).Return(nil, repository.ErrDealerNotFound)

	_, err := fx.service.DealerReport(context.Background(), id)
	assert.True(t, errors.Is(err, domainerrors.ErrDealerNotFound))
}
