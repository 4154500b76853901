package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	leaderboardSize = 10
	chartDays       = 30
	weekWindow      = 7 * 24 * time.Hour
	monthWindow     = 30 * 24 * time.Hour
	dayLayout       = "2006-01-02"
)

type statsService struct {
	statsRepo  repository.StatsRepository
	dealerRepo repository.DealerRepository
	logger     *slog.Logger

	now func() time.Time
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo  repository.StatsRepository
	DealerRepo repository.DealerRepository
	Logger     *slog.Logger
}

// NewStatsService creates the reporting service.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo:  params.StatsRepo,
		dealerRepo: params.DealerRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ActivationReport builds the admin dashboard. The queries are independent reads; the
// report is not a consistent snapshot.
func (srv *statsService) ActivationReport(ctx context.Context) (*entity.ActivationReport, error) {
	now := srv.now().UTC()
	today := startOfDay(now)
	weekStart := today.Add(-weekWindow)
	monthStart := today.Add(-monthWindow)

	report := &entity.ActivationReport{}
	var err error

	if report.TotalToday, err = srv.statsRepo.CountActivations(ctx, &today, nil); err != nil {
		return nil, errors.Wrap(err, "failed to count today's activations")
	}
	if report.TotalWeek, err = srv.statsRepo.CountActivations(ctx, &weekStart, nil); err != nil {
		return nil, errors.Wrap(err, "failed to count weekly activations")
	}
	if report.TotalMonth, err = srv.statsRepo.CountActivations(ctx, &monthStart, nil); err != nil {
		return nil, errors.Wrap(err, "failed to count monthly activations")
	}
	if report.TopDealers, err = srv.statsRepo.TopDealers(ctx, leaderboardSize); err != nil {
		return nil, errors.Wrap(err, "failed to rank dealers")
	}
	if report.TopCustomers, err = srv.statsRepo.TopCustomers(ctx, leaderboardSize); err != nil {
		return nil, errors.Wrap(err, "failed to rank customers")
	}

	chartStart := today.AddDate(0, 0, -(chartDays - 1))
	daily, err := srv.statsRepo.DailyActivations(ctx, chartStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group daily activations")
	}
	report.DailyActivations = fillDays(chartStart, chartDays, daily)

	srv.log(ctx).Debug("Built activation report", slog.Int64("today", report.TotalToday), slog.Int64("month", report.TotalMonth))

	return report, nil
}

// fillDays returns one entry per day from start, using zero where the query had no row.
func fillDays(start time.Time, days int, counts []entity.DailyCount) []entity.DailyCount {
	byDay := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDay[c.Date] = c.Count
	}

	out := make([]entity.DailyCount, days)
	for i := range days {
		day := start.AddDate(0, 0, i).Format(dayLayout)
		out[i] = entity.DailyCount{Date: day, Count: byDay[day]}
	}

	return out
}

// DealerReport summarises one dealer's activity.
func (srv *statsService) DealerReport(ctx context.Context, dealerID uuid.UUID) (*entity.DealerReport, error) {
	dealer, err := srv.dealerRepo.FindDealerByID(ctx, dealerID)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, domainerrors.ErrDealerNotFound
		}

		return nil, errors.Wrap(err, "failed to find dealer")
	}

	now := srv.now().UTC()
	today := startOfDay(now)
	weekStart := today.Add(-weekWindow)
	monthStart := today.Add(-monthWindow)

	report := &entity.DealerReport{TotalPoints: dealer.Points}

	if report.Total, err = srv.statsRepo.CountActivations(ctx, nil, &dealer.ID); err != nil {
		return nil, errors.Wrap(err, "failed to count dealer activations")
	}
	if report.Today, err = srv.statsRepo.CountActivations(ctx, &today, &dealer.ID); err != nil {
		return nil, errors.Wrap(err, "failed to count dealer activations today")
	}
	if report.Week, err = srv.statsRepo.CountActivations(ctx, &weekStart, &dealer.ID); err != nil {
		return nil, errors.Wrap(err, "failed to count dealer activations this week")
	}
	if report.Month, err = srv.statsRepo.CountActivations(ctx, &monthStart, &dealer.ID); err != nil {
		return nil, errors.Wrap(err, "failed to count dealer activations this month")
	}
	if report.UniqueCustomers, err = srv.statsRepo.CountUniqueCustomers(ctx, dealer.ID); err != nil {
		return nil, errors.Wrap(err, "failed to count dealer customers")
	}

	return report, nil
}
