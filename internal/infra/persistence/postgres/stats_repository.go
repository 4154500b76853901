package postgres

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) CountActivations(ctx context.Context, since *time.Time, dealerID *uuid.UUID) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ActivationModel{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	if dealerID != nil {
		query = query.Where("dealer_id = ?", *dealerID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

func (repo *statsRepository) CountUniqueCustomers(ctx context.Context, dealerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ActivationModel{}).
		Where("dealer_id = ?", dealerID).
		Distinct("customer_id").
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

func (repo *statsRepository) TopDealers(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	var dealerModels []*model.DealerModel
	if err := repo.db.WithContext(ctx).
		Order("points DESC").
		Order("code ASC").
		Limit(limit).
		Find(&dealerModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(dealerModels))
	for _, dealerM := range dealerModels {
		entries = append(entries, entity.LeaderboardEntry{
			ID:     dealerM.ID,
			Code:   dealerM.Code,
			Name:   dealerM.Name,
			Phone:  dealerM.Phone,
			Points: dealerM.Points,
		})
	}

	return entries, nil
}

func (repo *statsRepository) TopCustomers(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	var customerModels []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Order("points DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&customerModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(customerModels))
	for _, customerM := range customerModels {
		entries = append(entries, entity.LeaderboardEntry{
			ID:     customerM.ID,
			Name:   customerM.Name,
			Phone:  customerM.Phone,
			Points: customerM.Points,
		})
	}

	return entries, nil
}

type dailyCountRow struct {
	Day   string
	Count int64
}

// DailyActivations buckets by DATE(created_at), which both PostgreSQL and SQLite support.
func (repo *statsRepository) DailyActivations(ctx context.Context, since time.Time) ([]entity.DailyCount, error) {
	var rows []dailyCountRow
	if err := repo.db.WithContext(ctx).
		Model(&model.ActivationModel{}).
		Select("CAST(DATE(created_at) AS TEXT) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	counts := make([]entity.DailyCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.DailyCount{Date: normalizeDay(row.Day), Count: row.Count})
	}

	return counts, nil
}

// normalizeDay trims any time suffix a driver adds to a DATE value.
func normalizeDay(day string) string {
	if len(day) > len(time.DateOnly) {
		return day[:len(time.DateOnly)]
	}

	return day
}
