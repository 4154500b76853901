package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsUsecase builds read-only dashboards.
type StatsUsecase interface {
	ActivationReport(ctx context.Context) (*entity.ActivationReport, error)
	DealerReport(ctx context.Context, dealerID uuid.UUID) (*entity.DealerReport, error)
}
