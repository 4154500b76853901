package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsRepository runs read-only rollups over activations, customers and dealers.
type StatsRepository interface {
	// CountActivations counts activations created at or after since, optionally for one dealer.
	CountActivations(ctx context.Context, since *time.Time, dealerID *uuid.UUID) (int64, error)

	// CountUniqueCustomers counts distinct customers credited through the dealer.
	CountUniqueCustomers(ctx context.Context, dealerID uuid.UUID) (int64, error)

	TopDealers(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	TopCustomers(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)

	// DailyActivations groups activations created at or after since by calendar day (UTC).
	// Days without activations are omitted.
	DailyActivations(ctx context.Context, since time.Time) ([]entity.DailyCount, error)
}
