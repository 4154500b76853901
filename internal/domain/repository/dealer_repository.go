package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for dealer persistence.
var (
	ErrDealerNotFound  = errors.New("dealer not found")
	ErrDuplicateDealer = errors.New("dealer code already exists")
)

// DealerRepository defines the interface for dealer-related database operations.
type DealerRepository interface {
	CreateDealer(ctx context.Context, dealer *entity.Dealer) error
	UpdateDealer(ctx context.Context, dealer *entity.Dealer) error
	FindDealerByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error)
	FindDealerByCode(ctx context.Context, code string) (*entity.Dealer, error)

	// FindActiveDealerByPhone retrieves the active dealer registered with phone.
	FindActiveDealerByPhone(ctx context.Context, phone string) (*entity.Dealer, error)

	// IncrementDealerPoints adds delta in the database and returns the resulting balance.
	IncrementDealerPoints(ctx context.Context, id uuid.UUID, delta int) (int64, error)

	// ListDealers returns dealers matching code, name or shop name, ordered by code.
	ListDealers(ctx context.Context, filter entity.DirectoryFilter) ([]*entity.Dealer, int64, error)
}
