package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDealerInput defines the data required to register a dealer.
type CreateDealerInput struct {
	Code     string
	Name     string
	ShopName string
	Phone    string
	Address  string
	ActorID  *uuid.UUID
}

// UpdateDealerInput changes a dealer's profile. Nil fields are left unchanged.
type UpdateDealerInput struct {
	ID       uuid.UUID
	Name     *string
	ShopName *string
	Phone    *string
	Address  *string
	ActorID  *uuid.UUID
}

// DealerUsecase defines dealer directory operations.
type DealerUsecase interface {
	// LookupDealer resolves an active dealer by code. Inactive dealers are reported as not found.
	LookupDealer(ctx context.Context, code string) (*entity.Dealer, error)
	DealerQRCode(ctx context.Context, code string) ([]byte, error)

	CreateDealer(ctx context.Context, input *CreateDealerInput) (*entity.Dealer, error)
	UpdateDealer(ctx context.Context, input *UpdateDealerInput) (*entity.Dealer, error)
	DeactivateDealer(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*entity.Dealer, error)
	ListDealers(ctx context.Context, filter entity.DirectoryFilter) (*Page[*entity.Dealer], error)
}
