package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
)

// CustomerDetail is a customer with its most recent activations.
type CustomerDetail struct {
	Customer    *entity.Customer
	Activations []*entity.ActivationRecord
}

// CustomerUsecase defines customer directory operations.
type CustomerUsecase interface {
	CustomerByPhone(ctx context.Context, phone string) (*CustomerDetail, error)
	ListCustomers(ctx context.Context, filter entity.DirectoryFilter) (*Page[*entity.Customer], error)
}
