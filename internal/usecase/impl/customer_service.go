package impl

import (
	"context"
	"strings"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
)

const customerRecentActivations = 50

type customerService struct {
	customerRepo   repository.CustomerRepository
	activationRepo repository.ActivationRepository
}

// NewCustomerService creates the customer directory service.
func NewCustomerService(customerRepo repository.CustomerRepository, activationRepo repository.ActivationRepository) usecase.CustomerUsecase {
	return &customerService{
		customerRepo:   customerRepo,
		activationRepo: activationRepo,
	}
}

// CustomerByPhone returns the customer and its most recent activations.
func (s *customerService) CustomerByPhone(ctx context.Context, phone string) (*usecase.CustomerDetail, error) {
	phone = entity.NormalizePhone(phone)
	if !entity.IsValidPhone(phone) {
		return nil, domainerrors.ErrInvalidPhone.WithDetails(phone)
	}

	customer, err := s.customerRepo.FindCustomerByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithDetails(phone)
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	activations, _, err := s.activationRepo.ListActivations(ctx, entity.ActivationFilter{
		CustomerID: &customer.ID,
		Take:       customerRecentActivations,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer activations")
	}

	return &usecase.CustomerDetail{Customer: customer, Activations: activations}, nil
}

// ListCustomers returns customers ordered by points, highest first.
func (s *customerService) ListCustomers(ctx context.Context, filter entity.DirectoryFilter) (*usecase.Page[*entity.Customer], error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Skip, filter.Take = normalizePage(filter.Skip, filter.Take)

	items, total, err := s.customerRepo.ListCustomers(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return &usecase.Page[*entity.Customer]{Items: items, Total: total, Skip: filter.Skip, Take: filter.Take}, nil
}
