package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// UpsertCustomerByPhone creates the customer with zero points or, when the phone
	// already exists, updates its display name. Phone is never changed.
	UpsertCustomerByPhone(ctx context.Context, phone, name string) (*entity.Customer, error)

	// FindOrCreateCustomerByPhone creates the customer when missing and leaves an existing
	// record untouched.
	FindOrCreateCustomerByPhone(ctx context.Context, phone, defaultName string) (*entity.Customer, error)

	// IncrementCustomerPoints adds delta in the database and returns the resulting balance.
	IncrementCustomerPoints(ctx context.Context, id uuid.UUID, delta int) (int64, error)

	// ListCustomers returns customers ordered by points, highest first.
	ListCustomers(ctx context.Context, filter entity.DirectoryFilter) ([]*entity.Customer, int64, error)
}
