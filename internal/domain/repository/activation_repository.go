package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for activation persistence.
var (
	// ErrDuplicateActivation is returned when a barcode already has an activation.
	ErrDuplicateActivation = errors.New("activation already exists for barcode")
	// ErrActivationNotFound is returned when no activation matches the lookup.
	ErrActivationNotFound = errors.New("activation not found")
)

// ActivationRepository defines the interface for activation records.
type ActivationRepository interface {
	CreateActivation(ctx context.Context, activation *entity.Activation) error

	// FindActivationByID retrieves one activation with its display fields.
	FindActivationByID(ctx context.Context, id uuid.UUID) (*entity.ActivationRecord, error)

	// ListActivations returns activations newest first, with the total matching the filter.
	ListActivations(ctx context.Context, filter entity.ActivationFilter) ([]*entity.ActivationRecord, int64, error)
}
