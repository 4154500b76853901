package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers the device or refreshes its token, keyed by customer and device id.
	UpsertDevice(ctx context.Context, device *entity.CustomerDevice) error

	// FindActiveDevicesByCustomer retrieves all active devices for a customer.
	FindActiveDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// DeactivateDevice disables one of the customer's devices.
	DeactivateDevice(ctx context.Context, id, customerID uuid.UUID) error

	// DeactivateDevicesByToken disables every device holding an FCM token rejected by the push provider.
	DeactivateDevicesByToken(ctx context.Context, fcmTokens []string) error
}
