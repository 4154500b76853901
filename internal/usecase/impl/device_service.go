package impl

import (
	"context"
	"strings"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var devicePlatforms = map[string]bool{
	"ios":     true,
	"android": true,
	"web":     true,
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.CustomerDevice, error) {
	platform := strings.ToLower(strings.TrimSpace(deviceInfo.Platform))
	switch {
	case strings.TrimSpace(deviceInfo.FCMToken) == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm token is required")
	case strings.TrimSpace(deviceInfo.DeviceID) == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("device id is required")
	case !devicePlatforms[platform]:
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}

	device := &entity.CustomerDevice{
		CustomerID: customerID,
		FCMToken:   strings.TrimSpace(deviceInfo.FCMToken),
		DeviceID:   strings.TrimSpace(deviceInfo.DeviceID),
		Platform:   platform,
		IsActive:   true,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// UnregisterDevice deactivates a device (soft delete)
func (s *deviceService) UnregisterDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID, customerID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
