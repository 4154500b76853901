package impl

import (
	"context"
	"testing"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	mockRepo "loyalty/internal/mocks/repository"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.CustomerDevice")).
		RunAndReturn(func(_ context.Context, device *entity.CustomerDevice) error {
			device.ID = uuid.New()

			return nil
		})

	device, err := fx.service.RegisterDevice(ctx, customerID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, customerID, device.CustomerID)
	assert.Equal(t, "test-fcm-token", device.FCMToken)
	assert.Equal(t, "device-123", device.DeviceID)
	assert.Equal(t, "ios", device.Platform)
	assert.True(t, device.IsActive)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestDeviceService(t)

	inputs := []*usecase.DeviceInfo{
		{DeviceID: "d", Platform: "ios"},
		{FCMToken: "t", Platform: "ios"},
		{FCMToken: "t", DeviceID: "d", Platform: "symbian"},
	}
	for _, info := range inputs {
		_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), info)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "%+v", info)
	}
}

func TestDeviceService_RegisterDevice_UnknownCustomer(t *testing.T) {
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(repository.ErrDeviceNotFound)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "android"})
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, deviceID, customerID).Return(nil).Once()
	require.NoError(t, fx.service.UnregisterDevice(ctx, customerID, deviceID))

	otherDevice := uuid.New()
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, otherDevice, customerID).Return(repository.ErrDeviceNotFound).Once()
	err := fx.service.UnregisterDevice(ctx, customerID, otherDevice)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}
