package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"
	"loyalty/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	activationPushTitle = "Points credited"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	smsSender       service.SMSSender
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	SMSSender       service.SMSSender
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		smsSender:       params.SMSSender,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DeliverOTP hands the code to the SMS gateway.
func (s *notificationService) DeliverOTP(ctx context.Context, event *service.OTPRequestedEvent) error {
	if !entity.IsValidPhone(event.Phone) || event.Code == "" {
		return domainerrors.ErrBadRequest.WithDetails("otp event must carry a valid phone and code")
	}

	minutes := event.ExpiresIn / 60
	if minutes < 1 {
		minutes = 1
	}
	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", event.Code, minutes)

	if err := s.smsSender.Send(ctx, event.Phone, message); err != nil {
		return errors.Wrap(err, "failed to send otp sms")
	}

	s.log(ctx).Info("OTP delivered", slog.String("phone", util.MaskPhone(event.Phone)))

	return nil
}

// NotifyActivation pushes a "points credited" message to the customer's devices.
func (s *notificationService) NotifyActivation(ctx context.Context, event *service.ActivationCreatedEvent) error {
	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return domainerrors.ErrBadRequest.WithDetails("activation event has an invalid customer id")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}

	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	body := fmt.Sprintf("%s activated. You now have %d points.", event.ProductName, event.CustomerPoints)
	data := map[string]string{
		"type":            service.EventTypeActivationCreated,
		"activation_id":   event.ActivationID,
		"barcode":         event.Barcode,
		"customer_points": strconv.FormatInt(event.CustomerPoints, 10),
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
		lastErr       error
	)

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, batch, activationPushTitle, body, data)
		if err != nil {
			// Keep going with the remaining batches.
			totalFailed += len(batch)
			lastErr = err

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateDevicesByToken(ctx, invalidTokens); err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid devices", slog.Any("error", err))
		}
	}

	s.log(ctx).Info("Activation push sent",
		slog.String("activation_id", event.ActivationID),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if totalSent == 0 && lastErr != nil {
		return errors.Wrap(lastErr, "failed to send activation push")
	}

	return nil
}
