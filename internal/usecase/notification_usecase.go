package usecase

import (
	"context"

	"loyalty/internal/domain/service"
)

// NotificationUsecase handles events delivered to the notifier worker.
type NotificationUsecase interface {
	// DeliverOTP hands the code to the SMS gateway.
	DeliverOTP(ctx context.Context, event *service.OTPRequestedEvent) error

	// NotifyActivation pushes a "points credited" message to the customer's devices
	// and deactivates tokens the push provider rejected.
	NotifyActivation(ctx context.Context, event *service.ActivationCreatedEvent) error
}
