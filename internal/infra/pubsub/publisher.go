package pubsub

import (
	"context"
	"log/slog"

	"loyalty/internal/domain/service"
)

// transport delivers one serialised message.
type transport interface {
	send(ctx context.Context, msg *message) error
	Close() error
}

// eventPublisher implements service.EventPublisher on top of a transport.
type eventPublisher struct {
	transport transport
	logger    *slog.Logger
}

func newEventPublisher(t transport, logger *slog.Logger) *eventPublisher {
	return &eventPublisher{transport: t, logger: logger}
}

func (p *eventPublisher) PublishOTPRequested(ctx context.Context, event *service.OTPRequestedEvent) error {
	msg, err := newMessage(service.EventTypeOTPRequested, event.RequestID, event)
	if err != nil {
		return err
	}

	return p.transport.send(ctx, msg)
}

func (p *eventPublisher) PublishActivationCreated(ctx context.Context, event *service.ActivationCreatedEvent) error {
	msg, err := newMessage(service.EventTypeActivationCreated, event.RequestID, event)
	if err != nil {
		return err
	}

	return p.transport.send(ctx, msg)
}

func (p *eventPublisher) Close() error {
	return p.transport.Close()
}
