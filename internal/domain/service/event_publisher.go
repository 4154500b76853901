package service

import (
	"context"
)

// Event types carried in the pub/sub message attributes.
const (
	EventTypeOTPRequested      = "otp.requested"
	EventTypeActivationCreated = "activation.created"
)

// OTPRequestedEvent asks the notifier to deliver a one-time code by SMS.
type OTPRequestedEvent struct {
	RequestID string `json:"request_id,omitempty"`
	Phone     string `json:"phone"`
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in"` // Seconds.
}

// ActivationCreatedEvent is emitted after an activation commits.
type ActivationCreatedEvent struct {
	RequestID         string `json:"request_id,omitempty"`
	ActivationID      string `json:"activation_id"`
	Barcode           string `json:"barcode"`
	ProductName       string `json:"product_name"`
	ProductSKU        string `json:"product_sku"`
	CustomerID        string `json:"customer_id"`
	CustomerName      string `json:"customer_name"`
	CustomerPhone     string `json:"customer_phone"`
	CustomerPoints    int64  `json:"customer_points"`
	DealerID          string `json:"dealer_id,omitempty"`
	DealerCode        string `json:"dealer_code,omitempty"`
	DealerPoints      *int64 `json:"dealer_points,omitempty"`
	ActivatedAtMillis int64  `json:"activated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishOTPRequested(ctx context.Context, event *OTPRequestedEvent) error
	PublishActivationCreated(ctx context.Context, event *ActivationCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// ActivationBroadcaster fans new activations out to live dashboard subscribers.
type ActivationBroadcaster interface {
	BroadcastActivation(event *ActivationCreatedEvent)
}
