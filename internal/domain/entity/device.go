package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDevice is a customer's device registered for push notifications.
type CustomerDevice struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	FCMToken   string    `json:"fcm_token"`
	DeviceID   string    `json:"device_id"` // Client-supplied identifier, unique per customer.
	Platform   string    `json:"platform"`  // ios, android, web
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
