package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointsPerActivation is awarded to the customer, and to the dealer when one is credited.
const PointsPerActivation = 1

// Activation is the immutable record of one barcode redemption.
type Activation struct {
	ID            uuid.UUID
	BarcodeItemID uuid.UUID
	CustomerID    uuid.UUID
	DealerID      *uuid.UUID
	ProductID     uuid.UUID // Denormalised from the barcode.
	StaffID       *uuid.UUID
	PointsAwarded int
	CreatedAt     time.Time
}

// ActivationRecord is an activation joined with the display fields used by listings.
type ActivationRecord struct {
	Activation
	BarcodeCode   string
	ProductName   string
	ProductSKU    string
	CustomerName  string
	CustomerPhone string
	DealerCode    *string
	DealerName    *string
}

// ActivationFilter narrows activation listings. Zero values mean "no filter".
type ActivationFilter struct {
	CustomerID *uuid.UUID
	DealerID   *uuid.UUID
	StaffID    *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string // Matches product name, barcode, customer name or phone.
	Skip       int
	Take       int
}
