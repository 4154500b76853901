package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names a sensitive state change.
type AuditAction string

const (
	AuditActivationCreated AuditAction = "ACTIVATION_CREATED"
	AuditBarcodeCreated    AuditAction = "BARCODE_CREATED"
	AuditBarcodeScannedAdd AuditAction = "BARCODE_SCANNED_ADD"
	AuditLogin             AuditAction = "LOGIN"
	AuditOTPRequested      AuditAction = "OTP_REQUESTED"
	AuditTokenRefreshed    AuditAction = "TOKEN_REFRESHED"
	AuditLogout            AuditAction = "LOGOUT"
	AuditDealerCreated     AuditAction = "DEALER_CREATED"
	AuditDealerUpdated     AuditAction = "DEALER_UPDATED"
	AuditDealerDeactivated AuditAction = "DEALER_DEACTIVATED"
	AuditProductCreated    AuditAction = "PRODUCT_CREATED"
)

// Audit entity types.
const (
	AuditEntityActivation  = "Activation"
	AuditEntityBarcode     = "BarcodeItem"
	AuditEntityUserAccount = "UserAccount"
	AuditEntityStaffUser   = "StaffUser"
	AuditEntityOTP         = "OtpChallenge"
	AuditEntityDealer      = "Dealer"
	AuditEntityProduct     = "Product"
)

// AuditLogEntry is an append-only record. Entries are never updated or deleted.
type AuditLogEntry struct {
	ID         uuid.UUID
	Action     AuditAction
	EntityType string
	EntityID   string
	UserID     *uuid.UUID
	Metadata   map[string]any
	CreatedAt  time.Time
}

// AuditFilter narrows audit listings.
type AuditFilter struct {
	Action     AuditAction
	EntityType string
	Skip       int
	Take       int
}
