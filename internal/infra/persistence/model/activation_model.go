package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivationModel is the GORM-specific struct for the 'activations' table.
// The unique index on barcode_item_id backs the one-activation-per-barcode rule.
type ActivationModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	BarcodeItemID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	BarcodeItem   *BarcodeItemModel `gorm:"foreignKey:BarcodeItemID"`
	CustomerID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Customer      *CustomerModel    `gorm:"foreignKey:CustomerID"`
	DealerID      *uuid.UUID        `gorm:"type:uuid;index"`
	Dealer        *DealerModel      `gorm:"foreignKey:DealerID"`
	ProductID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Product       *ProductModel     `gorm:"foreignKey:ProductID"`
	StaffID       *uuid.UUID        `gorm:"type:uuid;index"`
	PointsAwarded int               `gorm:"not null"`
	CreatedAt     time.Time         `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivationModel) TableName() string {
	return "activations"
}

// BeforeCreate assigns the primary key.
func (m *ActivationModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// AuditLogModel is the GORM-specific struct for the append-only 'audit_logs' table.
type AuditLogModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Action     string            `gorm:"type:varchar(64);not null;index"`
	EntityType string            `gorm:"type:varchar(64);not null;index"`
	EntityID   string            `gorm:"type:varchar(64);not null"`
	UserID     *uuid.UUID        `gorm:"type:uuid;index"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time         `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// BeforeCreate assigns the primary key.
func (m *AuditLogModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
