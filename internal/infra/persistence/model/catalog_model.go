package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key.
func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// BarcodeItemModel is the GORM-specific struct for the 'barcode_items' table.
type BarcodeItemModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Code        string        `gorm:"type:varchar(64);not null;uniqueIndex"`
	ProductID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	Product     *ProductModel `gorm:"foreignKey:ProductID"`
	Status      string        `gorm:"type:varchar(16);not null;index"`
	CreatedByID *uuid.UUID    `gorm:"type:uuid"`
	UsedByID    *uuid.UUID    `gorm:"type:uuid"`
	ActivatedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BarcodeItemModel) TableName() string {
	return "barcode_items"
}

// BeforeCreate assigns the primary key.
func (m *BarcodeItemModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
