package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Points    int64     `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// BeforeCreate assigns the primary key.
func (m *CustomerModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// DealerModel is the GORM-specific struct for the 'dealers' table.
type DealerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	ShopName  string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(20);not null;index"`
	Address   string    `gorm:"type:text"`
	Points    int64     `gorm:"not null;index"`
	Status    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealerModel) TableName() string {
	return "dealers"
}

// BeforeCreate assigns the primary key.
func (m *DealerModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
