package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAccountModel mirrors the 'user_accounts' table of OTP-authenticated members.
type UserAccountModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone      string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	Role       string     `gorm:"type:varchar(16);not null"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	DealerID   *uuid.UUID `gorm:"type:uuid;index"`
	Active     bool       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAccountModel) TableName() string {
	return "user_accounts"
}

// BeforeCreate assigns the primary key.
func (m *UserAccountModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// StaffUserModel mirrors the 'staff_users' table.
type StaffUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	Active       bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffUserModel) TableName() string {
	return "staff_users"
}

// BeforeCreate assigns the primary key.
func (m *StaffUserModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// OTPChallengeModel mirrors the 'otp_challenges' table.
type OTPChallengeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"type:varchar(20);not null;index:idx_otp_phone_used"`
	Code      string    `gorm:"type:varchar(8);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;index:idx_otp_phone_used"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OTPChallengeModel) TableName() string {
	return "otp_challenges"
}

// BeforeCreate assigns the primary key.
func (m *OTPChallengeModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Exactly one owner column is set.
type RefreshTokenModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TokenHash     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserAccountID *uuid.UUID `gorm:"type:uuid;index"`
	StaffUserID   *uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt     time.Time  `gorm:"not null"`
	Revoked       bool       `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// BeforeCreate assigns the primary key.
func (m *RefreshTokenModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
