// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// OTPLength is the number of digits in a one-time code.
	OTPLength = 6
	// OTPTTL is how long an issued challenge stays valid.
	OTPTTL = 5 * time.Minute
)

// UserAccount is an OTP-authenticated member account. It links to exactly one
// Customer (role CUSTOMER) or one Dealer (role DEALER).
type UserAccount struct {
	ID         uuid.UUID
	Phone      string // Unique, the login identity.
	Role       Role
	CustomerID *uuid.UUID
	DealerID   *uuid.UUID
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StaffUser is a password-authenticated ADMIN or STAFF operator.
type StaffUser struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string // bcrypt hash, never exposed.
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OTPChallenge is a one-time code issued to a phone number.
type OTPChallenge struct {
	ID        uuid.UUID
	Phone     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsValidAt reports whether the challenge can still be consumed at t.
func (c *OTPChallenge) IsValidAt(t time.Time) bool {
	return !c.Used && t.Before(c.ExpiresAt)
}

// RefreshToken represents a long-lived, rotatable session credential.
// Exactly one of UserAccountID and StaffUserID is set.
type RefreshToken struct {
	ID            uuid.UUID
	TokenHash     string // SHA-256 hash of the raw token; the raw token is only ever held by the client.
	UserAccountID *uuid.UUID
	StaffUserID   *uuid.UUID
	ExpiresAt     time.Time
	Revoked       bool
	CreatedAt     time.Time
}

// IsUsableAt reports whether the token may be redeemed at t.
func (t *RefreshToken) IsUsableAt(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// Subject returns the owner of the token.
func (t *RefreshToken) Subject() Subject {
	if t.StaffUserID != nil {
		return Subject{Kind: SubjectStaff, ID: *t.StaffUserID}
	}
	if t.UserAccountID != nil {
		return Subject{Kind: SubjectAccount, ID: *t.UserAccountID}
	}

	return Subject{}
}

// SubjectKind distinguishes the two credential owners.
type SubjectKind string

const (
	SubjectStaff   SubjectKind = "staff"
	SubjectAccount SubjectKind = "account"
)

// Subject identifies the owner of a session.
type Subject struct {
	Kind SubjectKind
	ID   uuid.UUID
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	SubjectID  uuid.UUID
	Role       Role
	Username   string
	Phone      string
	CustomerID *uuid.UUID
	DealerID   *uuid.UUID
}

// PrincipalFromStaff builds a principal for a staff user.
func PrincipalFromStaff(u *StaffUser) Principal {
	return Principal{
		SubjectID: u.ID,
		Role:      u.Role,
		Username:  u.Username,
	}
}

// PrincipalFromAccount builds a principal for a member account.
func PrincipalFromAccount(a *UserAccount) Principal {
	return Principal{
		SubjectID:  a.ID,
		Role:       a.Role,
		Phone:      a.Phone,
		CustomerID: a.CustomerID,
		DealerID:   a.DealerID,
	}
}
