package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	ErrUserAccountNotFound  = errors.New("user account not found")
	ErrDuplicateUserAccount = errors.New("user account already exists")
	ErrStaffUserNotFound    = errors.New("staff user not found")
	ErrDuplicateStaffUser   = errors.New("staff username already exists")
)

// UserAccountRepository stores OTP-authenticated member accounts.
type UserAccountRepository interface {
	CreateUserAccount(ctx context.Context, account *entity.UserAccount) error
	FindUserAccountByID(ctx context.Context, id uuid.UUID) (*entity.UserAccount, error)
	FindUserAccountByPhone(ctx context.Context, phone string) (*entity.UserAccount, error)
}

// StaffUserRepository stores password-authenticated staff.
type StaffUserRepository interface {
	CreateStaffUser(ctx context.Context, user *entity.StaffUser) error
	FindStaffUserByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error)
	FindStaffUserByUsername(ctx context.Context, username string) (*entity.StaffUser, error)
}
