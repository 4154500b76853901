package postgres

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPRepository_ConsumeOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOTPRepository(db)
	now := time.Now()

	challenge := &entity.OTPChallenge{Phone: "0912345678", Code: "123456", ExpiresAt: now.Add(entity.OTPTTL)}
	require.NoError(t, repo.CreateChallenge(ctx, challenge))

	_, err := repo.ConsumeChallenge(ctx, "0912345678", "654321", now)
	assert.ErrorIs(t, err, repository.ErrOTPNotFound)

	consumed, err := repo.ConsumeChallenge(ctx, "0912345678", "123456", now)
	require.NoError(t, err)
	assert.Equal(t, challenge.ID, consumed.ID)
	assert.True(t, consumed.Used)

	_, err = repo.ConsumeChallenge(ctx, "0912345678", "123456", now)
	assert.ErrorIs(t, err, repository.ErrOTPNotFound)
}

func TestOTPRepository_ExpiredAndInvalidated(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOTPRepository(db)
	now := time.Now()

	require.NoError(t, repo.CreateChallenge(ctx, &entity.OTPChallenge{
		Phone: "0912345678", Code: "111111", ExpiresAt: now.Add(-time.Second),
	}))
	_, err := repo.ConsumeChallenge(ctx, "0912345678", "111111", now)
	assert.ErrorIs(t, err, repository.ErrOTPNotFound)

	require.NoError(t, repo.CreateChallenge(ctx, &entity.OTPChallenge{
		Phone: "0912345678", Code: "222222", ExpiresAt: now.Add(entity.OTPTTL),
	}))
	invalidated, err := repo.InvalidateUnusedChallenges(ctx, "0912345678")
	require.NoError(t, err)
	assert.Equal(t, int64(2), invalidated)

	_, err = repo.ConsumeChallenge(ctx, "0912345678", "222222", now)
	assert.ErrorIs(t, err, repository.ErrOTPNotFound)
}

func TestRefreshTokenRepository_RevokeIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRefreshTokenRepository(db)
	staffID := uuid.New()

	token := &entity.RefreshToken{
		TokenHash:   "hash-1",
		StaffUserID: &staffID,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateRefreshToken(ctx, token))

	found, err := repo.FindRefreshTokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, entity.Subject{Kind: entity.SubjectStaff, ID: staffID}, found.Subject())

	require.NoError(t, repo.RevokeRefreshToken(ctx, token.ID))
	assert.ErrorIs(t, repo.RevokeRefreshToken(ctx, token.ID), repository.ErrRefreshTokenRevoked)

	require.NoError(t, repo.RevokeRefreshTokenByHash(ctx, "hash-1"))
	require.NoError(t, repo.RevokeRefreshTokenByHash(ctx, "unknown"))

	found, err = repo.FindRefreshTokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.True(t, found.Revoked)

	_, err = repo.FindRefreshTokenByHash(ctx, "unknown")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_FindActiveOldestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRefreshTokenRepository(db)
	accountID := uuid.New()
	subject := entity.Subject{Kind: entity.SubjectAccount, ID: accountID}
	now := time.Now()

	older := &entity.RefreshToken{TokenHash: "a", UserAccountID: &accountID, ExpiresAt: now.Add(time.Hour), CreatedAt: now.Add(-2 * time.Minute)}
	newer := &entity.RefreshToken{TokenHash: "b", UserAccountID: &accountID, ExpiresAt: now.Add(time.Hour), CreatedAt: now.Add(-time.Minute)}
	expired := &entity.RefreshToken{TokenHash: "c", UserAccountID: &accountID, ExpiresAt: now.Add(-time.Second)}
	for _, token := range []*entity.RefreshToken{older, newer, expired} {
		require.NoError(t, repo.CreateRefreshToken(ctx, token))
	}

	active, err := repo.FindActiveRefreshTokens(ctx, subject)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, older.ID, active[0].ID)
	assert.Equal(t, newer.ID, active[1].ID)

	_, err = repo.FindActiveRefreshTokens(ctx, entity.Subject{})
	assert.Error(t, err)
}

func TestAccountRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	staffRepo := NewStaffUserRepository(db)
	staff := &entity.StaffUser{Username: "admin", PasswordHash: "hash", Role: entity.RoleAdmin, Active: true}
	require.NoError(t, staffRepo.CreateStaffUser(ctx, staff))
	assert.ErrorIs(t, staffRepo.CreateStaffUser(ctx, &entity.StaffUser{
		Username: "admin", PasswordHash: "x", Role: entity.RoleStaff, Active: true,
	}), repository.ErrDuplicateStaffUser)

	found, err := staffRepo.FindStaffUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, found.ID)
	assert.True(t, found.Active)

	accountRepo := NewUserAccountRepository(db)
	customerID := uuid.New()
	account := &entity.UserAccount{Phone: "0912345678", Role: entity.RoleCustomer, CustomerID: &customerID, Active: true}
	require.NoError(t, accountRepo.CreateUserAccount(ctx, account))

	byPhone, err := accountRepo.FindUserAccountByPhone(ctx, "0912345678")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byPhone.ID)
	assert.Equal(t, &customerID, byPhone.CustomerID)

	_, err = accountRepo.FindUserAccountByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserAccountNotFound)
}
