package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
)

// --- Input DTOs ---

// PasswordLoginInput defines the data required for a staff login.
type PasswordLoginInput struct {
	Username string
	Password string
}

// RequestOTPInput asks for a one-time code to be sent to Phone.
type RequestOTPInput struct {
	Phone string
}

// VerifyOTPInput redeems a one-time code for a session of the given member role.
type VerifyOTPInput struct {
	Phone string
	Code  string
	Role  entity.Role
}

// RefreshInput presents a refresh token for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput presents the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
}

// CreateStaffInput defines the data required to add a staff operator.
type CreateStaffInput struct {
	Username string
	Password string
	Role     entity.Role
}

// --- Output DTOs ---

// SessionOutput carries a freshly issued credential pair.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // Access token lifetime in seconds.
	Principal    entity.Principal
}

// RequestOTPOutput acknowledges an OTP request without revealing the code.
type RequestOTPOutput struct {
	Message   string
	ExpiresIn int // Seconds.
}

// ProfileOutput is the caller's own profile. Exactly one of the records is set,
// matching the principal's role.
type ProfileOutput struct {
	Principal entity.Principal
	Staff     *entity.StaffUser
	Customer  *entity.Customer
	Dealer    *entity.Dealer
}

// AuthUsecase issues and revokes sessions for all four roles.
type AuthUsecase interface {
	LoginPassword(ctx context.Context, input *PasswordLoginInput) (*SessionOutput, error)
	RequestOTP(ctx context.Context, input *RequestOTPInput) (*RequestOTPOutput, error)
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*SessionOutput, error)

	// Refresh revokes the presented token and issues a new pair. A token can be rotated once.
	Refresh(ctx context.Context, input *RefreshInput) (*SessionOutput, error)

	// Logout revokes the presented token. Unknown or revoked tokens are not an error.
	Logout(ctx context.Context, input *LogoutInput) error

	Me(ctx context.Context, principal entity.Principal) (*ProfileOutput, error)
	CreateStaffUser(ctx context.Context, input *CreateStaffInput) (*entity.StaffUser, error)
}
