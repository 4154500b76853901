package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOTPNotFound is returned when no unused, unexpired challenge matches.
var ErrOTPNotFound = errors.New("otp challenge not found")

// OTPRepository stores one-time code challenges.
type OTPRepository interface {
	CreateChallenge(ctx context.Context, challenge *entity.OTPChallenge) error

	// InvalidateUnusedChallenges marks every unused challenge for phone as used.
	InvalidateUnusedChallenges(ctx context.Context, phone string) (int64, error)

	// ConsumeChallenge marks the most recent unused challenge for phone+code that is
	// unexpired at now as used and returns it. The update is conditional on the
	// challenge still being unused, so concurrent consumers succeed at most once.
	ConsumeChallenge(ctx context.Context, phone, code string, now time.Time) (*entity.OTPChallenge, error)
}
