package service

import (
	"context"
	"time"
)

// OTPGate guards OTP issuance per phone number.
type OTPGate interface {
	// Lock serialises issuance for phone. The returned unlock must be called once.
	Lock(ctx context.Context, phone string) (unlock func(), err error)

	// Allow records an issuance attempt. It reports false and the remaining wait when
	// phone is still inside its resend cooldown.
	Allow(ctx context.Context, phone string) (allowed bool, retryAfter time.Duration, err error)
}
