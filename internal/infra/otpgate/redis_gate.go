package otpgate

import (
	"context"
	"time"

	"loyalty/internal/domain/service"

	"github.com/bsm/redislock"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix     = "otp:lock:"
	cooldownKeyPrefix = "otp:cooldown:"
	lockRetryInterval = 50 * time.Millisecond
)

// redisGate shares locks and cooldowns across every API instance.
type redisGate struct {
	client   redis.UniversalClient
	locker   *redislock.Client
	lockTTL  time.Duration
	cooldown time.Duration
}

// NewRedisGate creates an OTPGate backed by Redis.
func NewRedisGate(client redis.UniversalClient, lockTTL, cooldown time.Duration) service.OTPGate {
	return &redisGate{
		client:   client,
		locker:   redislock.New(client),
		lockTTL:  lockTTL,
		cooldown: cooldown,
	}
}

// Lock waits for the per-phone lock until ctx is done. The lock expires after
// lockTTL even if the holder dies.
func (g *redisGate) Lock(ctx context.Context, phone string) (func(), error) {
	retries := int(g.lockTTL/lockRetryInterval) + 1
	lock, err := g.locker.Obtain(ctx, lockKeyPrefix+phone, g.lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(lockRetryInterval), retries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, errors.Wrapf(err, "otp lock busy for phone")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to obtain otp lock")
	}

	return func() {
		// Use a fresh context so a cancelled request still releases the lock.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = lock.Release(releaseCtx)
	}, nil
}

// Allow sets the cooldown key with NX; an existing key means the phone must wait.
func (g *redisGate) Allow(ctx context.Context, phone string) (bool, time.Duration, error) {
	if g.cooldown <= 0 {
		return true, 0, nil
	}

	key := cooldownKeyPrefix + phone
	set, err := g.client.SetNX(ctx, key, time.Now().Unix(), g.cooldown).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "failed to set otp cooldown")
	}
	if set {
		return true, 0, nil
	}

	remaining, err := g.client.PTTL(ctx, key).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "failed to read otp cooldown")
	}
	if remaining < 0 {
		remaining = g.cooldown
	}

	return false, remaining, nil
}
