package otpgate

import (
	"context"
	"log/slog"

	"loyalty/config"
	"loyalty/internal/domain/lifecycle"
	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the OTP gate, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New picks the Redis gate when redis.addr is configured and the in-process gate otherwise.
func New(params Params) service.OTPGate {
	cooldown := params.Config.OTP.ResendCooldown
	redisCfg := params.Config.Redis

	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Redis not configured, OTP gate is in-process only")

		return NewLocalGate(cooldown)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
		PoolSize: redisCfg.PoolSize,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis OTP gate ready", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisGate(client, redisCfg.LockTTL, cooldown)
}
