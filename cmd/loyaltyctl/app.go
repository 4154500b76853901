package main

import (
	"context"

	"loyalty/config"
	"loyalty/internal/infra/auth"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/otpgate"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/infra/qrcode"
	"loyalty/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// appOptions provides what the database-backed commands need. HTTP deliveries are left out.
func appOptions() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewStaffUserRepository,
			postgres.NewUserAccountRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewOTPRepository,
			postgres.NewCustomerRepository,
			postgres.NewDealerRepository,
			postgres.NewProductRepository,
			postgres.NewBarcodeRepository,
		),
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			otpgate.New,
			pubsub.NewEventPublisher,
			qrcode.New,
		),
		fx.Provide(
			impl.NewAuthService,
			impl.NewProductService,
			impl.NewDealerService,
			impl.NewBarcodeService,
		),
	)
}

// withApp starts a short-lived application, fills targets from the container and runs fn
// before stopping it again.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(appOptions(), fx.Populate(targets...))
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}
