package main

import (
	"context"
	"log/slog"
	"os"

	"loyalty/config"
	"loyalty/internal/delivery"
	"loyalty/internal/delivery/api"
	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/auth"
	"loyalty/internal/infra/export"
	"loyalty/internal/infra/live"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/otpgate"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/infra/qrcode"
	"loyalty/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
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
			postgres.NewActivationRepository,
			postgres.NewStatsRepository,
			postgres.NewAuditRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			otpgate.New,
			pubsub.NewEventPublisher,
			export.NewXLSXExporter,
			qrcode.New,
			fx.Annotate(
				live.New,
				fx.As(new(handler.LiveFeed)),
				fx.As(new(service.ActivationBroadcaster)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewActivationService,
			impl.NewStatsService,
			impl.NewBarcodeService,
			impl.NewProductService,
			impl.NewDealerService,
			impl.NewCustomerService,
			impl.NewDeviceService,
			impl.NewAuditService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewActivationHandler,
			handler.NewStatsHandler,
			handler.NewBarcodeHandler,
			handler.NewProductHandler,
			handler.NewDealerHandler,
			handler.NewCustomerHandler,
			handler.NewDeviceHandler,
			handler.NewAuditHandler,
			handler.NewLiveHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
