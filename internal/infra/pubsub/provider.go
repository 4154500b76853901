package pubsub

import (
	"context"
	"log/slog"

	"loyalty/config"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopTransport drops every message.
type noopTransport struct {
	logger *slog.Logger
}

func (t *noopTransport) send(_ context.Context, msg *message) error {
	t.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", msg.eventType),
	)

	return nil
}

func (t *noopTransport) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the EventPublisher for otp.requested and activation.created.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	t, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	publisher := newEventPublisher(t, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// newTransport picks the transport for the configured provider. An empty section
// disables publishing; events are then only visible in debug logs.
func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (transport, error) {
	provider := constants.PubSubProviderNoop
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.PubSubProviderNoop:
		logger.Info("Event publishing disabled, using no-op publisher")

		return &noopTransport{logger: logger}, nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing events to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return newLocalHTTPTransport(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return newGoogleTransport(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}
}
