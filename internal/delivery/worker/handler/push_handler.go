package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/constants"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// errMalformedEvent marks a payload that can never be processed.
var errMalformedEvent = errors.New("malformed event")

// tokenVerifier checks the OIDC bearer token attached to a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler dispatches Pub/Sub push messages to the notification usecase
type PushHandler struct {
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
	verify         tokenVerifier
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}

	if w := params.Config.Worker; w != nil && w.VerifyPushToken {
		h.verify = func(req *http.Request) error {
			return verifyPubSubToken(req, w.PushAudience, w.PushServiceAccount)
		}
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 200 acknowledges, 503 asks Pub/Sub to redeliver, 400 rejects a payload that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	eventType := pushMsg.Message.Attributes[constants.AttrEventType]
	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_type", eventType),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.dispatch(ctx, eventType, data); err != nil {
		if errors.Is(err, errMalformedEvent) {
			reqLogger.Error("[Worker] Rejected event", slog.Any("error", err))

			return c.NoContent(http.StatusBadRequest)
		}

		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed")

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) dispatch(ctx context.Context, eventType string, data []byte) error {
	switch eventType {
	case service.EventTypeOTPRequested:
		var event service.OTPRequestedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(errMalformedEvent, err.Error())
		}

		return classify(h.notificationUC.DeliverOTP(ctx, &event))

	case service.EventTypeActivationCreated:
		var event service.ActivationCreatedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(errMalformedEvent, err.Error())
		}

		return classify(h.notificationUC.NotifyActivation(ctx, &event))

	default:
		return errors.Wrapf(errMalformedEvent, "unknown event type %q", eventType)
	}
}

// classify decides whether a usecase failure is worth a redelivery.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerrors.ErrBadRequest) {
		return errors.Wrap(errMalformedEvent, err.Error())
	}

	return newRetryableError(err)
}

// extractRequestID extracts request_id from message attributes or the inbound request,
// or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience, serviceAccount string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Default audience is the URL of this endpoint
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != serviceAccount {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}
