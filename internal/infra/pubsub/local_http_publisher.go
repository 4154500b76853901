package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"loyalty/internal/domain/constants"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/loyalty-events"

// PushMessage mirrors the body Google Pub/Sub POSTs to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPTransport simulates a push subscription by POSTing straight to the notifier.
type localHTTPTransport struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func newLocalHTTPTransport(endpoint string, logger *slog.Logger) *localHTTPTransport {
	return &localHTTPTransport{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (t *localHTTPTransport) send(ctx context.Context, msg *message) error {
	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.Attributes = msg.attributes
	pushMsg.Message.MessageID = msg.id
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := msg.attributes[constants.AttrRequestID]; requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("notifier returned non-success status: %d", resp.StatusCode)
	}

	t.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", t.endpoint),
		slog.String("event_type", msg.eventType),
		slog.String("message_id", msg.id),
	)

	return nil
}

func (t *localHTTPTransport) Close() error {
	return nil
}
