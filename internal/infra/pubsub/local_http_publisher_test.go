package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishActivationCreated(t *testing.T) {
	var received PushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := newEventPublisher(newLocalHTTPTransport(server.URL, newDiscardLogger()), newDiscardLogger())

	err := publisher.PublishActivationCreated(context.Background(), &service.ActivationCreatedEvent{
		RequestID:    "req-1",
		ActivationID: "act-1",
		Barcode:      "12N5L000000001",
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, service.EventTypeActivationCreated, received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "req-1", received.Message.Attributes[constants.AttrRequestID])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.ActivationCreatedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "act-1", event.ActivationID)
	assert.Equal(t, "12N5L000000001", event.Barcode)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := newEventPublisher(newLocalHTTPTransport(server.URL, newDiscardLogger()), newDiscardLogger())

	err := publisher.PublishOTPRequested(context.Background(), &service.OTPRequestedEvent{
		Phone:     "0912345678",
		Code:      "123456",
		ExpiresIn: 300,
	})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := newEventPublisher(&noopTransport{logger: newDiscardLogger()}, newDiscardLogger())

	assert.NoError(t, publisher.PublishOTPRequested(context.Background(), &service.OTPRequestedEvent{Phone: "0912345678"}))
	assert.NoError(t, publisher.Close())
}
