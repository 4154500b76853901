package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loyalty/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, hub.ServeHTTP(w, r))
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration is asynchronous; keep broadcasting until the frame arrives.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	received := make(chan []byte, 1)
	go func() {
		_, message, readErr := conn.ReadMessage()
		if readErr == nil {
			received <- message
		}
	}()

	var message []byte
	deadline := time.After(2 * time.Second)
loop:
	for {
		hub.BroadcastActivation(&service.ActivationCreatedEvent{ActivationID: "act-1", Barcode: "12N5L000000001"})
		select {
		case message = <-received:
			break loop
		case <-deadline:
			t.Fatal("no frame received")
		case <-time.After(20 * time.Millisecond):
		}
	}

	var envelope struct {
		Type string                         `json:"type"`
		Data service.ActivationCreatedEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(message, &envelope))
	assert.Equal(t, "activation.created", envelope.Type)
	assert.Equal(t, "act-1", envelope.Data.ActivationID)
}

func TestHub_BroadcastAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	cancel()
	<-hub.done

	done := make(chan struct{})
	go func() {
		for range clientSendBuffer + 10 {
			hub.Broadcast("activation.created", map[string]string{"id": "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked after hub stopped")
	}
}
