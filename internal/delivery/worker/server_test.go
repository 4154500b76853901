package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loyalty/config"
	"loyalty/internal/delivery/worker/handler"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/service"
	mockUC "loyalty/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T) (http.Handler, *mockUC.MockNotificationUsecase) {
	t.Helper()

	cfg := &config.Config{Worker: &config.WorkerConfig{Port: config.DefaultWorkerPort}}
	cfg.Env.ServiceName = "loyalty-notifier"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUC.NewMockNotificationUsecase(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, NotificationUC: uc})

	return newNotifierEcho(cfg, logger, push), uc
}

func TestNotifier_Health(t *testing.T) {
	srv, _ := newTestNotifier(t)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"loyalty-notifier"}`, rec.Body.String())
}

func TestNotifier_PushRoutesOTPEvent(t *testing.T) {
	srv, uc := newTestNotifier(t)

	data, err := json.Marshal(service.OTPRequestedEvent{Phone: "0987654321", Code: "654321", ExpiresIn: 300})
	require.NoError(t, err)
	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{constants.AttrEventType: service.EventTypeOTPRequested}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	uc.EXPECT().DeliverOTP(mock.Anything, mock.MatchedBy(func(e *service.OTPRequestedEvent) bool {
		return e.Phone == "0987654321"
	})).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestNotifier_PushRejectsOversizedBody(t *testing.T) {
	srv, _ := newTestNotifier(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(strings.Repeat("x", 300*1024)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
