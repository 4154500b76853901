package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "loyalty/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses client id", incoming: "abc-123", reuse: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "replaces id with control characters", incoming: "abc\x01def"},
	}

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seenCtxID string
			var seenLogger bool
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seenCtxID = deliverycontext.GetRequestIDFromContext(ctx)
				seenLogger = deliverycontext.GetLoggerOrDefault(ctx, nil) != nil

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.reuse {
				assert.Equal(t, tt.incoming, id)
			} else {
				_, parseErr := uuid.Parse(id)
				assert.NoError(t, parseErr)
			}
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.Equal(t, id, seenCtxID)
			assert.True(t, seenLogger)
		})
	}
}
