package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"loyalty/internal/delivery/api/validator"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "wrapped app error keeps code and details",
			err:      errors.Wrap(domainerrors.ErrInvalidBarcodeFormat.WithDetails("ABC"), "register"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":{"code":"INVALID_BARCODE_FORMAT","message":"` + domainerrors.ErrInvalidBarcodeFormat.Message() + `","details":"ABC"},"meta":{"request_id":""}}`,
		},
		{
			name:     "unauthorized hides details",
			err:      domainerrors.ErrUnauthorized.WithDetails("token expired"),
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":{"code":"UNAUTHORIZED","message":"Authentication required"},"meta":{"request_id":""}}`,
		},
		{
			name:     "validation error lists fields",
			err:      &validator.ValidationError{Fields: map[string]string{"phone": "phone"}},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":{"code":"VALIDATION_FAILED","message":"Input validation failed","details":{"phone":"phone"}},"meta":{"request_id":""}}`,
		},
		{
			name:     "echo error",
			err:      echo.ErrMethodNotAllowed,
			wantCode: http.StatusMethodNotAllowed,
			wantBody: `{"error":{"code":"METHOD_NOT_ALLOWED","message":"Method Not Allowed"},"meta":{"request_id":""}}`,
		},
		{
			name:     "unknown error is opaque",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error, please try again later"},"meta":{"request_id":""}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
