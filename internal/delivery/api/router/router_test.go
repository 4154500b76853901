package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/delivery/api"
	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/auth"
	mockUC "loyalty/internal/mocks/usecase"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string `json:"request_id"`
		Pagination *struct {
			Total int64 `json:"total"`
			Skip  int   `json:"skip"`
			Take  int   `json:"take"`
		} `json:"pagination"`
	} `json:"meta"`
}

type routerFixtures struct {
	echo         *echo.Echo
	tokens       service.TokenService
	authUC       *mockUC.MockAuthUsecase
	activationUC *mockUC.MockActivationUsecase
	statsUC      *mockUC.MockStatsUsecase
	dealerUC     *mockUC.MockDealerUsecase
}

func newRouterFixtures(t *testing.T) *routerFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "router-test-access"
	cfg.SecretKey.Refresh = "router-test-refresh"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := &routerFixtures{
		tokens:       tokens,
		authUC:       mockUC.NewMockAuthUsecase(t),
		activationUC: mockUC.NewMockActivationUsecase(t),
		statsUC:      mockUC.NewMockStatsUsecase(t),
		dealerUC:     mockUC.NewMockDealerUsecase(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx.echo = api.NewEcho(cfg, logger)

	r := router.NewRouter(router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC}),
		ActivationHandler: handler.NewActivationHandler(handler.ActivationHandlerParams{ActivationUC: fx.activationUC}),
		StatsHandler:      handler.NewStatsHandler(handler.StatsHandlerParams{StatsUC: fx.statsUC}),
		BarcodeHandler:    handler.NewBarcodeHandler(handler.BarcodeHandlerParams{}),
		ProductHandler:    handler.NewProductHandler(handler.ProductHandlerParams{}),
		DealerHandler:     handler.NewDealerHandler(handler.DealerHandlerParams{DealerUC: fx.dealerUC}),
		CustomerHandler:   handler.NewCustomerHandler(handler.CustomerHandlerParams{}),
		DeviceHandler:     handler.NewDeviceHandler(handler.DeviceHandlerParams{}),
		AuditHandler:      handler.NewAuditHandler(handler.AuditHandlerParams{}),
		LiveHandler:       handler.NewLiveHandler(handler.LiveHandlerParams{}),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokens),
	})
	r.RegisterRoutes(fx.echo)

	return fx
}

func (fx *routerFixtures) token(t *testing.T, p entity.Principal) string {
	t.Helper()

	token, err := fx.tokens.GenerateAccessToken(p)
	require.NoError(t, err)

	return token
}

func (fx *routerFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func adminPrincipal() entity.Principal {
	return entity.Principal{SubjectID: uuid.New(), Role: entity.RoleAdmin, Username: "admin"}
}

func staffPrincipal() entity.Principal {
	return entity.Principal{SubjectID: uuid.New(), Role: entity.RoleStaff, Username: "staff01"}
}

func dealerPrincipal(dealerID uuid.UUID) entity.Principal {
	return entity.Principal{SubjectID: uuid.New(), Role: entity.RoleDealer, Phone: "0911111111", DealerID: &dealerID}
}

func customerPrincipal(customerID uuid.UUID) entity.Principal {
	return entity.Principal{SubjectID: uuid.New(), Role: entity.RoleCustomer, Phone: "0922222222", CustomerID: &customerID}
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	fx := newRouterFixtures(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	fx := newRouterFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestRouter_AdminStatsAuthorization(t *testing.T) {
	fx := newRouterFixtures(t)
	fx.statsUC.EXPECT().ActivationReport(mock.Anything).
		Return(&entity.ActivationReport{TotalToday: 3}, nil).Once()

	tests := []struct {
		name     string
		token    string
		wantCode int
		wantErr  string
	}{
		{name: "missing token", token: "", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "garbage token", token: "not-a-jwt", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "staff is not admin", token: fx.token(t, staffPrincipal()), wantCode: http.StatusForbidden, wantErr: "ROLE_NOT_ALLOWED"},
		{name: "admin", token: fx.token(t, adminPrincipal()), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := fx.do(t, http.MethodGet, "/api/v1/stats", tt.token, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantErr, env.Error.Code)
				assert.Empty(t, env.Error.Details)

				return
			}
			assert.JSONEq(t, `{"totalToday":3,"totalWeek":0,"totalMonth":0,"topDealers":null,"topCustomers":null,"dailyActivations":null}`, string(env.Data))
		})
	}
}

func TestRouter_DealerOwnership(t *testing.T) {
	fx := newRouterFixtures(t)
	ownID := uuid.New()
	otherID := uuid.New()

	fx.statsUC.EXPECT().DealerReport(mock.Anything, ownID).Return(&entity.DealerReport{Total: 7}, nil).Once()
	fx.statsUC.EXPECT().DealerReport(mock.Anything, otherID).Return(&entity.DealerReport{Total: 1}, nil).Once()

	tests := []struct {
		name      string
		principal entity.Principal
		dealerID  string
		wantCode  int
		wantErr   string
	}{
		{name: "dealer reads own stats", principal: dealerPrincipal(ownID), dealerID: ownID.String(), wantCode: http.StatusOK},
		{name: "dealer reads other stats", principal: dealerPrincipal(ownID), dealerID: otherID.String(), wantCode: http.StatusForbidden, wantErr: "OWNERSHIP_MISMATCH"},
		{name: "admin bypasses ownership", principal: adminPrincipal(), dealerID: otherID.String(), wantCode: http.StatusOK},
		{name: "customer role rejected", principal: customerPrincipal(uuid.New()), dealerID: ownID.String(), wantCode: http.StatusForbidden, wantErr: "ROLE_NOT_ALLOWED"},
		{name: "malformed id", principal: dealerPrincipal(ownID), dealerID: "abc", wantCode: http.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := fx.do(t, http.MethodGet, "/api/v1/dealers/"+tt.dealerID+"/stats", fx.token(t, tt.principal), "")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantErr, env.Error.Code)
			}
		})
	}
}

func TestRouter_CustomerActivationsOwnership(t *testing.T) {
	fx := newRouterFixtures(t)
	customerID := uuid.New()

	fx.activationUC.EXPECT().
		ListActivations(mock.Anything, mock.MatchedBy(func(f entity.ActivationFilter) bool {
			return f.CustomerID != nil && *f.CustomerID == customerID && f.Take == 10
		})).
		Return(&usecase.Page[*entity.ActivationRecord]{
			Items: []*entity.ActivationRecord{{BarcodeCode: "12N5L0000001", CustomerName: "An"}},
			Total: 1,
			Take:  10,
		}, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/api/v1/customers/"+customerID.String()+"/activations?take=10", fx.token(t, customerPrincipal(customerID)), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(1), env.Meta.Pagination.Total)
	assert.Contains(t, string(env.Data), `"barcode":"12N5L0000001"`)

	rec, env = fx.do(t, http.MethodGet, "/api/v1/customers/"+uuid.NewString()+"/activations", fx.token(t, customerPrincipal(customerID)), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "OWNERSHIP_MISMATCH", env.Error.Code)
}

func TestRouter_Activate(t *testing.T) {
	fx := newRouterFixtures(t)
	customerID := uuid.New()
	principal := customerPrincipal(customerID)
	activationID := uuid.New()
	dealerPoints := int64(12)

	fx.activationUC.EXPECT().
		Activate(mock.Anything, mock.MatchedBy(func(in *usecase.ActivateInput) bool {
			return in.Barcode == "12N5L0000001" && in.DealerCode == "DL001" &&
				in.Actor.Role == entity.RoleCustomer && in.Actor.SubjectID == principal.SubjectID
		})).
		Return(&usecase.ActivateOutput{
			ActivationID:        activationID,
			Product:             entity.ProductSummary{Name: "Battery 12N5L", SKU: "12N5L"},
			CustomerPointsAfter: 4,
			DealerPointsAfter:   &dealerPoints,
			ActivatedAt:         time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC),
		}, nil).Once()

	body := `{"barcode":"12N5L0000001","customerName":"Nguyen An","customerPhone":"0922222222","dealerCode":"DL001"}`
	rec, env := fx.do(t, http.MethodPost, "/api/v1/activations", fx.token(t, principal), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var view handler.ActivationResultView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, activationID, view.ActivationID)
	assert.Equal(t, int64(4), view.CustomerPoints)
	require.NotNil(t, view.DealerPoints)
	assert.Equal(t, int64(12), *view.DealerPoints)
}

func TestRouter_ActivateValidationAndDomainErrors(t *testing.T) {
	fx := newRouterFixtures(t)
	token := fx.token(t, staffPrincipal())

	rec, env := fx.do(t, http.MethodPost, "/api/v1/activations", token, `{"barcode":"??","customerName":"A","customerPhone":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `{"barcode":"barcode","customerName":"min=2","customerPhone":"phone"}`, string(env.Error.Details))

	rec, env = fx.do(t, http.MethodPost, "/api/v1/activations", token, `{"barcode":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	fx.activationUC.EXPECT().Activate(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrBarcodeAlreadyUsed.WithDetails("12N5L0000001")).Once()

	rec, env = fx.do(t, http.MethodPost, "/api/v1/activations", token,
		`{"barcode":"12N5L0000001","customerName":"Nguyen An","customerPhone":"0922222222"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BARCODE_ALREADY_USED", env.Error.Code)
	assert.JSONEq(t, `"12N5L0000001"`, string(env.Error.Details))
}

func TestRouter_ExportActivations(t *testing.T) {
	fx := newRouterFixtures(t)

	fx.activationUC.EXPECT().
		ExportActivations(mock.Anything, mock.MatchedBy(func(f entity.ActivationFilter) bool {
			return f.DateFrom != nil && f.DateTo != nil &&
				f.DateTo.Equal(time.Date(2026, 5, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC))
		})).
		Return(&usecase.ExportOutput{
			FileName:    "activations-20260601-000000.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("xlsx"),
		}, nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/api/v1/activations/export?dateFrom=2026-05-01&dateTo=2026-05-31", fx.token(t, adminPrincipal()), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="activations-20260601-000000.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "xlsx", rec.Body.String())

	rec, env := fx.do(t, http.MethodGet, "/api/v1/activations/export?dateFrom=yesterday", fx.token(t, adminPrincipal()), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_VerifyOTPDefaultsToCustomer(t *testing.T) {
	fx := newRouterFixtures(t)
	customerID := uuid.New()

	fx.authUC.EXPECT().
		VerifyOTP(mock.Anything, &usecase.VerifyOTPInput{Phone: "0922222222", Code: "123456", Role: entity.RoleCustomer}).
		Return(&usecase.SessionOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
			Principal:    customerPrincipal(customerID),
		}, nil).Once()

	rec, env := fx.do(t, http.MethodPost, "/auth/otp/verify", "", `{"phone":"0922222222","code":"123456"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var view handler.SessionView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "access", view.AccessToken)
	assert.Equal(t, "CUSTOMER", view.User.Role)
	require.NotNil(t, view.User.CustomerID)
	assert.Equal(t, customerID, *view.User.CustomerID)

	rec, env = fx.do(t, http.MethodPost, "/auth/otp/verify", "", `{"phone":"0922222222","code":"123456","role":"ADMIN"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_PublicDealerLookup(t *testing.T) {
	fx := newRouterFixtures(t)

	fx.dealerUC.EXPECT().LookupDealer(mock.Anything, "DL001").
		Return(&entity.Dealer{ID: uuid.New(), Code: "DL001", Name: "Dealer One", Status: entity.DealerActive}, nil).Once()
	fx.dealerUC.EXPECT().LookupDealer(mock.Anything, "DL999").
		Return(nil, domainerrors.ErrDealerNotFound).Once()
	fx.dealerUC.EXPECT().DealerQRCode(mock.Anything, "DL001").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/dealers/lookup?code=DL001", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"code":"DL001"`)
	assert.NotContains(t, string(env.Data), "points")

	rec, env = fx.do(t, http.MethodGet, "/dealers/lookup?code=DL999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DEALER_NOT_FOUND", env.Error.Code)

	rec, _ = fx.do(t, http.MethodGet, "/dealers/DL001/qrcode", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestCapabilityFor_UnknownOperation(t *testing.T) {
	c := router.CapabilityFor("nope")

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleStaff, entity.RoleDealer, entity.RoleCustomer} {
		assert.False(t, c.AllowsRole(role))
	}
}
