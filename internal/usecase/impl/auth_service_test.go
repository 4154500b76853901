package impl

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/auth"
	"loyalty/internal/infra/otpgate"
	"loyalty/internal/infra/persistence/postgres"
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// authFixtures wires the identity service to a real SQLite schema.
type authFixtures struct {
	db           *gorm.DB
	service      *authService
	tokenService service.TokenService
	hasher       service.PasswordHasher
	publisher    *mockSvc.MockEventPublisher

	mu    sync.Mutex
	codes []string
}

func createTestAuthService(t *testing.T, maxActiveSessions int, cooldown time.Duration) *authFixtures {
	db := newTestDB(t)
	cfg := newTestConfig(maxActiveSessions)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)
	publisher := mockSvc.NewMockEventPublisher(t)

	fx := &authFixtures{
		db:           db,
		tokenService: tokenService,
		hasher:       hasher,
		publisher:    publisher,
	}

	fx.service = newAuthService(AuthServiceParams{
		TxManager:        postgres.NewTransactionManager(db),
		StaffRepo:        postgres.NewStaffUserRepository(db),
		AccountRepo:      postgres.NewUserAccountRepository(db),
		CustomerRepo:     postgres.NewCustomerRepository(db),
		DealerRepo:       postgres.NewDealerRepository(db),
		OTPRepo:          postgres.NewOTPRepository(db),
		RefreshTokenRepo: postgres.NewRefreshTokenRepository(db),
		Hasher:           hasher,
		TokenService:     tokenService,
		OTPGate:          otpgate.NewLocalGate(cooldown),
		Publisher:        publisher,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})
	fx.service.generateCode = fx.nextCode

	publisher.EXPECT().PublishOTPRequested(mock.Anything, mock.Anything).Return(nil).Maybe()

	return fx
}

// queueCodes makes the next OTP requests issue codes in order.
func (f *authFixtures) queueCodes(codes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes = append(f.codes, codes...)
}

func (f *authFixtures) nextCode() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.codes) == 0 {
		return "000000", nil
	}
	code := f.codes[0]
	f.codes = f.codes[1:]

	return code, nil
}

func (f *authFixtures) createStaff(t *testing.T, username, password string, role entity.Role, active bool) *entity.StaffUser {
	t.Helper()

	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	staff := &entity.StaffUser{Username: username, PasswordHash: hash, Role: role, Active: active}
	require.NoError(t, postgres.NewStaffUserRepository(f.db).CreateStaffUser(context.Background(), staff))

	return staff
}

func (f *authFixtures) otpLogin(t *testing.T, phone, code string, role entity.Role) (*usecase.SessionOutput, error) {
	t.Helper()

	f.queueCodes(code)
	_, err := f.service.RequestOTP(context.Background(), &usecase.RequestOTPInput{Phone: phone})
	require.NoError(t, err)

	return f.service.VerifyOTP(context.Background(), &usecase.VerifyOTPInput{Phone: phone, Code: code, Role: role})
}

func TestAuthService_LoginPassword(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	admin := fx.createStaff(t, "admin", "secret123", entity.RoleAdmin, true)
	fx.createStaff(t, "retired", "secret123", entity.RoleStaff, false)

	out, err := fx.service.LoginPassword(ctx, &usecase.PasswordLoginInput{Username: "admin", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, 15*60, out.ExpiresIn)

	claims, err := fx.tokenService.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.Subject)
	assert.Equal(t, entity.RoleAdmin.String(), claims.Role)

	failures := []usecase.PasswordLoginInput{
		{Username: "admin", Password: "wrong"},
		{Username: "nobody", Password: "secret123"},
		{Username: "retired", Password: "secret123"},
	}
	for _, input := range failures {
		_, err := fx.service.LoginPassword(ctx, &input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials), "user %s: %v", input.Username, err)
	}

	logs, _, err := postgres.NewAuditRepository(fx.db).ListAuditLogs(ctx, entity.AuditFilter{Action: entity.AuditLogin, Take: 10})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "password", logs[0].Metadata["method"])
}

func TestAuthService_OTPLogin_ProvisionsCustomer(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	out, err := fx.otpLogin(t, "0987111111", "123456", entity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.Principal.Role)
	require.NotNil(t, out.Principal.CustomerID)

	customer, err := postgres.NewCustomerRepository(fx.db).FindCustomerByPhone(ctx, "0987111111")
	require.NoError(t, err)
	assert.Equal(t, *out.Principal.CustomerID, customer.ID)
	assert.Equal(t, "0987111111", customer.Name)
	assert.Zero(t, customer.Points)

	// The code is single-use.
	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987111111", Code: "123456", Role: entity.RoleCustomer})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))

	// A second login reuses the account.
	again, err := fx.otpLogin(t, "0987111111", "654321", entity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, out.Principal.SubjectID, again.Principal.SubjectID)
}

func TestAuthService_RequestOTP_InvalidatesPreviousCode(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	fx.queueCodes("111111", "222222")
	_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987222222"})
	require.NoError(t, err)
	out, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987222222"})
	require.NoError(t, err)
	assert.Equal(t, "OTP sent", out.Message)
	assert.Equal(t, 300, out.ExpiresIn)

	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987222222", Code: "111111", Role: entity.RoleCustomer})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))

	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987222222", Code: "222222", Role: entity.RoleCustomer})
	assert.NoError(t, err)
}

func TestAuthService_VerifyOTP_WrongCodeThenCorrectCode(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	fx.queueCodes("482913")
	_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0901234567"})
	require.NoError(t, err)

	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0901234567", Code: "000001", Role: entity.RoleCustomer})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))
	assertHTTPCode(t, http.StatusUnauthorized, err)

	out, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0901234567", Code: "482913", Role: entity.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.Principal.Role)

	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0901234567", Code: "482913", Role: entity.RoleCustomer})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))
}

func TestAuthService_VerifyOTP_Expired(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()
	issuedAt := time.Now()
	fx.service.now = func() time.Time { return issuedAt }

	fx.queueCodes("246810")
	_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987121212"})
	require.NoError(t, err)

	fx.service.now = func() time.Time { return issuedAt.Add(entity.OTPTTL + time.Second) }
	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987121212", Code: "246810", Role: entity.RoleCustomer})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))
	assertHTTPCode(t, http.StatusUnauthorized, err)

	// Still inside the window the same code works.
	fx.service.now = func() time.Time { return issuedAt.Add(entity.OTPTTL - time.Second) }
	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987121212", Code: "246810", Role: entity.RoleCustomer})
	assert.NoError(t, err)
}

func TestAuthService_RequestOTP_Cooldown(t *testing.T) {
	fx := createTestAuthService(t, 0, time.Minute)
	ctx := context.Background()

	_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987333333"})
	require.NoError(t, err)

	_, err = fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987333333"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPCooldown))

	_, err = fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987333334"})
	assert.NoError(t, err, "cooldown is per phone")
}

func TestAuthService_RequestOTP_GateOutcomes(t *testing.T) {
	ctx := context.Background()

	t.Run("lock unavailable", func(t *testing.T) {
		fx := createTestAuthService(t, 0, 0)
		gate := mockSvc.NewMockOTPGate(t)
		fx.service.otpGate = gate
		fx.service.publisher = mockSvc.NewMockEventPublisher(t)

		gate.EXPECT().Lock(mock.Anything, "0987131313").Return(nil, errors.New("redis: connection refused")).Once()

		_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987131313"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to acquire otp lock")

		_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987131313", Code: "000000", Role: entity.RoleCustomer})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP), "no challenge was stored")
	})

	t.Run("cooldown releases the lock", func(t *testing.T) {
		fx := createTestAuthService(t, 0, 0)
		gate := mockSvc.NewMockOTPGate(t)
		fx.service.otpGate = gate
		fx.service.publisher = mockSvc.NewMockEventPublisher(t)

		unlocked := 0
		gate.EXPECT().Lock(mock.Anything, "0987141414").Return(func() { unlocked++ }, nil).Once()
		gate.EXPECT().Allow(mock.Anything, "0987141414").Return(false, 42*time.Second, nil).Once()

		_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987141414"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrOTPCooldown))
		assertHTTPCode(t, http.StatusTooManyRequests, err)
		assert.Contains(t, err.Error(), "retry after 42 seconds")
		assert.Equal(t, 1, unlocked)
	})
}

func TestAuthService_RequestOTP_PublishesEvent(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	publisher := mockSvc.NewMockEventPublisher(t)
	fx.service.publisher = publisher
	publisher.EXPECT().
		PublishOTPRequested(mock.Anything, &service.OTPRequestedEvent{Phone: "0987444444", Code: "777777", ExpiresIn: 300}).
		Return(errors.New("broker down")).
		Once()

	fx.queueCodes("777777")
	out, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987444444"})
	require.NoError(t, err, "delivery failures are not surfaced")
	assert.Equal(t, "OTP sent", out.Message)
}

func TestAuthService_VerifyOTP_Dealer(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	// Unregistered dealer phones are refused and the code is spent.
	_, err := fx.otpLogin(t, "0911555555", "123123", entity.RoleDealer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealerNotRegistered))

	dealer := seedDealer(t, fx.db, "DL010", "0911555555", entity.DealerActive)

	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0911555555", Code: "123123", Role: entity.RoleDealer})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))

	out, err := fx.otpLogin(t, "0911555555", "456456", entity.RoleDealer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDealer, out.Principal.Role)
	require.NotNil(t, out.Principal.DealerID)
	assert.Equal(t, dealer.ID, *out.Principal.DealerID)
}

func TestAuthService_VerifyOTP_RejectsStaffRole(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	fx.queueCodes("123456")
	_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0987666666"})
	require.NoError(t, err)

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleStaff} {
		_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987666666", Code: "123456", Role: role})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "role %s: %v", role, err)
		assertHTTPCode(t, http.StatusBadRequest, err)
	}

	// The rejected attempts did not spend the code.
	_, err = fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0987666666", Code: "123456", Role: entity.RoleCustomer})
	assert.NoError(t, err)
}

func TestAuthService_Refresh_RotatesSingleUse(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	fx.createStaff(t, "staff", "secret123", entity.RoleStaff, true)
	first, err := fx.service.LoginPassword(ctx, &usecase.PasswordLoginInput{Username: "staff", Password: "secret123"})
	require.NoError(t, err)

	second, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, entity.RoleStaff, second.Principal.Role)

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: first.RefreshToken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "garbage"})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: second.RefreshToken})
	assert.NoError(t, err)
}

func TestAuthService_Refresh_Expired(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()
	issuedAt := time.Now()
	fx.service.now = func() time.Time { return issuedAt }

	fx.createStaff(t, "night", "secret123", entity.RoleStaff, true)
	out, err := fx.service.LoginPassword(ctx, &usecase.PasswordLoginInput{Username: "night", Password: "secret123"})
	require.NoError(t, err)

	fx.service.now = func() time.Time { return issuedAt.Add(config.DefaultRefreshTokenTTL + time.Hour) }
	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.RefreshToken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	assertHTTPCode(t, http.StatusUnauthorized, err)
}

func TestAuthService_Refresh_ConcurrentRotationSucceedsOnce(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	out, err := fx.otpLogin(t, "0987777777", "121212", entity.RoleCustomer)
	require.NoError(t, err)

	const workers = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.RefreshToken}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	out, err := fx.otpLogin(t, "0987888888", "343434", entity.RoleCustomer)
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: out.RefreshToken}))
	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: out.RefreshToken}), "logout is idempotent")
	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "unknown"}))

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.RefreshToken})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))

	err = fx.service.Logout(ctx, &usecase.LogoutInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_SessionLimit(t *testing.T) {
	fx := createTestAuthService(t, 2, 0)
	ctx := context.Background()

	fx.createStaff(t, "busy", "secret123", entity.RoleStaff, true)

	sessions := make([]*usecase.SessionOutput, 0, 3)
	for range 3 {
		out, err := fx.service.LoginPassword(ctx, &usecase.PasswordLoginInput{Username: "busy", Password: "secret123"})
		require.NoError(t, err)
		sessions = append(sessions, out)
	}

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: sessions[0].RefreshToken})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid), "oldest session is evicted")

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: sessions[2].RefreshToken})
	assert.NoError(t, err)
}

func TestAuthService_Me(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	out, err := fx.otpLogin(t, "0987999999", "565656", entity.RoleCustomer)
	require.NoError(t, err)

	profile, err := fx.service.Me(ctx, out.Principal)
	require.NoError(t, err)
	require.NotNil(t, profile.Customer)
	assert.Equal(t, "0987999999", profile.Customer.Phone)
	assert.Nil(t, profile.Dealer)

	staff := fx.createStaff(t, "me", "secret123", entity.RoleAdmin, true)
	profile, err = fx.service.Me(ctx, entity.PrincipalFromStaff(staff))
	require.NoError(t, err)
	require.NotNil(t, profile.Staff)
	assert.Equal(t, "me", profile.Staff.Username)
}

func TestAuthService_CreateStaffUser(t *testing.T) {
	fx := createTestAuthService(t, 0, 0)
	ctx := context.Background()

	staff, err := fx.service.CreateStaffUser(ctx, &usecase.CreateStaffInput{Username: "ops", Password: "secret123", Role: entity.RoleStaff})
	require.NoError(t, err)
	assert.True(t, fx.hasher.Check("secret123", staff.PasswordHash))

	_, err = fx.service.CreateStaffUser(ctx, &usecase.CreateStaffInput{Username: "ops", Password: "secret123", Role: entity.RoleStaff})
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	_, err = fx.service.CreateStaffUser(ctx, &usecase.CreateStaffInput{Username: "x", Password: "123", Role: entity.RoleStaff})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.CreateStaffUser(ctx, &usecase.CreateStaffInput{Username: "y", Password: "secret123", Role: entity.RoleCustomer})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
