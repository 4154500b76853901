package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"
	"loyalty/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	loginMethodPassword = "password"
	loginMethodOTP      = "otp"

	otpSentMessage = "OTP sent"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	staffRepo         repository.StaffUserRepository
	accountRepo       repository.UserAccountRepository
	customerRepo      repository.CustomerRepository
	dealerRepo        repository.DealerRepository
	otpRepo           repository.OTPRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	otpGate           service.OTPGate
	publisher         service.EventPublisher
	otpTTL            time.Duration
	maxActiveSessions int
	logger            *slog.Logger

	now          func() time.Time
	generateCode func() (string, error)
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	StaffRepo        repository.StaffUserRepository
	AccountRepo      repository.UserAccountRepository
	CustomerRepo     repository.CustomerRepository
	DealerRepo       repository.DealerRepository
	OTPRepo          repository.OTPRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OTPGate          service.OTPGate
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return newAuthService(params)
}

func newAuthService(params AuthServiceParams) *authService {
	otpTTL := entity.OTPTTL
	maxActiveSessions := 0
	if params.Config != nil {
		if params.Config.OTP != nil && params.Config.OTP.TTL > 0 {
			otpTTL = params.Config.OTP.TTL
		}
		if params.Config.Auth != nil {
			maxActiveSessions = params.Config.Auth.MaxActiveSessions
		}
	}

	return &authService{
		txManager:         params.TxManager,
		staffRepo:         params.StaffRepo,
		accountRepo:       params.AccountRepo,
		customerRepo:      params.CustomerRepo,
		dealerRepo:        params.DealerRepo,
		otpRepo:           params.OTPRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		otpGate:           params.OTPGate,
		publisher:         params.Publisher,
		otpTTL:            otpTTL,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
		generateCode:      randomOTPCode,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginPassword authenticates a staff operator. Unknown users, disabled users and wrong
// passwords all yield the same error.
func (srv *authService) LoginPassword(ctx context.Context, input *usecase.PasswordLoginInput) (*usecase.SessionOutput, error) {
	username := strings.TrimSpace(input.Username)
	srv.log(ctx).Debug("Starting password login", slog.String("username", username))

	staff, err := srv.staffRepo.FindStaffUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrStaffUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find staff user")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !staff.Active || !srv.hasher.Check(input.Password, staff.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Bool("active", staff.Active))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	principal := entity.PrincipalFromStaff(staff)
	subject := entity.Subject{Kind: entity.SubjectStaff, ID: staff.ID}

	var out *usecase.SessionOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var issueErr error
		out, issueErr = srv.issueSession(ctx, repoFactory, principal, subject)
		if issueErr != nil {
			return issueErr
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditLogin, entity.AuditEntityStaffUser, staff.ID.String(), &staff.ID, map[string]any{
			"method": loginMethodPassword,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Info("Staff logged in", slog.Any("userID", staff.ID), slog.String("role", staff.Role.String()))

	return out, nil
}

// RequestOTP issues a new challenge for phone, invalidating any earlier unused one.
func (srv *authService) RequestOTP(ctx context.Context, input *usecase.RequestOTPInput) (*usecase.RequestOTPOutput, error) {
	phone := entity.NormalizePhone(input.Phone)
	if !entity.IsValidPhone(phone) {
		return nil, domainerrors.ErrInvalidPhone.WithDetails(phone)
	}

	// 1. Serialise issuance per phone so invalidate+create never interleave.
	unlock, err := srv.otpGate.Lock(ctx, phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire otp lock")
	}
	defer unlock()

	// 2. Enforce the resend cooldown.
	allowed, retryAfter, err := srv.otpGate.Allow(ctx, phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check otp cooldown")
	}
	if !allowed {
		seconds := int(retryAfter.Round(time.Second) / time.Second)
		srv.log(ctx).Info("OTP request inside cooldown", slog.String("phone", util.MaskPhone(phone)), slog.Int("retryAfterSeconds", seconds))

		return nil, domainerrors.ErrOTPCooldown.WithDetails(fmt.Sprintf("retry after %d seconds", seconds))
	}

	code, err := srv.generateCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp code")
	}

	challenge := &entity.OTPChallenge{
		Phone:     phone,
		Code:      code,
		ExpiresAt: srv.now().Add(srv.otpTTL),
	}

	// 3. Invalidate earlier challenges and persist the new one atomically.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOTPRepository()

		invalidated, err := otpRepo.InvalidateUnusedChallenges(ctx, phone)
		if err != nil {
			return errors.Wrap(err, "failed to invalidate previous challenges")
		}

		if err := otpRepo.CreateChallenge(ctx, challenge); err != nil {
			return errors.Wrap(err, "failed to create challenge")
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditOTPRequested, entity.AuditEntityOTP, phone, nil, map[string]any{
			"phone":       phone,
			"invalidated": invalidated,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute otp request transaction", slog.String("phone", util.MaskPhone(phone)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute otp request transaction")
	}

	expiresIn := int(srv.otpTTL / time.Second)

	// 4. Hand the code to the SMS path. Delivery problems are never surfaced to the caller.
	srv.log(ctx).Debug("OTP issued", slog.String("phone", util.MaskPhone(phone)), slog.String("code", code))
	if err := srv.publisher.PublishOTPRequested(ctx, &service.OTPRequestedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Phone:     phone,
		Code:      code,
		ExpiresIn: expiresIn,
	}); err != nil {
		srv.log(ctx).Warn("Failed to publish otp event", slog.String("phone", util.MaskPhone(phone)), slog.Any("error", err))
	}

	return &usecase.RequestOTPOutput{Message: otpSentMessage, ExpiresIn: expiresIn}, nil
}

// VerifyOTP consumes a challenge and issues a member session, provisioning the account
// on first login.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.SessionOutput, error) {
	phone := entity.NormalizePhone(input.Phone)
	if !entity.IsValidPhone(phone) {
		return nil, domainerrors.ErrInvalidPhone.WithDetails(phone)
	}
	if !input.Role.IsMemberSide() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("otp login is for CUSTOMER or DEALER")
	}

	// 1. Consume the challenge on its own; a used code stays used whatever happens next.
	if _, err := srv.otpRepo.ConsumeChallenge(ctx, phone, strings.TrimSpace(input.Code), srv.now()); err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			srv.log(ctx).Warn("OTP verification failed", slog.String("phone", util.MaskPhone(phone)))

			return nil, errors.Wrap(domainerrors.ErrInvalidOTP, "otp verification failed")
		}

		return nil, errors.Wrap(err, "failed to consume otp challenge")
	}

	var out *usecase.SessionOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 2. Find or provision the account.
		account, err := srv.findOrProvisionAccount(ctx, repoFactory, phone, input.Role)
		if err != nil {
			return err
		}
		if !account.Active {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "otp login refused")
		}

		// 3. Issue credentials.
		principal := entity.PrincipalFromAccount(account)
		subject := entity.Subject{Kind: entity.SubjectAccount, ID: account.ID}

		out, err = srv.issueSession(ctx, repoFactory, principal, subject)
		if err != nil {
			return err
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditLogin, entity.AuditEntityUserAccount, account.ID.String(), &account.ID, map[string]any{
			"method": loginMethodOTP,
			"role":   account.Role.String(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("OTP login failed", slog.String("phone", util.MaskPhone(phone)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute otp login transaction")
	}

	srv.log(ctx).Info("Member logged in", slog.Any("accountID", out.Principal.SubjectID), slog.String("role", out.Principal.Role.String()))

	return out, nil
}

// findOrProvisionAccount returns the phone's account. Customers are created on demand;
// dealers must already be registered and active.
func (srv *authService) findOrProvisionAccount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	phone string,
	role entity.Role,
) (*entity.UserAccount, error) {
	accountRepo := repoFactory.NewUserAccountRepository()

	account, err := accountRepo.FindUserAccountByPhone(ctx, phone)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrUserAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find user account")
	}

	account = &entity.UserAccount{Phone: phone, Role: role, Active: true}

	switch role {
	case entity.RoleCustomer:
		customer, err := repoFactory.NewCustomerRepository().FindOrCreateCustomerByPhone(ctx, phone, phone)
		if err != nil {
			return nil, errors.Wrap(err, "failed to provision customer")
		}
		account.CustomerID = &customer.ID
	case entity.RoleDealer:
		dealer, err := repoFactory.NewDealerRepository().FindActiveDealerByPhone(ctx, phone)
		if err != nil {
			if errors.Is(err, repository.ErrDealerNotFound) {
				return nil, domainerrors.ErrDealerNotRegistered
			}

			return nil, errors.Wrap(err, "failed to find dealer by phone")
		}
		account.DealerID = &dealer.ID
	default:
		return nil, domainerrors.ErrRoleNotAllowed
	}

	if err := accountRepo.CreateUserAccount(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create user account")
	}

	srv.log(ctx).Info("Provisioned member account", slog.Any("accountID", account.ID), slog.String("role", role.String()))

	return account, nil
}

// Refresh rotates a refresh token. The revoke is conditional, so of two concurrent
// rotations of the same token only one succeeds.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.SessionOutput, error) {
	tokenHash := srv.tokenService.HashRefreshToken(strings.TrimSpace(input.RefreshToken))

	var out *usecase.SessionOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// 1. Verify the token exists and is live.
		token, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if !token.IsUsableAt(srv.now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked or expired")
		}

		// 2. Rebuild the principal from the current account state.
		principal, err := srv.principalFor(ctx, repoFactory, token.Subject())
		if err != nil {
			return err
		}

		// 3. Revoke the presented token; losing the race means it was already rotated.
		if err := refreshRepo.RevokeRefreshToken(ctx, token.ID); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenRevoked) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token already rotated")
			}

			return errors.Wrap(err, "failed to revoke refresh token")
		}

		// 4. Issue the replacement pair.
		out, err = srv.issueSession(ctx, repoFactory, principal, token.Subject())
		if err != nil {
			return err
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditTokenRefreshed, auditEntityFor(token.Subject()), principal.SubjectID.String(), &principal.SubjectID, nil)
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return out, nil
}

func (srv *authService) principalFor(ctx context.Context, repoFactory repository.RepositoryFactory, subject entity.Subject) (entity.Principal, error) {
	switch subject.Kind {
	case entity.SubjectStaff:
		staff, err := repoFactory.NewStaffUserRepository().FindStaffUserByID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, repository.ErrStaffUserNotFound) {
				return entity.Principal{}, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "staff user no longer exists")
			}

			return entity.Principal{}, errors.Wrap(err, "failed to find staff user")
		}
		if !staff.Active {
			return entity.Principal{}, errors.Wrap(domainerrors.ErrAccountDisabled, "staff user disabled")
		}

		return entity.PrincipalFromStaff(staff), nil
	case entity.SubjectAccount:
		account, err := repoFactory.NewUserAccountRepository().FindUserAccountByID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserAccountNotFound) {
				return entity.Principal{}, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user account no longer exists")
			}

			return entity.Principal{}, errors.Wrap(err, "failed to find user account")
		}
		if !account.Active {
			return entity.Principal{}, errors.Wrap(domainerrors.ErrAccountDisabled, "user account disabled")
		}

		return entity.PrincipalFromAccount(account), nil
	default:
		return entity.Principal{}, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token has no owner")
	}
}

// Logout revokes the presented refresh token. Revoking twice is a no-op.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	raw := strings.TrimSpace(input.RefreshToken)
	if raw == "" {
		return domainerrors.ErrValidationFailed.WithDetails("refresh token is required")
	}
	tokenHash := srv.tokenService.HashRefreshToken(raw)

	token, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Warn("Logout with unknown token")

			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRefreshTokenRepository().RevokeRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		subject := token.Subject()

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditLogout, auditEntityFor(subject), subject.ID.String(), &subject.ID, nil)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// Me returns the caller's profile record for its role.
func (srv *authService) Me(ctx context.Context, principal entity.Principal) (*usecase.ProfileOutput, error) {
	out := &usecase.ProfileOutput{Principal: principal}

	switch principal.Role {
	case entity.RoleAdmin, entity.RoleStaff:
		staff, err := srv.staffRepo.FindStaffUserByID(ctx, principal.SubjectID)
		if err != nil {
			return nil, srv.mapProfileError(err, "failed to find staff user")
		}
		out.Staff = staff
	case entity.RoleCustomer:
		if principal.CustomerID == nil {
			return nil, domainerrors.ErrForbidden.WithDetails("no customer profile linked")
		}
		customer, err := srv.customerRepo.FindCustomerByID(ctx, *principal.CustomerID)
		if err != nil {
			return nil, srv.mapProfileError(err, "failed to find customer")
		}
		out.Customer = customer
	case entity.RoleDealer:
		if principal.DealerID == nil {
			return nil, domainerrors.ErrForbidden.WithDetails("no dealer profile linked")
		}
		dealer, err := srv.dealerRepo.FindDealerByID(ctx, *principal.DealerID)
		if err != nil {
			return nil, srv.mapProfileError(err, "failed to find dealer")
		}
		out.Dealer = dealer
	default:
		return nil, domainerrors.ErrRoleNotAllowed
	}

	return out, nil
}

func (srv *authService) mapProfileError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrStaffUserNotFound),
		errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrDealerNotFound):
		return errors.Wrap(domainerrors.ErrNotFound, message)
	default:
		return errors.Wrap(err, message)
	}
}

// CreateStaffUser adds a password-authenticated operator.
func (srv *authService) CreateStaffUser(ctx context.Context, input *usecase.CreateStaffInput) (*entity.StaffUser, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}
	if !input.Role.IsStaffSide() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be ADMIN or STAFF")
	}
	if len(input.Password) < 6 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	staff := &entity.StaffUser{
		Username:     username,
		PasswordHash: hash,
		Role:         input.Role,
		Active:       true,
	}
	if err := srv.staffRepo.CreateStaffUser(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicateStaffUser) {
			return nil, domainerrors.ErrUsernameTaken.WithDetails(username)
		}

		return nil, errors.Wrap(err, "failed to create staff user")
	}

	return staff, nil
}

// issueSession signs an access token and persists a new refresh token for subject,
// revoking the oldest sessions beyond the configured cap.
func (srv *authService) issueSession(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	principal entity.Principal,
	subject entity.Subject,
) (*usecase.SessionOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	rawRefresh, refreshHash, err := srv.tokenService.GenerateRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	token := &entity.RefreshToken{
		TokenHash: refreshHash,
		ExpiresAt: srv.now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	switch subject.Kind {
	case entity.SubjectStaff:
		token.StaffUserID = &subject.ID
	case entity.SubjectAccount:
		token.UserAccountID = &subject.ID
	default:
		return nil, errors.Errorf("unknown session subject kind %q", subject.Kind)
	}

	refreshRepo := repoFactory.NewRefreshTokenRepository()
	if err := refreshRepo.CreateRefreshToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	if err := srv.enforceSessionLimit(ctx, refreshRepo, subject); err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    int(srv.tokenService.AccessTokenDuration() / time.Second),
		Principal:    principal,
	}, nil
}

func (srv *authService) enforceSessionLimit(ctx context.Context, refreshRepo repository.RefreshTokenRepository, subject entity.Subject) error {
	if srv.maxActiveSessions <= 0 {
		return nil
	}

	active, err := refreshRepo.FindActiveRefreshTokens(ctx, subject)
	if err != nil {
		return errors.Wrap(err, "failed to list active sessions")
	}

	excess := len(active) - srv.maxActiveSessions
	for i := 0; i < excess; i++ {
		if err := refreshRepo.RevokeRefreshToken(ctx, active[i].ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenRevoked) {
			return errors.Wrap(err, "failed to revoke oldest session")
		}
	}
	if excess > 0 {
		srv.log(ctx).Info("Revoked sessions beyond limit", slog.Any("subjectID", subject.ID), slog.Int("revoked", excess))
	}

	return nil
}

func auditEntityFor(subject entity.Subject) string {
	if subject.Kind == entity.SubjectStaff {
		return entity.AuditEntityStaffUser
	}

	return entity.AuditEntityUserAccount
}

// randomOTPCode returns a uniformly distributed numeric code of entity.OTPLength digits.
func randomOTPCode() (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(entity.OTPLength), nil)

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%0*d", entity.OTPLength, n.Int64()), nil
}
