package middleware

import (
	"strings"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates access tokens and enforces capabilities.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the Bearer access token and stores the principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || token == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization must be a Bearer token")
		}

		if err := m.authenticate(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

// AuthenticateQuery validates an access token passed as the "token" query
// parameter. Browsers cannot set headers on WebSocket handshakes.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")
		if token == "" {
			return domainerrors.ErrUnauthorized.WithDetails("token query parameter is missing")
		}

		if err := m.authenticate(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string) error {
	claims, err := m.tokenService.ValidateAccessToken(token)
	if err != nil {
		return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
	}

	principal, err := claims.Principal()
	if err != nil || !principal.Role.IsValid() {
		return domainerrors.ErrUnauthorized.WithDetails("invalid token claims")
	}

	deliverycontext.SetPrincipal(c, principal)

	return nil
}

// Require enforces a capability. It must run after Authenticate. When the
// capability names an owner field, the path parameter of that name must be a
// UUID owned by a member principal; ADMIN and STAFF are not checked.
func (m *AuthMiddleware) Require(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !capability.AllowsRole(principal.Role) {
				return domainerrors.ErrRoleNotAllowed
			}

			if capability.Owner != entity.OwnerNone {
				resourceID, err := uuid.Parse(c.Param(string(capability.Owner)))
				if err != nil {
					return domainerrors.ErrValidationFailed.WithDetails(string(capability.Owner) + " must be a UUID")
				}
				if !capability.Owns(principal, resourceID) {
					return domainerrors.ErrOwnershipMismatch
				}
			}

			return next(c)
		}
	}
}
