package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/tumpangan/internal/pkg/jwt"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/pkg/requestcontext"
	"github.com/piresc/tumpangan/internal/utils"
)

// Headers injected by the API gateway after it validated the caller
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
)

const identityKey = "identity"

// IdentityMiddleware authenticates the caller from gateway headers or, when
// those are absent, from a Bearer token signed with config.Secret
func IdentityMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok, msg := resolveIdentity(c, config)
			if !ok {
				return utils.UnauthorizedResponse(c, msg)
			}

			SetIdentity(c, identity)

			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, config models.JWTConfig) (models.Identity, bool, string) {
	header := c.Request().Header

	if userID := strings.TrimSpace(header.Get(HeaderUserID)); userID != "" {
		identity := models.Identity{
			UserID: userID,
			Role:   models.Role(strings.ToLower(header.Get(HeaderUserRole))),
			Name:   header.Get(HeaderUserName),
			Email:  header.Get(HeaderUserEmail),
		}
		if !identity.Role.Valid() {
			return models.Identity{}, false, "Invalid user role"
		}
		return identity, true, ""
	}

	authHeader := header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return models.Identity{}, false, "Authentication required"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.Identity{}, false, "Invalid authorization format"
	}

	claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
	if err != nil {
		return models.Identity{}, false, "Invalid token"
	}

	identity := claims.Identity()
	if !identity.Role.Valid() {
		return models.Identity{}, false, "Invalid user role"
	}
	return identity, true, ""
}

// SetIdentity stores the authenticated caller on the request context
func SetIdentity(c echo.Context, identity models.Identity) {
	c.Set(identityKey, identity)
	c.Set("user_id", identity.UserID)
	c.Set("user_role", string(identity.Role))
	SetUserID(c, identity.UserID)
	c.SetRequest(c.Request().WithContext(requestcontext.WithUserID(c.Request().Context(), identity.UserID)))
}

// GetIdentity returns the caller set by IdentityMiddleware
func GetIdentity(c echo.Context) (models.Identity, bool) {
	identity, ok := c.Get(identityKey).(models.Identity)
	return identity, ok
}
