package middleware

import (
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware for handlers to read.
const (
	ContextToken  = "token"
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware guards routes by session token and role. Failed guards
// answer with a redirect hint so the client knows where to send the user.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth validates the bearer token and, when roles are given, checks
// the caller holds one of them. Unauthenticated callers are pointed at
// /login, wrong-role callers at /home.
func (m *AuthMiddleware) RequireAuth(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, claims, err := m.parseBearer(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, domainerrors.Response{
					Success:  false,
					Code:     http.StatusUnauthorized,
					Message:  domainerrors.ErrNotAuthenticated.Message(),
					Error:    &domainerrors.ErrorInfo{Code: domainerrors.ErrNotAuthenticated.ErrorCode()},
					Redirect: "/login",
				})
			}

			role := entity.Role(stringClaim(claims, "role"))
			if len(roles) > 0 && !entity.Roles(roles).Contains(role) {
				return c.JSON(http.StatusForbidden, domainerrors.Response{
					Success:  false,
					Code:     http.StatusForbidden,
					Message:  domainerrors.ErrForbiddenRole.Message(),
					Error:    &domainerrors.ErrorInfo{Code: domainerrors.ErrForbiddenRole.ErrorCode()},
					Redirect: "/home",
				})
			}

			c.Set(ContextToken, token)
			c.Set(ContextUserID, stringClaim(claims, "sub"))
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}

// PublicOnly keeps authenticated users away from the login and
// registration surfaces; they are sent back to /home instead.
func (m *AuthMiddleware) PublicOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, _, err := m.parseBearer(c); err == nil {
			return c.JSON(http.StatusSeeOther, domainerrors.Response{
				Success:  false,
				Code:     http.StatusSeeOther,
				Message:  "Already logged in",
				Redirect: "/home",
			})
		}

		return next(c)
	}
}

func (m *AuthMiddleware) parseBearer(c echo.Context) (string, jwt.MapClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return "", nil, domainerrors.ErrNotAuthenticated
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrSessionExpired
		}

		return []byte(m.cfg.SecretKey.Access), nil
	})
	if err != nil || !token.Valid {
		return "", nil, domainerrors.ErrSessionExpired
	}

	return tokenString, claims, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)

	return value
}
