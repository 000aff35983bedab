package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authDomain "payroll-loan-backend/internal/domain/auth"
)

const userContextKey = "auth.user"

// TokenVerifier turns a raw bearer token into the authenticated principal.
type TokenVerifier interface {
	VerifyToken(raw string) (*authDomain.User, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// principal on the echo context.
func RequireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			user, err := verifier.VerifyToken(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			SetUser(c, *user)
			return next(c)
		}
	}
}

// SetUser places the principal on the echo context. Exposed so tests can
// stand in for RequireAuth.
func SetUser(c echo.Context, user authDomain.User) {
	c.Set(userContextKey, user)
}

// UserFromContext returns the authenticated principal set by RequireAuth.
func UserFromContext(c echo.Context) (authDomain.User, bool) {
	user, ok := c.Get(userContextKey).(authDomain.User)
	return user, ok
}
