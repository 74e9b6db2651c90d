package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Naimul9/sufiza-backend-render/internal/api/metrics"
	"github.com/Naimul9/sufiza-backend-render/internal/api/session"
	"github.com/Naimul9/sufiza-backend-render/internal/core/auth"
)

// Context keys populated by Authenticate.
const (
	CtxEmail = "email"
	CtxRole  = "role"
)

// Authenticate reads the signed access cookie, verifies the token inside it
// and injects the claims into the request context. A missing cookie, a
// tampered cookie envelope and an invalid or expired token all produce the
// same 401 so the client learns nothing about which check failed.
func Authenticate(sessions *session.Manager, tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accessToken, ok := sessions.ReadAccess(c)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := tokens.VerifyAccessToken(accessToken)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
