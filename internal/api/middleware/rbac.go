package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
	"github.com/Naimul9/sufiza-backend-render/internal/core/ports"
)

// AdminOnly admits only administrators. The role is re-fetched from the user
// store by the authenticated email rather than trusted from the token claim,
// so a role change takes effect before the token expires. The claim's role
// is left in the context for logging only.
func AdminOnly(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(CtxEmail).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return err
			}
			if user.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}

// OwnerOnly admits the request only when the authenticated email equals the
// :email path parameter. An equality check, not a capability system.
func OwnerOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(CtxEmail).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if email != c.Param("email") {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
