package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Naimul9/sufiza-backend-render/internal/api/middleware"
)

// ctxEmail extracts the authenticated email injected by the Authenticate
// middleware. Its presence proves the middleware ran; a handler reached
// without it rejects with 401 rather than proceeding unauthenticated.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.CtxEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
