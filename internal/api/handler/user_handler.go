package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Naimul9/sufiza-backend-render/internal/api/metrics"
	"github.com/Naimul9/sufiza-backend-render/internal/api/session"
	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
	"github.com/Naimul9/sufiza-backend-render/internal/core/ports"
)

// UserHandler serves registration, the session lifecycle and user CRUD.
type UserHandler struct {
	auth     ports.AuthService
	users    ports.UserService
	sessions *session.Manager
}

func NewUserHandler(auth ports.AuthService, users ports.UserService, sessions *session.Manager) *UserHandler {
	return &UserHandler{auth: auth, users: users, sessions: sessions}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Avatar:   req.Avatar,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, ok("User created successfully", toProfileResponse(user)))
}

// Login authenticates a user and sets both session cookies.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      429   {object}  envelope
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	if err := h.sessions.Attach(c, pair.AccessToken, pair.RefreshToken); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, ok("Login successful", toProfileResponse(user)))
}

// Logout clears both session cookies. Idempotent: succeeds whether or not a
// session was present.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, ok("Logout successful", nil))
}

// Refresh mints a new access token from the refresh cookie. The refresh
// cookie is left as-is; only the access cookie is replaced. On any failure
// no cookie is set.
//
// @Summary      Refresh the access token
// @Tags         users
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/users/refresh [post]
func (h *UserHandler) Refresh(c echo.Context) error {
	refreshToken, found := h.sessions.ReadRefresh(c)
	if !found {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	accessToken, err := h.auth.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return err
	}

	if err := h.sessions.AttachAccess(c, accessToken); err != nil {
		return err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, ok("Access token refreshed", nil))
}

// List returns every user. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Users fetched successfully", users))
}

// GetByID returns a single user by ObjectID.
//
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("User fetched successfully", user))
}

// Profile returns the authenticated user's own record. The owner policy
// guarantees the path email equals the claim email; the claim is used for
// the lookup.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Account email"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/users/profile/{email} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Profile fetched successfully", toProfileResponse(user)))
}

// Update modifies a user's mutable fields. Admin only.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User ID"
// @Param        body  body  updateUserRequest  true  "Fields to update"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), domain.UserUpdate{
		Name:   req.Name,
		Phone:  req.Phone,
		Avatar: req.Avatar,
		Role:   req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("User updated successfully", user))
}

// Delete removes a user. Admin only.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("User deleted successfully", nil))
}
