package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Naimul9/sufiza-backend-render/internal/core/auth"
	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
	"github.com/Naimul9/sufiza-backend-render/internal/core/ports"
)

// AuthService implements registration, login and access token refresh.
type AuthService struct {
	repo    ports.UserRepository
	tokens  *auth.TokenService
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

// NewAuthService wires the account lifecycle. The limiter may be nil, in
// which case login attempts are not throttled.
func NewAuthService(repo ports.UserRepository, tokens *auth.TokenService, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = domain.DefaultAvatar
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		Avatar:       avatar,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints both tokens. Unknown email and wrong
// password produce the same ErrInvalidCredentials so nothing is revealed
// about which half failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// The limiter failing open beats locking everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			return nil, nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return nil, nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.Email, user.Role)
	if err != nil {
		return nil, nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, user, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token is read, not consumed: it stays valid until its natural expiry and
// there is no server-side revocation list.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	return s.tokens.IssueAccessToken(claims.Email, claims.Role)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
