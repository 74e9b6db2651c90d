package ports

import (
	"context"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

// RegisterInput carries the validated fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Avatar   string
	Password string
	Role     string
}

// TokenPair bundles the two tokens minted at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh mints a new access token from a still-valid refresh token.
	// The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// LoginLimiter throttles credential guessing per email address.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted for the address.
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
