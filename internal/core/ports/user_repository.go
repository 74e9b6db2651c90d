package ports

import (
	"context"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

// UserRepository defines the persistence boundary for user accounts.
// Implementations return domain.ErrUserNotFound for missing documents and
// domain.ErrInvalidID for malformed identifiers.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateByID(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}
