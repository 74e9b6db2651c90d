package ports

import (
	"context"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

// LocationRepository defines the persistence boundary for the
// country/division/district hierarchy.
type LocationRepository interface {
	FindAll(ctx context.Context) ([]*domain.Location, error)
	FindByID(ctx context.Context, id string) (*domain.Location, error)
	Create(ctx context.Context, location *domain.Location) (*domain.Location, error)
	UpdateByID(ctx context.Context, id string, location *domain.Location) (*domain.Location, error)
	DeleteByID(ctx context.Context, id string) error
}
