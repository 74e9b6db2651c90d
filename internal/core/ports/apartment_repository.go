package ports

import (
	"context"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

// ApartmentRepository defines the persistence boundary for listings.
type ApartmentRepository interface {
	// Find returns the page of listings matching the filter plus the total
	// match count before pagination.
	Find(ctx context.Context, filter domain.ApartmentFilter) ([]*domain.Apartment, int64, error)
	// FindByLocation returns the first listing whose division or country
	// matches the given name.
	FindByLocation(ctx context.Context, location string) (*domain.Apartment, error)
	FindByID(ctx context.Context, id string) (*domain.Apartment, error)
	Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
	UpdateByID(ctx context.Context, id string, apartment *domain.Apartment) (*domain.Apartment, error)
	DeleteByID(ctx context.Context, id string) error
}
