package ports

import (
	"context"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

// ApartmentPage is a filtered page of listings with the total match count.
type ApartmentPage struct {
	Total      int64
	Apartments []*domain.Apartment
}

type ApartmentService interface {
	Search(ctx context.Context, filter domain.ApartmentFilter) (*ApartmentPage, error)
	GetByLocation(ctx context.Context, location string) (*domain.Apartment, error)
	GetByID(ctx context.Context, id string) (*domain.Apartment, error)
	Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
	Update(ctx context.Context, id string, apartment *domain.Apartment) (*domain.Apartment, error)
	Delete(ctx context.Context, id string) error
}
