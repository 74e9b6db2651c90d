package ports

import (
	"context"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

// CountrySummary is the lightweight item returned by the country index.
type CountrySummary struct {
	ID      string `json:"id"`
	Country string `json:"country"`
}

type LocationService interface {
	Countries(ctx context.Context) ([]CountrySummary, error)
	Divisions(ctx context.Context, countryID string) ([]domain.Division, error)
	Districts(ctx context.Context, countryID, divisionID string) ([]domain.District, error)
	Create(ctx context.Context, location *domain.Location) (*domain.Location, error)
	Update(ctx context.Context, id string, location *domain.Location) (*domain.Location, error)
	Delete(ctx context.Context, id string) error
}
