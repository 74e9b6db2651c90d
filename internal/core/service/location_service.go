package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
	"github.com/Naimul9/sufiza-backend-render/internal/core/ports"
)

// LocationService exposes the country/division/district hierarchy.
type LocationService struct {
	repo   ports.LocationRepository
	logger zerolog.Logger
}

func NewLocationService(repo ports.LocationRepository, logger zerolog.Logger) *LocationService {
	return &LocationService{repo: repo, logger: logger}
}

func (s *LocationService) Countries(ctx context.Context) ([]ports.CountrySummary, error) {
	locations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	countries := make([]ports.CountrySummary, 0, len(locations))
	for _, l := range locations {
		countries = append(countries, ports.CountrySummary{ID: l.ID, Country: l.Country})
	}
	return countries, nil
}

func (s *LocationService) Divisions(ctx context.Context, countryID string) ([]domain.Division, error) {
	location, err := s.repo.FindByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	return location.Divisions, nil
}

func (s *LocationService) Districts(ctx context.Context, countryID, divisionID string) ([]domain.District, error) {
	location, err := s.repo.FindByID(ctx, countryID)
	if err != nil {
		return nil, err
	}

	division, err := location.DivisionByID(divisionID)
	if err != nil {
		return nil, err
	}
	return division.Districts, nil
}

func (s *LocationService) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	now := time.Now().UTC()
	location.CreatedAt = now
	location.UpdatedAt = now

	created, err := s.repo.Create(ctx, location)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("location_id", created.ID).Str("country", created.Country).Msg("location created")
	return created, nil
}

func (s *LocationService) Update(ctx context.Context, id string, location *domain.Location) (*domain.Location, error) {
	location.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.UpdateByID(ctx, id, location)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("location_id", id).Msg("location updated")
	return updated, nil
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("location_id", id).Msg("location deleted")
	return nil
}
