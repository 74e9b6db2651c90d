package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
	"github.com/Naimul9/sufiza-backend-render/internal/core/ports"
)

const defaultPageSize = 6

// ApartmentService exposes listing search and admin mutations.
type ApartmentService struct {
	repo   ports.ApartmentRepository
	logger zerolog.Logger
}

func NewApartmentService(repo ports.ApartmentRepository, logger zerolog.Logger) *ApartmentService {
	return &ApartmentService{repo: repo, logger: logger}
}

func (s *ApartmentService) Search(ctx context.Context, filter domain.ApartmentFilter) (*ports.ApartmentPage, error) {
	if filter.Size <= 0 {
		filter.Size = defaultPageSize
	}
	if filter.Page < 0 {
		filter.Page = 0
	}

	apartments, total, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ApartmentPage{Total: total, Apartments: apartments}, nil
}

func (s *ApartmentService) GetByLocation(ctx context.Context, location string) (*domain.Apartment, error) {
	return s.repo.FindByLocation(ctx, location)
}

func (s *ApartmentService) GetByID(ctx context.Context, id string) (*domain.Apartment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApartmentService) Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	now := time.Now().UTC()
	apartment.CreatedAt = now
	apartment.UpdatedAt = now

	created, err := s.repo.Create(ctx, apartment)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("apartment_id", created.ID).Msg("apartment created")
	return created, nil
}

func (s *ApartmentService) Update(ctx context.Context, id string, apartment *domain.Apartment) (*domain.Apartment, error) {
	apartment.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.UpdateByID(ctx, id, apartment)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("apartment_id", id).Msg("apartment updated")
	return updated, nil
}

func (s *ApartmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("apartment_id", id).Msg("apartment deleted")
	return nil
}
