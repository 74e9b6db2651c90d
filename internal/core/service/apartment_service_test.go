package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

type stubApartmentRepo struct {
	lastFilter domain.ApartmentFilter
	apartments []*domain.Apartment
	total      int64
}

func (s *stubApartmentRepo) Find(ctx context.Context, filter domain.ApartmentFilter) ([]*domain.Apartment, int64, error) {
	s.lastFilter = filter
	return s.apartments, s.total, nil
}

func (s *stubApartmentRepo) FindByLocation(ctx context.Context, location string) (*domain.Apartment, error) {
	return nil, domain.ErrApartmentNotFound
}

func (s *stubApartmentRepo) FindByID(ctx context.Context, id string) (*domain.Apartment, error) {
	return nil, domain.ErrApartmentNotFound
}

func (s *stubApartmentRepo) Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	return apartment, nil
}

func (s *stubApartmentRepo) UpdateByID(ctx context.Context, id string, apartment *domain.Apartment) (*domain.Apartment, error) {
	return apartment, nil
}

func (s *stubApartmentRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func TestApartmentSearch_DefaultsPageSize(t *testing.T) {
	repo := &stubApartmentRepo{total: 9}
	svc := NewApartmentService(repo, zerolog.Nop())

	page, err := svc.Search(context.Background(), domain.ApartmentFilter{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if repo.lastFilter.Size != defaultPageSize {
		t.Fatalf("expected default size %d, got %d", defaultPageSize, repo.lastFilter.Size)
	}
	if repo.lastFilter.Page != 0 {
		t.Fatalf("expected page 0, got %d", repo.lastFilter.Page)
	}
	if page.Total != 9 {
		t.Fatalf("expected total 9, got %d", page.Total)
	}
}

func TestApartmentSearch_KeepsExplicitPagination(t *testing.T) {
	repo := &stubApartmentRepo{}
	svc := NewApartmentService(repo, zerolog.Nop())

	_, err := svc.Search(context.Background(), domain.ApartmentFilter{Page: 3, Size: 12})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if repo.lastFilter.Page != 3 || repo.lastFilter.Size != 12 {
		t.Fatalf("pagination lost: %+v", repo.lastFilter)
	}
}

func TestApartmentCreate_StampsTimestamps(t *testing.T) {
	repo := &stubApartmentRepo{}
	svc := NewApartmentService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Apartment{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("timestamps not stamped: %+v", created)
	}
}
