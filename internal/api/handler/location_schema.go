package handler

import "github.com/Naimul9/sufiza-backend-render/internal/core/domain"

type districtRequest struct {
	Name string `json:"name" validate:"required"`
}

type divisionRequest struct {
	Name      string            `json:"name"      validate:"required"`
	Districts []districtRequest `json:"districts" validate:"dive"`
}

type locationRequest struct {
	Country   string            `json:"country"   validate:"required"`
	Divisions []divisionRequest `json:"divisions" validate:"dive"`
}

func (r *locationRequest) toDomain() *domain.Location {
	divisions := make([]domain.Division, 0, len(r.Divisions))
	for _, d := range r.Divisions {
		districts := make([]domain.District, 0, len(d.Districts))
		for _, dist := range d.Districts {
			districts = append(districts, domain.District{Name: dist.Name})
		}
		divisions = append(divisions, domain.Division{Name: d.Name, Districts: districts})
	}
	return &domain.Location{Country: r.Country, Divisions: divisions}
}
