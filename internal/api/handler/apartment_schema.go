package handler

import (
	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

// --- Request types ---

type addressRequest struct {
	HouseNumber     int    `json:"house_number"      validate:"required"`
	Road            string `json:"road"              validate:"required"`
	Area            string `json:"area"              validate:"required"`
	DivisionOrThana string `json:"division_or_thana" validate:"required"`
	Country         string `json:"country"           validate:"required"`
}

type detailsRequest struct {
	Images        []string `json:"images"         validate:"required,min=1,dive,url"`
	SizeSqft      float64  `json:"size_sqft"      validate:"required,gt=0"`
	Bedrooms      int      `json:"bedrooms"       validate:"required,gte=1"`
	Balconies     int      `json:"balconies"      validate:"gte=0"`
	Toilets       int      `json:"toilets"        validate:"required,gte=1"`
	DrawingDining bool     `json:"drawing_dining"`
	Kitchen       bool     `json:"kitchen"`
}

type buildingRequest struct {
	FloorPositions []string `json:"floor_positions" validate:"required,min=1"`
	UnitsPerFloor  int      `json:"units_per_floor" validate:"required,gte=1"`
}

type priceRequest struct {
	RatePerSqft float64 `json:"rate_per_sqft" validate:"required,gt=0"`
	Currency    string  `json:"currency"      validate:"required"`
}

type completionRequest struct {
	Percentage int    `json:"percentage" validate:"gte=0,lte=100"`
	Condition  string `json:"condition"  validate:"required,oneof=new used"`
}

type apartmentRequest struct {
	Address      addressRequest    `json:"address"           validate:"required"`
	Details      detailsRequest    `json:"apartment_details" validate:"required"`
	Building     buildingRequest   `json:"building_details"  validate:"required"`
	Price        priceRequest      `json:"price"             validate:"required"`
	Orientation  string            `json:"orientation"       validate:"omitempty,oneof='north facing' 'south facing' 'east facing' 'west facing'"`
	Completion   completionRequest `json:"completion_status" validate:"required"`
	PropertyType string            `json:"property_type"     validate:"required,oneof=residential commercial"`
	Objective    string            `json:"objective"         validate:"required,oneof=buy rent sell"`
}

func (r *apartmentRequest) toDomain() *domain.Apartment {
	return &domain.Apartment{
		Address: domain.Address{
			HouseNumber:     r.Address.HouseNumber,
			Road:            r.Address.Road,
			Area:            r.Address.Area,
			DivisionOrThana: r.Address.DivisionOrThana,
			Country:         r.Address.Country,
		},
		Details: domain.Details{
			Images:        r.Details.Images,
			SizeSqft:      r.Details.SizeSqft,
			Bedrooms:      r.Details.Bedrooms,
			Balconies:     r.Details.Balconies,
			Toilets:       r.Details.Toilets,
			DrawingDining: r.Details.DrawingDining,
			Kitchen:       r.Details.Kitchen,
		},
		Building: domain.Building{
			FloorPositions: r.Building.FloorPositions,
			UnitsPerFloor:  r.Building.UnitsPerFloor,
		},
		Price: domain.Price{
			RatePerSqft: r.Price.RatePerSqft,
			Currency:    r.Price.Currency,
		},
		Orientation: r.Orientation,
		Completion: domain.Completion{
			Percentage: r.Completion.Percentage,
			Condition:  r.Completion.Condition,
		},
		PropertyType: r.PropertyType,
		Objective:    r.Objective,
	}
}

// --- Response types ---

// listApartmentsResponse carries a filtered page and the pre-pagination total.
type listApartmentsResponse struct {
	TotalApartments int64               `json:"totalApartments"`
	Apartments      []*domain.Apartment `json:"apartments"`
}
