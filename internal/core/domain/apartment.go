package domain

import (
	"errors"
	"time"
)

var ErrApartmentNotFound = errors.New("apartment not found")

// Orientation values accepted for an apartment listing.
const (
	OrientationNorth = "north facing"
	OrientationSouth = "south facing"
	OrientationEast  = "east facing"
	OrientationWest  = "west facing"
)

// Objective values describe why a listing exists.
const (
	ObjectiveBuy  = "buy"
	ObjectiveRent = "rent"
	ObjectiveSell = "sell"
)

// Property type values.
const (
	PropertyResidential = "residential"
	PropertyCommercial  = "commercial"
)

// Address locates an apartment inside the country/division hierarchy.
type Address struct {
	HouseNumber     int    `json:"house_number" bson:"house_number"`
	Road            string `json:"road" bson:"road"`
	Area            string `json:"area" bson:"area"`
	DivisionOrThana string `json:"division_or_thana" bson:"division_or_thana"`
	Country         string `json:"country" bson:"country"`
}

// Details captures the physical layout of the unit.
type Details struct {
	Images        []string `json:"images" bson:"images"`
	SizeSqft      float64  `json:"size_sqft" bson:"size_sqft"`
	Bedrooms      int      `json:"bedrooms" bson:"bedrooms"`
	Balconies     int      `json:"balconies" bson:"balconies"`
	Toilets       int      `json:"toilets" bson:"toilets"`
	DrawingDining bool     `json:"drawing_dining" bson:"drawing_dining"`
	Kitchen       bool     `json:"kitchen" bson:"kitchen"`
}

// Building describes the surrounding structure.
type Building struct {
	FloorPositions []string `json:"floor_positions" bson:"floor_positions"`
	UnitsPerFloor  int      `json:"units_per_floor" bson:"units_per_floor"`
}

// Price is quoted per square foot.
type Price struct {
	RatePerSqft float64 `json:"rate_per_sqft" bson:"rate_per_sqft"`
	Currency    string  `json:"currency" bson:"currency"`
}

// Completion tracks construction progress and condition.
type Completion struct {
	Percentage int    `json:"percentage" bson:"percentage"`
	Condition  string `json:"condition" bson:"condition"`
}

// Apartment is the listing aggregate root.
type Apartment struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Address      Address    `json:"address" bson:"address"`
	Details      Details    `json:"apartment_details" bson:"apartment_details"`
	Building     Building   `json:"building_details" bson:"building_details"`
	Price        Price      `json:"price" bson:"price"`
	Orientation  string     `json:"orientation" bson:"orientation"`
	Completion   Completion `json:"completion_status" bson:"completion_status"`
	PropertyType string     `json:"property_type" bson:"property_type"`
	Objective    string     `json:"objective" bson:"objective"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// ApartmentFilter narrows a listing query. Empty or "all" fields are ignored.
// Division and District only take effect when Country itself is filtering,
// mirroring the cascading search the storefront performs.
type ApartmentFilter struct {
	Country      string
	Division     string
	District     string
	Objective    string
	PropertyType string
	SizeMin      float64
	SizeMax      float64
	HasSizeRange bool
	Page         int
	Size         int
}
