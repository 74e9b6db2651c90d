package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

func TestBuildFilter_Empty(t *testing.T) {
	query := buildFilter(domain.ApartmentFilter{})
	if len(query) != 0 {
		t.Fatalf("expected empty query, got %v", query)
	}
}

func TestBuildFilter_Cascade(t *testing.T) {
	query := buildFilter(domain.ApartmentFilter{
		Country:  "Bangladesh",
		Division: "Dhaka",
		District: "Gulshan",
	})

	want := bson.M{
		"address.country":           regexFold("Bangladesh"),
		"address.division_or_thana": regexFold("Dhaka"),
		"address.district":          regexFold("Gulshan"),
	}
	if !reflect.DeepEqual(query, want) {
		t.Fatalf("got %v, want %v", query, want)
	}
}

// Division and district never narrow the query on their own; without a
// country they would match across unrelated location trees.
func TestBuildFilter_DivisionIgnoredWithoutCountry(t *testing.T) {
	query := buildFilter(domain.ApartmentFilter{
		Division: "Dhaka",
		District: "Gulshan",
	})
	if len(query) != 0 {
		t.Fatalf("expected empty query, got %v", query)
	}
}

func TestBuildFilter_Facets(t *testing.T) {
	query := buildFilter(domain.ApartmentFilter{
		Objective:    "sell",
		PropertyType: "apartment",
	})

	want := bson.M{
		"objective":     regexFold("sell"),
		"property_type": regexFold("apartment"),
	}
	if !reflect.DeepEqual(query, want) {
		t.Fatalf("got %v, want %v", query, want)
	}
}

func TestBuildFilter_SizeRange(t *testing.T) {
	query := buildFilter(domain.ApartmentFilter{
		HasSizeRange: true,
		SizeMin:      800,
		SizeMax:      1400,
	})

	want := bson.M{
		"apartment_details.size_sqft": bson.M{"$gte": 800.0, "$lte": 1400.0},
	}
	if !reflect.DeepEqual(query, want) {
		t.Fatalf("got %v, want %v", query, want)
	}
}

func TestRegexFold_CaseInsensitive(t *testing.T) {
	m := regexFold("Dhaka")
	if m["$options"] != "i" {
		t.Fatalf("expected case-insensitive option, got %v", m)
	}
	if m["$regex"] != "Dhaka" {
		t.Fatalf("expected pattern preserved, got %v", m)
	}
}
