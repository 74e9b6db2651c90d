package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func queryContext(e *echo.Echo, rawQuery string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/apartments?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseApartmentFilter_Defaults(t *testing.T) {
	e := echo.New()

	filter, err := parseApartmentFilter(queryContext(e, ""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if filter.Country != "" || filter.Objective != "" || filter.HasSizeRange {
		t.Fatalf("expected zero filter, got %+v", filter)
	}
	if filter.Page != 0 || filter.Size != 0 {
		t.Fatalf("expected zero pagination, got page=%d size=%d", filter.Page, filter.Size)
	}
}

func TestParseApartmentFilter_AllDisablesFacet(t *testing.T) {
	e := echo.New()

	filter, err := parseApartmentFilter(queryContext(e, "country=all&objective=ALL&division=Dhaka"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if filter.Country != "" {
		t.Fatalf("'all' country should disable the facet, got %q", filter.Country)
	}
	if filter.Objective != "" {
		t.Fatalf("'ALL' objective should disable the facet, got %q", filter.Objective)
	}
	if filter.Division != "Dhaka" {
		t.Fatalf("division lost: %q", filter.Division)
	}
}

func TestParseApartmentFilter_SizeRange(t *testing.T) {
	e := echo.New()

	filter, err := parseApartmentFilter(queryContext(e, "propertieRange=800-1200"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !filter.HasSizeRange || filter.SizeMin != 800 || filter.SizeMax != 1200 {
		t.Fatalf("unexpected range: %+v", filter)
	}
}

func TestParseApartmentFilter_BadInput(t *testing.T) {
	e := echo.New()

	for _, rawQuery := range []string{
		"page=-1",
		"page=abc",
		"size=0",
		"size=xyz",
		"propertieRange=1200",
		"propertieRange=big-small",
		"propertieRange=1200-800",
	} {
		_, err := parseApartmentFilter(queryContext(e, rawQuery))
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", rawQuery, err)
		}
	}
}

func TestParseApartmentFilter_Pagination(t *testing.T) {
	e := echo.New()

	filter, err := parseApartmentFilter(queryContext(e, "page=2&size=12"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if filter.Page != 2 || filter.Size != 12 {
		t.Fatalf("unexpected pagination: %+v", filter)
	}
}
