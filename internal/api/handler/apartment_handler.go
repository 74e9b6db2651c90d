package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Naimul9/sufiza-backend-render/internal/api/metrics"
	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
	"github.com/Naimul9/sufiza-backend-render/internal/core/ports"
)

// ApartmentHandler serves the listing search and admin mutations.
type ApartmentHandler struct {
	apartments ports.ApartmentService
}

func NewApartmentHandler(apartments ports.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartments: apartments}
}

// Search returns a filtered, paginated page of listings.
//
// @Summary      Search apartments
// @Tags         apartments
// @Produce      json
// @Param        country         query  string  false  "Country filter ('all' disables)"
// @Param        division        query  string  false  "Division filter"
// @Param        districts       query  string  false  "District filter"
// @Param        objective       query  string  false  "buy, rent or sell"
// @Param        sortPropertie   query  string  false  "residential or commercial"
// @Param        propertieRange  query  string  false  "Size range, e.g. 800-1200"
// @Param        page            query  int     false  "Zero-based page"
// @Param        size            query  int     false  "Page size (default 6)"
// @Success      200  {object}  envelope
// @Router       /api/apartments [get]
func (h *ApartmentHandler) Search(c echo.Context) error {
	filter, err := parseApartmentFilter(c)
	if err != nil {
		return err
	}

	page, err := h.apartments.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	metrics.ApartmentSearchesTotal.Inc()
	return c.JSON(http.StatusOK, ok("Apartments fetched successfully", listApartmentsResponse{
		TotalApartments: page.Total,
		Apartments:      page.Apartments,
	}))
}

// GetByLocation returns the first listing in the named division or country.
//
// @Summary      Get apartment by location name
// @Tags         apartments
// @Produce      json
// @Param        location  path  string  true  "Division or country name"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/apartments/location/{location} [get]
func (h *ApartmentHandler) GetByLocation(c echo.Context) error {
	apartment, err := h.apartments.GetByLocation(c.Request().Context(), c.Param("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Apartment fetched successfully", apartment))
}

// GetByID returns a single listing by ObjectID.
//
// @Summary      Get apartment details
// @Tags         apartments
// @Produce      json
// @Param        id  path  string  true  "Apartment ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/apartments/details/{id} [get]
func (h *ApartmentHandler) GetByID(c echo.Context) error {
	apartment, err := h.apartments.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Apartment fetched successfully", apartment))
}

// Create adds a new listing. Admin only.
//
// @Summary      Create apartment
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Param        body  body  apartmentRequest  true  "Listing details"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /api/apartments [post]
func (h *ApartmentHandler) Create(c echo.Context) error {
	var req apartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	apartment, err := h.apartments.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ok("Apartment created successfully", apartment))
}

// Update replaces a listing's content. Admin only.
//
// @Summary      Update apartment
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "Apartment ID"
// @Param        body  body  apartmentRequest  true  "Listing details"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/apartments/{id} [put]
func (h *ApartmentHandler) Update(c echo.Context) error {
	var req apartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	apartment, err := h.apartments.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Apartment updated successfully", apartment))
}

// Delete removes a listing. Admin only.
//
// @Summary      Delete apartment
// @Tags         apartments
// @Produce      json
// @Param        id  path  string  true  "Apartment ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/apartments/{id} [delete]
func (h *ApartmentHandler) Delete(c echo.Context) error {
	if err := h.apartments.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Apartment deleted successfully", nil))
}

// parseApartmentFilter maps the query string to a domain filter. "all" and
// absent values mean "no filter" for the string facets.
func parseApartmentFilter(c echo.Context) (domain.ApartmentFilter, error) {
	filter := domain.ApartmentFilter{
		Country:      facet(c.QueryParam("country")),
		Division:     facet(c.QueryParam("division")),
		District:     facet(c.QueryParam("districts")),
		Objective:    facet(c.QueryParam("objective")),
		PropertyType: facet(c.QueryParam("sortPropertie")),
	}

	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "page must be a non-negative integer")
		}
		filter.Page = page
	}

	if v := c.QueryParam("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
		filter.Size = size
	}

	if v := c.QueryParam("propertieRange"); v != "" {
		bounds := strings.SplitN(v, "-", 2)
		if len(bounds) != 2 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "propertieRange must be of the form min-max")
		}
		min, errMin := strconv.ParseFloat(bounds[0], 64)
		max, errMax := strconv.ParseFloat(bounds[1], 64)
		if errMin != nil || errMax != nil || min < 0 || max < min {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "propertieRange must be of the form min-max")
		}
		filter.SizeMin = min
		filter.SizeMax = max
		filter.HasSizeRange = true
	}

	return filter, nil
}

// facet normalizes a query facet: "all" (any case) and "" both disable it.
func facet(v string) string {
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}
