package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Naimul9/sufiza-backend-render/internal/core/ports"
)

// LocationHandler serves the country/division/district hierarchy.
type LocationHandler struct {
	locations ports.LocationService
}

func NewLocationHandler(locations ports.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// Countries returns the id and name of every country document.
//
// @Summary      List countries
// @Tags         locations
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/locations/countrys [get]
func (h *LocationHandler) Countries(c echo.Context) error {
	countries, err := h.locations.Countries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Countries fetched successfully", countries))
}

// Divisions returns the divisions of one country.
//
// @Summary      List divisions of a country
// @Tags         locations
// @Produce      json
// @Param        countryId  path  string  true  "Country ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/locations/{countryId}/divisions [get]
func (h *LocationHandler) Divisions(c echo.Context) error {
	divisions, err := h.locations.Divisions(c.Request().Context(), c.Param("countryId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Divisions fetched successfully", divisions))
}

// Districts returns the districts of one division.
//
// @Summary      List districts of a division
// @Tags         locations
// @Produce      json
// @Param        countryId   path  string  true  "Country ID"
// @Param        divisionId  path  string  true  "Division ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/locations/{countryId}/divisions/{divisionId}/districts [get]
func (h *LocationHandler) Districts(c echo.Context) error {
	districts, err := h.locations.Districts(c.Request().Context(), c.Param("countryId"), c.Param("divisionId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Districts fetched successfully", districts))
}

// Create adds a country document. Admin only.
//
// @Summary      Create location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body  locationRequest  true  "Country with divisions"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	location, err := h.locations.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ok("Location created successfully", location))
}

// Update replaces a country document. Admin only.
//
// @Summary      Update location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "Location ID"
// @Param        body  body  locationRequest  true  "Country with divisions"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	location, err := h.locations.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Location updated successfully", location))
}

// Delete removes a country document. Admin only.
//
// @Summary      Delete location
// @Tags         locations
// @Produce      json
// @Param        id  path  string  true  "Location ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c echo.Context) error {
	if err := h.locations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("Location deleted successfully", nil))
}
