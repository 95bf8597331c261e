package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/basquehq/basque-backend/internal/geo"
	"github.com/labstack/echo/v4"
)

// ZipLookup is what the handler needs from the zippopotam client.
type ZipLookup interface {
	Lookup(ctx context.Context, zip string) (*geo.Place, error)
}

type ZipcodeHandler struct {
	client ZipLookup
}

func NewZipcodeHandler(client ZipLookup) *ZipcodeHandler {
	return &ZipcodeHandler{client: client}
}

type zipState struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Color        string `json:"color"`
}

type zipCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ZipcodeResponse struct {
	ZipCode      string         `json:"zipCode"`
	City         string         `json:"city"`
	State        zipState       `json:"state"`
	DisplayName  string         `json:"displayName"`
	FullLocation string         `json:"fullLocation"`
	Coordinates  zipCoordinates `json:"coordinates"`
}

func (h *ZipcodeHandler) Get(c echo.Context) error {
	zip := c.QueryParam("zip")
	if zip == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "zip is required"))
	}
	if !zipPattern.MatchString(zip) {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid ZIP code format"))
	}

	place, err := h.client.Lookup(c.Request().Context(), zip)
	if err != nil {
		if errors.Is(err, geo.ErrZipNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "ZIP code not found"))
		}
		c.Logger().Errorf("zip lookup: %v", err)
		return c.JSON(http.StatusBadGateway, NewErrorResponse("upstream_error", "failed to lookup ZIP code"))
	}

	return c.JSON(http.StatusOK, ZipcodeResponse{
		ZipCode: place.ZipCode,
		City:    place.City,
		State: zipState{
			Abbreviation: place.StateAbbr,
			Name:         place.StateName,
			Symbol:       geo.StateSymbol(place.StateAbbr),
			Color:        geo.StateColor(place.StateAbbr),
		},
		DisplayName:  fmt.Sprintf("%s, %s", place.City, place.StateAbbr),
		FullLocation: fmt.Sprintf("%s, %s", place.City, place.StateName),
		Coordinates: zipCoordinates{
			Latitude:  place.Latitude,
			Longitude: place.Longitude,
		},
	})
}
