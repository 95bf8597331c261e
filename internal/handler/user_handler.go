package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/basquehq/basque-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type UserResponse struct {
	ZipCode          string    `json:"zipCode"`
	Transportation   string    `json:"transportation"`
	Diet             string    `json:"diet"`
	HomeEnergy       string    `json:"homeEnergy"`
	Thermostat       string    `json:"thermostat"`
	Recycling        string    `json:"recycling"`
	WaterUsage       string    `json:"waterUsage"`
	FlightsPerYear   string    `json:"flightsPerYear"`
	HomeSize         string    `json:"homeSize"`
	WFHDays          string    `json:"wfhDays"`
	Points           int       `json:"points"`
	CompletedActions []uint64  `json:"completedActions"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseUserID(c.QueryParam("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		c.Logger().Errorf("get user: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch user"))
	}
	return c.JSON(http.StatusOK, UserResponse{
		ZipCode:          user.ZipCode,
		Transportation:   user.Transportation,
		Diet:             user.Diet,
		HomeEnergy:       user.HomeEnergy,
		Thermostat:       user.Thermostat,
		Recycling:        user.Recycling,
		WaterUsage:       user.WaterUsage,
		FlightsPerYear:   user.FlightsPerYear,
		HomeSize:         user.HomeSize,
		WFHDays:          user.WFHDays,
		Points:           user.Points,
		CompletedActions: user.CompletedActionIDs(),
		CreatedAt:        user.CreatedAt,
	})
}

func parseUserID(raw string) (uint64, error) {
	if raw == "" {
		return 0, errors.New("missing userId")
	}
	return strconv.ParseUint(raw, 10, 64)
}
