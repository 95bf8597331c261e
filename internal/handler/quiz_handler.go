package handler

import (
	"net/http"

	"github.com/basquehq/basque-backend/internal/model"
	"github.com/basquehq/basque-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type QuizHandler struct {
	svc service.UserService
}

func NewQuizHandler(svc service.UserService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type QuizSubmitRequest struct {
	ZipCode        string `json:"zipCode" validate:"required,len=5,numeric"`
	Transportation string `json:"transportation"`
	Diet           string `json:"diet"`
	HomeEnergy     string `json:"homeEnergy"`
	Thermostat     string `json:"thermostat"`
	Recycling      string `json:"recycling"`
	WaterUsage     string `json:"waterUsage"`
	FlightsPerYear string `json:"flightsPerYear"`
	HomeSize       string `json:"homeSize"`
	WFHDays        string `json:"wfhDays"`
}

type QuizSubmitResponse struct {
	UserID uint64 `json:"userId"`
	Score  int    `json:"score"`
	Band   string `json:"band"`
}

func (h *QuizHandler) Submit(c echo.Context) error {
	var req QuizSubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "zipCode must be a 5-digit ZIP"))
	}

	user := &model.User{
		ZipCode:        req.ZipCode,
		Transportation: req.Transportation,
		Diet:           req.Diet,
		HomeEnergy:     req.HomeEnergy,
		Thermostat:     req.Thermostat,
		Recycling:      req.Recycling,
		WaterUsage:     req.WaterUsage,
		FlightsPerYear: req.FlightsPerYear,
		HomeSize:       req.HomeSize,
		WFHDays:        req.WFHDays,
	}
	res, err := h.svc.SubmitQuiz(c.Request().Context(), user)
	if err != nil {
		c.Logger().Errorf("quiz submit: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to submit quiz"))
	}
	return c.JSON(http.StatusCreated, QuizSubmitResponse{
		UserID: res.UserID,
		Score:  res.Score,
		Band:   res.Band,
	})
}
