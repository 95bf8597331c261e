package handler

import (
	"net/http"

	"github.com/basquehq/basque-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type RecommendationHandler struct {
	svc service.RecommendationService
}

func NewRecommendationHandler(svc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

func (h *RecommendationHandler) Post(c echo.Context) error {
	var answers service.RecommendationAnswers
	if err := c.Bind(&answers); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	rec, err := h.svc.Build(c.Request().Context(), answers)
	if err != nil {
		c.Logger().Errorf("recommendations: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to build recommendations"))
	}
	return c.JSON(http.StatusOK, rec)
}
