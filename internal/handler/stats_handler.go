package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/basquehq/basque-backend/internal/rank"
	"github.com/basquehq/basque-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

type UserStatsResponse struct {
	TotalPoints         int                    `json:"totalPoints"`
	TotalActions        int                    `json:"totalActions"`
	MemberSince         time.Time              `json:"memberSince"`
	ZipCode             string                 `json:"zipCode"`
	ActionHistory       []service.HistoryEntry `json:"actionHistory"`
	StatsByCategory     []rank.CategoryStat    `json:"statsByCategory"`
	CommunityComparison rank.Comparison        `json:"communityComparison"`
}

func (h *StatsHandler) Get(c echo.Context) error {
	id, err := parseUserID(c.QueryParam("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	stats, err := h.svc.UserStats(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		c.Logger().Errorf("user stats: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to generate statistics"))
	}
	return c.JSON(http.StatusOK, UserStatsResponse{
		TotalPoints:         stats.TotalPoints,
		TotalActions:        stats.TotalActions,
		MemberSince:         stats.MemberSince,
		ZipCode:             stats.ZipCode,
		ActionHistory:       stats.ActionHistory,
		StatsByCategory:     stats.StatsByCategory,
		CommunityComparison: stats.Community,
	})
}
