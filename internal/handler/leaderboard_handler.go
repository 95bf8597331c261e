package handler

import (
	"net/http"
	"regexp"

	"github.com/basquehq/basque-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// OutsideTopSet replaces the numeric rank when the requested ZIP ranks
// past the displayed leaderboard.
const OutsideTopSet = "Outside Top 50"

var zipPattern = regexp.MustCompile(`^\d{5}$`)

type LeaderboardHandler struct {
	svc service.LeaderboardService
}

func NewLeaderboardHandler(svc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

type userRankPayload struct {
	ZipCode     string      `json:"zipCode"`
	TotalPoints int         `json:"totalPoints"`
	UserCount   int         `json:"userCount"`
	AvgPoints   float64     `json:"avgPoints"`
	TopScore    int         `json:"topScore"`
	Rank        interface{} `json:"rank"`
}

type LeaderboardResponse struct {
	Leaderboard interface{}      `json:"leaderboard"`
	UserRank    *userRankPayload `json:"userRank"`
	TotalZips   int              `json:"totalZips"`
}

func (h *LeaderboardHandler) Get(c echo.Context) error {
	zip := c.QueryParam("zipCode")
	if zip != "" && !zipPattern.MatchString(zip) {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "zipCode must be a 5-digit ZIP"))
	}

	res, err := h.svc.Leaderboard(c.Request().Context(), zip)
	if err != nil {
		c.Logger().Errorf("leaderboard: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to generate leaderboard"))
	}

	resp := LeaderboardResponse{
		Leaderboard: res.Entries,
		TotalZips:   len(res.Entries),
	}
	if res.UserRank != nil {
		payload := &userRankPayload{
			ZipCode:     res.UserRank.ZipCode,
			TotalPoints: res.UserRank.TotalPoints,
			UserCount:   res.UserRank.UserCount,
			AvgPoints:   res.UserRank.AvgPoints,
			TopScore:    res.UserRank.TopScore,
			Rank:        res.UserRank.Rank,
		}
		if !res.InTopSet {
			payload.Rank = OutsideTopSet
		}
		resp.UserRank = payload
	}
	return c.JSON(http.StatusOK, resp)
}

type MapDataResponse struct {
	Communities      interface{} `json:"communities"`
	TotalCommunities int         `json:"totalCommunities"`
}

func (h *LeaderboardHandler) MapData(c echo.Context) error {
	communities, err := h.svc.MapData(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("map data: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch map data"))
	}
	return c.JSON(http.StatusOK, MapDataResponse{
		Communities:      communities,
		TotalCommunities: len(communities),
	})
}
