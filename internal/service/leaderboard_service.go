package service

import (
	"context"

	"github.com/basquehq/basque-backend/internal/geo"
	"github.com/basquehq/basque-backend/internal/rank"
	"github.com/basquehq/basque-backend/internal/repository"
)

// LeaderboardResult is the top-N ranking plus, when a ZIP was asked
// about, that ZIP's true aggregate even if it fell past the cut.
type LeaderboardResult struct {
	Entries  []rank.ZipAggregate
	UserRank *rank.ZipAggregate
	InTopSet bool
}

// Community is one map marker: a ZIP aggregate with coordinates.
type Community struct {
	rank.ZipAggregate
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}

type LeaderboardService interface {
	Leaderboard(ctx context.Context, userZip string) (*LeaderboardResult, error)
	MapData(ctx context.Context) ([]Community, error)
}

type leaderboardService struct {
	users repository.UserRepository
}

func NewLeaderboardService(users repository.UserRepository) LeaderboardService {
	return &leaderboardService{users: users}
}

func (s *leaderboardService) Leaderboard(ctx context.Context, userZip string) (*LeaderboardResult, error) {
	users, err := s.users.ListWithZip(ctx)
	if err != nil {
		return nil, err
	}

	res := &LeaderboardResult{
		Entries: rank.ComputeLeaderboard(users, rank.DefaultLimit),
	}
	if userZip == "" {
		return res, nil
	}

	agg, ok := rank.FindZipRank(users, userZip)
	if !ok {
		return res, nil
	}
	res.UserRank = &agg
	res.InTopSet = agg.Rank <= len(res.Entries) && containsZip(res.Entries, userZip)
	return res, nil
}

func containsZip(entries []rank.ZipAggregate, zip string) bool {
	for _, e := range entries {
		if e.ZipCode == zip {
			return true
		}
	}
	return false
}

func (s *leaderboardService) MapData(ctx context.Context) ([]Community, error) {
	users, err := s.users.ListWithZip(ctx)
	if err != nil {
		return nil, err
	}

	entries := rank.ComputeLeaderboard(users, rank.DefaultLimit)
	communities := make([]Community, 0, len(entries))
	for _, e := range entries {
		c := geo.CoordsForZip(e.ZipCode)
		communities = append(communities, Community{
			ZipAggregate: e,
			Latitude:     c.Latitude,
			Longitude:    c.Longitude,
			City:         c.City,
			State:        c.State,
		})
	}
	return communities, nil
}
