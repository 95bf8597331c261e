package service

import (
	"context"
	"errors"
	"time"

	"github.com/basquehq/basque-backend/internal/model"
	"github.com/basquehq/basque-backend/internal/rank"
	"github.com/basquehq/basque-backend/internal/repository"
	"gorm.io/gorm"
)

// HistoryEntry is one completed action resolved against the catalog.
type HistoryEntry struct {
	ActionID     uint64    `json:"actionId"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	PointValue   int       `json:"pointValue"`
	ImpactMetric string    `json:"impactMetric"`
	CompletedAt  time.Time `json:"completedAt"`
}

type UserStats struct {
	TotalPoints     int
	TotalActions    int
	MemberSince     time.Time
	ZipCode         string
	ActionHistory   []HistoryEntry
	StatsByCategory []rank.CategoryStat
	Community       rank.Comparison
}

type StatsService interface {
	UserStats(ctx context.Context, userID uint64) (*UserStats, error)
}

type statsService struct {
	users   repository.UserRepository
	actions repository.ActionRepository
}

func NewStatsService(users repository.UserRepository, actions repository.ActionRepository) StatsService {
	return &statsService{users: users, actions: actions}
}

func (s *statsService) UserStats(ctx context.Context, userID uint64) (*UserStats, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	actions, err := s.actions.List(ctx)
	if err != nil {
		return nil, err
	}
	neighbors, err := s.users.ListByZip(ctx, user.ZipCode)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalPoints:     user.Points,
		TotalActions:    len(user.CompletedActions),
		MemberSince:     user.CreatedAt,
		ZipCode:         user.ZipCode,
		ActionHistory:   buildHistory(user, actions),
		StatsByCategory: rank.CategoryBreakdown(user, actions),
		Community:       rank.CommunityComparison(neighbors, user.ZipCode),
	}, nil
}

// buildHistory resolves completions in order; dangling ids are skipped,
// matching the breakdown's behavior for deleted actions.
func buildHistory(user *model.User, actions []model.Action) []HistoryEntry {
	byID := make(map[uint64]*model.Action, len(actions))
	for i := range actions {
		byID[actions[i].ID] = &actions[i]
	}
	history := make([]HistoryEntry, 0, len(user.CompletedActions))
	for _, ca := range user.CompletedActions {
		a, ok := byID[ca.ActionID]
		if !ok {
			continue
		}
		history = append(history, HistoryEntry{
			ActionID:     a.ID,
			Title:        a.Title,
			Category:     a.Category,
			PointValue:   a.PointValue,
			ImpactMetric: a.ImpactMetric,
			CompletedAt:  ca.CreatedAt,
		})
	}
	return history
}
