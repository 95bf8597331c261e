package service

import (
	"context"
	"errors"

	"github.com/basquehq/basque-backend/internal/model"
	"github.com/basquehq/basque-backend/internal/rank"
	"github.com/basquehq/basque-backend/internal/repository"
	"gorm.io/gorm"
)

type TaskList struct {
	Tasks          []model.Action
	CompletedCount int
	TotalPoints    int
}

type CompletionResult struct {
	NewPoints      int
	CompletedCount int
	PointValue     int
	ActionTitle    string
}

type TaskService interface {
	ListTasks(ctx context.Context, userID uint64) (*TaskList, error)
	CompleteAction(ctx context.Context, userID, actionID uint64) (*CompletionResult, error)
}

type taskService struct {
	users   repository.UserRepository
	actions repository.ActionRepository
}

func NewTaskService(users repository.UserRepository, actions repository.ActionRepository) TaskService {
	return &taskService{users: users, actions: actions}
}

func (s *taskService) ListTasks(ctx context.Context, userID uint64) (*TaskList, error) {
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
	return &TaskList{
		Tasks:          rank.SelectEligibleActions(user, actions, rank.DefaultTaskCount),
		CompletedCount: len(user.CompletedActions),
		TotalPoints:    user.Points,
	}, nil
}

func (s *taskService) CompleteAction(ctx context.Context, userID, actionID uint64) (*CompletionResult, error) {
	action, err := s.actions.FindByID(ctx, actionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user, err := s.users.CompleteAction(ctx, userID, action)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &CompletionResult{
		NewPoints:      user.Points,
		CompletedCount: len(user.CompletedActions),
		PointValue:     action.PointValue,
		ActionTitle:    action.Title,
	}, nil
}
