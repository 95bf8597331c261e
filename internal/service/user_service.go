package service

import (
	"context"
	"errors"

	"github.com/basquehq/basque-backend/internal/model"
	"github.com/basquehq/basque-backend/internal/repository"
	"github.com/basquehq/basque-backend/internal/score"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// ErrAlreadyCompleted mirrors the repository sentinel for handlers.
var ErrAlreadyCompleted = repository.ErrAlreadyCompleted

type QuizResult struct {
	UserID uint64
	Score  int
	Band   string
}

type UserService interface {
	SubmitQuiz(ctx context.Context, user *model.User) (*QuizResult, error)
	Get(ctx context.Context, id uint64) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// SubmitQuiz persists the answers as a fresh user with zero points and
// returns the id alongside the computed sustainability score.
func (s *userService) SubmitQuiz(ctx context.Context, user *model.User) (*QuizResult, error) {
	user.ID = 0
	user.Points = 0
	user.CompletedActions = nil
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	sc := score.Compute(user)
	return &QuizResult{
		UserID: user.ID,
		Score:  sc,
		Band:   score.Band(sc),
	}, nil
}

func (s *userService) Get(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
