package service

import (
	"context"

	"github.com/basquehq/basque-backend/internal/model"
	"github.com/basquehq/basque-backend/internal/repository"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint64]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = uint64(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ListWithZip(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.ZipCode != "" {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListByZip(_ context.Context, zip string) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.ZipCode == zip {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CompleteAction(_ context.Context, userID uint64, action *model.Action) (*model.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if u.HasCompleted(action.ID) {
		return nil, repository.ErrAlreadyCompleted
	}
	u.Points += action.PointValue
	u.CompletedActions = append(u.CompletedActions, model.CompletedAction{UserID: userID, ActionID: action.ID})
	return u, nil
}

func (r *fakeUserRepo) SetDB(*gorm.DB) {}

type fakeActionRepo struct {
	actions []model.Action
}

func (r *fakeActionRepo) FindByID(_ context.Context, id uint64) (*model.Action, error) {
	for i := range r.actions {
		if r.actions[i].ID == id {
			return &r.actions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeActionRepo) List(_ context.Context) ([]model.Action, error) {
	return r.actions, nil
}

func (r *fakeActionRepo) CreateInBatch(_ context.Context, actions []model.Action) error {
	r.actions = append(r.actions, actions...)
	return nil
}

func (r *fakeActionRepo) SetDB(*gorm.DB) {}
