package repository

import (
	"context"

	"github.com/basquehq/basque-backend/internal/model"
	"gorm.io/gorm"
)

type ActionRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.Action, error)
	List(ctx context.Context) ([]model.Action, error)
	CreateInBatch(ctx context.Context, actions []model.Action) error
	SetDB(db *gorm.DB)
}

type actionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) FindByID(ctx context.Context, id uint64) (*model.Action, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var action model.Action
	if err := r.db.WithContext(ctx).First(&action, id).Error; err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *actionRepository) List(ctx context.Context) ([]model.Action, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var actions []model.Action
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

func (r *actionRepository) CreateInBatch(ctx context.Context, actions []model.Action) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).CreateInBatches(actions, 50).Error
}

func (r *actionRepository) SetDB(db *gorm.DB) {
	r.db = db
}
