package repository

import (
	"context"
	"errors"

	"github.com/basquehq/basque-backend/internal/model"
	"gorm.io/gorm"
)

var (
	ErrDBNotReady = errors.New("database not initialized")
	// ErrAlreadyCompleted means the user already finished this action.
	ErrAlreadyCompleted = errors.New("action already completed")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	ListWithZip(ctx context.Context) ([]model.User, error)
	ListByZip(ctx context.Context, zip string) ([]model.User, error)
	CompleteAction(ctx context.Context, userID uint64, action *model.Action) (*model.User, error)
	SetDB(db *gorm.DB)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("CompletedActions", func(db *gorm.DB) *gorm.DB {
			return db.Order("completed_actions.id ASC")
		}).
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListWithZip(ctx context.Context) ([]model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("zip_code <> ''").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListByZip(ctx context.Context, zip string) ([]model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var users []model.User
	if err := r.db.WithContext(ctx).
		Preload("CompletedActions").
		Where("zip_code = ?", zip).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CompleteAction applies the point increment and the completion row in
// one transaction; both land or neither does. A repeat completion is
// rejected here, under the same lock that inserts the row.
func (r *userRepository) CompleteAction(ctx context.Context, userID uint64, action *model.Action) (*model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.CompletedAction{}).
			Where("user_id = ? AND action_id = ?", userID, action.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyCompleted
		}
		if err := tx.Create(&model.CompletedAction{UserID: userID, ActionID: action.ID}).Error; err != nil {
			return err
		}
		return tx.Model(&user).
			Update("points", gorm.Expr("points + ?", action.PointValue)).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID)
}

func (r *userRepository) SetDB(db *gorm.DB) {
	r.db = db
}
