package model

import "time"

// CompletedAction records one user finishing one catalog action. The
// unique index backs the repository's duplicate-completion guard.
type CompletedAction struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_action"`
	ActionID  uint64    `gorm:"not null;uniqueIndex:idx_user_action"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CompletedAction) TableName() string {
	return "completed_actions"
}
