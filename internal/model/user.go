package model

import "time"

// User is created once per quiz submission. Points only increase, via
// completed actions; the quiz answer fields are immutable after creation.
type User struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	ZipCode        string `gorm:"size:5;index"`
	Transportation string `gorm:"size:64"`
	Diet           string `gorm:"size:64"`
	HomeEnergy     string `gorm:"size:64"`
	Thermostat     string `gorm:"size:64"`
	Recycling      string `gorm:"size:64"`
	WaterUsage     string `gorm:"size:64"`
	FlightsPerYear string `gorm:"size:16"`
	HomeSize       string `gorm:"size:32"`
	WFHDays        string `gorm:"column:wfh_days;size:16"`

	Points           int               `gorm:"not null;default:0"`
	CompletedActions []CompletedAction `gorm:"foreignKey:UserID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// Profile exposes the answer fields that eligibility conditions can
// reference, keyed by the condition field names used in the catalog.
func (u *User) Profile() map[string]string {
	return map[string]string{
		"transportation": u.Transportation,
		"diet":           u.Diet,
		"homeEnergy":     u.HomeEnergy,
		"thermostat":     u.Thermostat,
		"recycling":      u.Recycling,
		"waterUsage":     u.WaterUsage,
		"flightsPerYear": u.FlightsPerYear,
		"homeSize":       u.HomeSize,
		"wfhDays":        u.WFHDays,
	}
}

// CompletedActionIDs returns completion ids in insertion order.
func (u *User) CompletedActionIDs() []uint64 {
	ids := make([]uint64, 0, len(u.CompletedActions))
	for _, ca := range u.CompletedActions {
		ids = append(ids, ca.ActionID)
	}
	return ids
}

func (u *User) HasCompleted(actionID uint64) bool {
	for _, ca := range u.CompletedActions {
		if ca.ActionID == actionID {
			return true
		}
	}
	return false
}
