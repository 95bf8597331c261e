package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Eligibility maps a profile field name to the answer values that make an
// action worth showing. An empty map means the action is universal.
// Matching is ANY_MATCH: one satisfied condition is enough.
type Eligibility map[string][]string

func (e Eligibility) Matches(profile map[string]string) bool {
	if len(e) == 0 {
		return true
	}
	for field, allowed := range e {
		got, ok := profile[field]
		if !ok || got == "" {
			continue
		}
		for _, v := range allowed {
			if v == got {
				return true
			}
		}
	}
	return false
}

func (e Eligibility) Value() (driver.Value, error) {
	if e == nil {
		e = Eligibility{}
	}
	return json.Marshal(e)
}

func (e *Eligibility) Scan(value interface{}) error {
	if value == nil {
		*e = Eligibility{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("eligibility: unsupported column type")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, e)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("string list: unsupported column type")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// Action is a catalog-defined sustainability task with a fixed point reward.
type Action struct {
	ID           uint64      `gorm:"primaryKey;autoIncrement"`
	Title        string      `gorm:"size:160;not null"`
	Description  string      `gorm:"type:text;not null"`
	Category     string      `gorm:"size:32;not null;index"`
	PointValue   int         `gorm:"not null"`
	ImpactMetric string      `gorm:"size:120"`
	Difficulty   string      `gorm:"size:16"`
	Tags         StringList  `gorm:"type:json"`
	ShowIf       Eligibility `gorm:"type:json"`
	CreatedAt    time.Time   `gorm:"autoCreateTime"`
}

func (Action) TableName() string {
	return "actions"
}
