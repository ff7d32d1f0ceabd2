package models

import "time"

// LiveViewsIcon marks the stat whose value is the live view counter. That
// stat is auto-populated and never edited by hand.
const LiveViewsIcon = "Eye"

// Stat is one headline figure (years of experience, projects shipped, ...).
type Stat struct {
	ID            ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Label         string    `json:"label" db:"label" gorm:"type:text;not null"`
	LabelEN       string    `json:"label_en,omitempty" db:"label_en" gorm:"column:label_en;type:text"`
	Value         string    `json:"value" db:"value" gorm:"type:text;not null"`
	ValueEN       string    `json:"value_en,omitempty" db:"value_en" gorm:"column:value_en;type:text"`
	Icon          string    `json:"icon" db:"icon" gorm:"type:text"`
	OrderPosition int       `json:"order_position" db:"order_position"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (Stat) TableName() string { return "stats" }
