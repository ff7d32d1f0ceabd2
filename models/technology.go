package models

import "time"

// Technology is one logo in the technology banner.
type Technology struct {
	ID            ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Name          string    `json:"name" db:"name" gorm:"type:text;not null"`
	LogoURL       string    `json:"logo_url,omitempty" db:"logo_url" gorm:"type:text"`
	OrderPosition int       `json:"order_position" db:"order_position"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (Technology) TableName() string { return "technologies" }
