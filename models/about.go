package models

import "time"

// AboutProfile is the singleton biography record.
type AboutProfile struct {
	ID            ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Description   string    `json:"description" db:"description" gorm:"type:text;not null"`
	DescriptionEN string    `json:"description_en,omitempty" db:"description_en" gorm:"column:description_en;type:text"`
	ImageURL      string    `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (AboutProfile) TableName() string { return "about_data" }
