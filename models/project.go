package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project is one portfolio project card.
type Project struct {
	ID            ID                          `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	TitleEN       string                      `json:"title_en,omitempty" db:"title_en" gorm:"column:title_en;type:text"`
	Description   string                      `json:"description" db:"description" gorm:"type:text"`
	DescriptionEN string                      `json:"description_en,omitempty" db:"description_en" gorm:"column:description_en;type:text"`
	ImageURL      string                      `json:"image_url" db:"image_url" gorm:"type:text"`
	DemoURL       string                      `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	DemoVideoURL  string                      `json:"demo_video_url,omitempty" db:"demo_video_url" gorm:"type:text"`
	GithubURL     string                      `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	Stack         datatypes.JSONSlice[string] `json:"stack" db:"stack"`
	OrderPosition int                         `json:"order_position" db:"order_position"`
	IsFeatured    bool                        `json:"is_featured,omitempty" db:"is_featured"`
	ProjectDate   string                      `json:"project_date,omitempty" db:"project_date" gorm:"type:text"`
	CreatedAt     time.Time                   `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at,omitempty" db:"updated_at"`
}

func (Project) TableName() string { return "projects" }
