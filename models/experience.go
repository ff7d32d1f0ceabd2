package models

import (
	"time"

	"gorm.io/datatypes"
)

// ExperienceType discriminates the two timeline kinds.
type ExperienceType string

const (
	ExperienceWork      ExperienceType = "work"
	ExperienceEducation ExperienceType = "education"
)

// Experience is one entry in the work/education timeline.
type Experience struct {
	ID            ID                          `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Type          ExperienceType              `json:"type" db:"type" gorm:"type:text;not null"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	TitleEN       string                      `json:"title_en,omitempty" db:"title_en" gorm:"column:title_en;type:text"`
	Company       string                      `json:"company" db:"company" gorm:"type:text"`
	CompanyEN     string                      `json:"company_en,omitempty" db:"company_en" gorm:"column:company_en;type:text"`
	Period        string                      `json:"period" db:"period" gorm:"type:text"`
	PeriodEN      string                      `json:"period_en,omitempty" db:"period_en" gorm:"column:period_en;type:text"`
	Location      string                      `json:"location" db:"location" gorm:"type:text"`
	LocationEN    string                      `json:"location_en,omitempty" db:"location_en" gorm:"column:location_en;type:text"`
	Description   string                      `json:"description" db:"description" gorm:"type:text"`
	DescriptionEN string                      `json:"description_en,omitempty" db:"description_en" gorm:"column:description_en;type:text"`
	Technologies  datatypes.JSONSlice[string] `json:"technologies" db:"technologies"`
	ImageURL      string                      `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	OrderPosition int                         `json:"order_position" db:"order_position"`
	CreatedAt     time.Time                   `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at,omitempty" db:"updated_at"`
}

func (Experience) TableName() string { return "experiences" }
