package models

import "time"

// HeroProfile is the singleton landing-section record: greeting, name,
// headline, and social links. Bilingual fields carry an optional English
// variant resolved through Localized.
type HeroProfile struct {
	ID              ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Greeting        string    `json:"greeting" db:"greeting" gorm:"type:text;not null"`
	GreetingEN      string    `json:"greeting_en,omitempty" db:"greeting_en" gorm:"column:greeting_en;type:text"`
	FirstName       string    `json:"first_name" db:"first_name" gorm:"type:text;not null"`
	LastName        string    `json:"last_name" db:"last_name" gorm:"type:text;not null"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null"`
	TitleEN         string    `json:"title_en,omitempty" db:"title_en" gorm:"column:title_en;type:text"`
	Description     string    `json:"description" db:"description" gorm:"type:text"`
	DescriptionEN   string    `json:"description_en,omitempty" db:"description_en" gorm:"column:description_en;type:text"`
	ProfileImageURL string    `json:"profile_image_url,omitempty" db:"profile_image_url" gorm:"type:text"`
	GithubURL       string    `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	LinkedinURL     string    `json:"linkedin_url,omitempty" db:"linkedin_url" gorm:"type:text"`
	Email           string    `json:"email,omitempty" db:"email" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (HeroProfile) TableName() string { return "hero_data" }
