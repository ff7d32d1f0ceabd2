package models

import "time"

// WorkPhilosophy is one card in the "how I work" section.
type WorkPhilosophy struct {
	ID            ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Title         string    `json:"title" db:"title" gorm:"type:text;not null"`
	TitleEN       string    `json:"title_en,omitempty" db:"title_en" gorm:"column:title_en;type:text"`
	Description   string    `json:"description" db:"description" gorm:"type:text"`
	DescriptionEN string    `json:"description_en,omitempty" db:"description_en" gorm:"column:description_en;type:text"`
	Icon          string    `json:"icon" db:"icon" gorm:"type:text"`
	OrderPosition int       `json:"order_position" db:"order_position"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (WorkPhilosophy) TableName() string { return "work_philosophy" }
