package models

import "time"

// SkillCategory groups skills under a named heading. Snapshots carry the
// category with its skills nested, mirroring the admin UI's shape.
type SkillCategory struct {
	ID            ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Name          string    `json:"name" db:"name" gorm:"type:text;not null"`
	OrderPosition int       `json:"order_position" db:"order_position"`
	Skills        []Skill   `json:"skills" gorm:"foreignKey:CategoryID;references:ID"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (SkillCategory) TableName() string { return "skill_categories" }

// Skill is one named proficiency. CategoryID must reference an existing
// SkillCategory within the same snapshot; Level runs 0-100.
type Skill struct {
	ID            ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	CategoryID    ID        `json:"category_id" db:"category_id" gorm:"column:category_id;type:text;not null"`
	Name          string    `json:"name" db:"name" gorm:"type:text;not null"`
	Level         int       `json:"level" db:"level"`
	OrderPosition int       `json:"order_position" db:"order_position"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
