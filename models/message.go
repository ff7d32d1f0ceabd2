package models

import "time"

// ContactMessage is a visitor-submitted contact form entry. IsRead is the
// only mutable field once the message exists.
type ContactMessage struct {
	ID        ID        `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_submissions" }
