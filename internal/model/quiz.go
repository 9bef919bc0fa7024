package model

import (
	"time"
)

type Quiz struct {
	ID uint `gorm:"primarykey" json:"id"`
	// Title is unique case-insensitively; the guard is the LOWER(title)
	// index created in database.Migrate, not a gorm tag.
	Title     string     `json:"title" gorm:"not null"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
