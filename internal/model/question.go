package model

import (
	"time"
)

type Question struct {
	ID     uint  `gorm:"primarykey" json:"id"`
	QuizID uint  `json:"quiz_id" gorm:"not null;index"`
	Quiz   *Quiz `json:"-" gorm:"foreignKey:QuizID"`
	// Text is unique case-insensitively within its quiz; the guard is
	// the (quiz_id, LOWER(text)) index created in database.Migrate.
	Text      string    `json:"text" gorm:"type:text;not null"`
	Options   []Option  `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
