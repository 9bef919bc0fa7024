package model

import (
	"time"
)

// AuthToken is an opaque bearer token. One live token per user; logout
// deletes the row, which revokes it immediately.
type AuthToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `json:"key" gorm:"size:40;not null;uniqueIndex"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
}
