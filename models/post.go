package models

import "time"

// Post is a top-level submission. UserID is nil for guest authors. Score is
// derived from the votes table and is the only field that changes after
// creation.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"size:4000;not null" json:"body"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
