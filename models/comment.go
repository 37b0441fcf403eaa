package models

import "time"

// Comment is a reply to a post, immutable after creation. UserID is nil for
// guest authors.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	Post      *Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Body      string    `gorm:"size:1000;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
