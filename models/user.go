package models

import "time"

// User is an anonymous identity created at sign-in. Display names are not
// unique; the anon token is the durable identity and is never exposed in
// API payloads.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DisplayName string    `gorm:"size:30;not null" json:"display_name"`
	AnonID      string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
