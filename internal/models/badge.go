package models

import (
	"time"
)

// BadgeDB represents a badge record in the database.
// A badge's code carries the id of the user it was awarded to.
type BadgeDB struct {
	BadgeID     int64     `json:"id" db:"badge_id"`
	Code        string    `json:"code" db:"code"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
