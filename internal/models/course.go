package models

import (
	"time"
)

// DefaultPageSize is used when the caller omits the page size or sends a non-positive one.
const DefaultPageSize = 20

// CourseDB represents a course record in the database.
type CourseDB struct {
	CourseID      int64     `json:"id" db:"course_id"`               // Primary key
	Title         string    `json:"title" db:"title"`                // Course title, immutable after creation
	Description   string    `json:"description" db:"description"`    // Free-form description
	Module        string    `json:"module" db:"module"`              // Category tag
	DurationHours string    `json:"durationHours" db:"duration_hours"` // Duration, stored as text
	BadgeImage    string    `json:"badgeImage" db:"badge_image"`     // Badge image URL
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`       // Creation timestamp
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`       // Last update timestamp, always >= CreatedAt
}

// CoursePatch carries the optional fields of a partial course update.
// A nil field leaves the stored value untouched.
type CoursePatch struct {
	Description   *string `json:"description"`
	Module        *string `json:"module"`
	DurationHours *string `json:"durationHours"`
	BadgeImage    *string `json:"badgeImage"`
}

// CoursePage is one page of a paginated course listing.
// swagger:model CoursePage
type CoursePage struct {
	// Courses on this page
	Content []CourseDB `json:"content"`

	// Zero-based page number
	Page int `json:"page"`

	// Page size
	Size int `json:"size"`

	// Total number of matching courses
	TotalElements int64 `json:"totalElements"`

	// Total number of pages
	TotalPages int `json:"totalPages"`
}
