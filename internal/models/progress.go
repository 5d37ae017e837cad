package models

import (
	"time"
)

// Progress statuses
const (
	ProgressStarted   = "started"
	ProgressCompleted = "completed"
)

// UserProgressDB represents a user's progress on a course in the database.
type UserProgressDB struct {
	ProgressID  int64      `json:"id" db:"progress_id"`                 // Primary key
	UserID      int64      `json:"userId" db:"user_id"`                 // Owning user
	CourseID    int64      `json:"courseId" db:"course_id"`             // Tracked course
	Status      string     `json:"status" db:"status"`                  // started or completed
	StartedAt   time.Time  `json:"startedAt" db:"started_at"`           // When the course was started
	CompletedAt *time.Time `json:"completedAt,omitempty" db:"completed_at"` // Set once completed
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`           // Last status change
}

// ProgressEntry is a progress row joined with user and course data,
// as returned by the per-user progress listing.
type ProgressEntry struct {
	UserName    string     `json:"userName" db:"user_name"`
	CourseID    int64      `json:"courseId" db:"course_id"`
	CourseTitle string     `json:"courseTitle" db:"course_title"`
	Status      string     `json:"status" db:"status"`
	StartedAt   time.Time  `json:"startedAt" db:"started_at"`
	CompletedAt *time.Time `json:"completedAt,omitempty" db:"completed_at"`
}

// CourseCompletion summarizes a successful course completion.
// swagger:model CourseCompletion
type CourseCompletion struct {
	// Completed course id
	CourseID int64 `json:"courseId"`

	// Completed course title
	CourseTitle string `json:"courseTitle"`

	// Resulting progress status
	Status string `json:"status"`

	// Id of the badge awarded for the completion
	BadgeID int64 `json:"badgeId"`
}
