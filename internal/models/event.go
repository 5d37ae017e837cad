package models

// Catalog event types published to Kafka.
const (
	EventCourseCreated   = "course.created"
	EventCourseUpdated   = "course.updated"
	EventCourseDeleted   = "course.deleted"
	EventCourseCompleted = "course.completed"
)

// CatalogEvent is the message published for catalog and progress changes.
type CatalogEvent struct {
	EventID   string `json:"event_id"`          // Unique event identifier
	Type      string `json:"type"`              // One of the Event* constants
	CourseID  int64  `json:"course_id"`         // Affected course
	UserID    int64  `json:"user_id,omitempty"` // Acting user, for progress events
	Timestamp int64  `json:"timestamp"`         // Unix seconds
}
