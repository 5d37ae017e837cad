package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/manudev/course-catalog-api/internal/logger"
	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrProgressNotFound       = errors.New("progress not found")
	ErrCourseAlreadyCompleted = errors.New("course already completed")
	ErrCourseAlreadyStarted   = errors.New("course already started")
)

// completionBadgeImage is the default image attached to completion badges.
const completionBadgeImage = "https://cdn-icons-png.flaticon.com/512/1534/1534225.png"

// ProgressReader defines read operations on progress records.
type ProgressReader interface {
	GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.UserProgressDB, error)
	ListByUserEmail(ctx context.Context, email string) ([]models.ProgressEntry, error)
}

// ProgressWriter defines write operations on progress records.
type ProgressWriter interface {
	Save(ctx context.Context, userID, courseID int64, status string) (*models.UserProgressDB, error)
	Complete(ctx context.Context, progressID int64) (*models.UserProgressDB, error)
}

// BadgeReader lists awarded badges.
type BadgeReader interface {
	ListByUserEmail(ctx context.Context, email string) ([]models.BadgeDB, error)
}

// BadgeWriter persists awarded badges.
type BadgeWriter interface {
	Save(ctx context.Context, code, title, description, imageURL string) (*models.BadgeDB, error)
}

// ProgressService tracks per-user course progress and awards completion badges.
type ProgressService struct {
	users       UserReader
	courses     CourseReader
	reader      ProgressReader
	writer      ProgressWriter
	badges      BadgeReader
	badgeWriter BadgeWriter
	kafkaWriter KafkaWriter
}

// NewProgressService creates a new ProgressService.
func NewProgressService(
	users UserReader,
	courses CourseReader,
	reader ProgressReader,
	writer ProgressWriter,
	badges BadgeReader,
	badgeWriter BadgeWriter,
	kafkaWriter KafkaWriter,
) *ProgressService {
	return &ProgressService{
		users:       users,
		courses:     courses,
		reader:      reader,
		writer:      writer,
		badges:      badges,
		badgeWriter: badgeWriter,
		kafkaWriter: kafkaWriter,
	}
}

// StartCourse records that a user started a course.
func (s *ProgressService) StartCourse(ctx context.Context, userEmail string, courseID int64) (*models.UserProgressDB, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", userEmail, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w with email %s", ErrUserNotFound, userEmail)
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "err", err)
		return nil, err
	}
	if course == nil {
		return nil, fmt.Errorf("%w with id %d", ErrCourseNotFound, courseID)
	}

	existing, err := s.reader.GetByUserAndCourse(ctx, user.UserID, courseID)
	if err != nil {
		logger.Log.Errorw("failed to check progress", "user_id", user.UserID, "course_id", courseID, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: course %d", ErrCourseAlreadyStarted, courseID)
	}

	progress, err := s.writer.Save(ctx, user.UserID, courseID, models.ProgressStarted)
	if err != nil {
		logger.Log.Errorw("failed to save progress", "user_id", user.UserID, "course_id", courseID, "err", err)
		return nil, err
	}

	return progress, nil
}

// GetProgressByUserEmail lists a user's progress across all started courses.
func (s *ProgressService) GetProgressByUserEmail(ctx context.Context, userEmail string) ([]models.ProgressEntry, error) {
	entries, err := s.reader.ListByUserEmail(ctx, userEmail)
	if err != nil {
		logger.Log.Errorw("failed to list progress", "email", userEmail, "err", err)
		return nil, err
	}
	return entries, nil
}

// CompleteCourse marks a started course completed, awards a completion
// badge, and publishes a completion event.
func (s *ProgressService) CompleteCourse(ctx context.Context, userEmail string, courseID int64) (*models.CourseCompletion, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", userEmail, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w with email %s", ErrUserNotFound, userEmail)
	}

	progress, err := s.reader.GetByUserAndCourse(ctx, user.UserID, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get progress", "user_id", user.UserID, "course_id", courseID, "err", err)
		return nil, err
	}
	if progress == nil {
		return nil, fmt.Errorf("%w for course %d", ErrProgressNotFound, courseID)
	}
	if progress.Status == models.ProgressCompleted {
		return nil, ErrCourseAlreadyCompleted
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "err", err)
		return nil, err
	}
	if course == nil {
		return nil, fmt.Errorf("%w with id %d", ErrCourseNotFound, courseID)
	}

	completed, err := s.writer.Complete(ctx, progress.ProgressID)
	if err != nil {
		logger.Log.Errorw("failed to complete progress", "progress_id", progress.ProgressID, "err", err)
		return nil, err
	}

	badge, err := s.badgeWriter.Save(ctx,
		fmt.Sprintf("%d", user.UserID),
		fmt.Sprintf("Completed %s", course.Title),
		fmt.Sprintf("user %s has completed the course", user.Name),
		completionBadgeImage,
	)
	if err != nil {
		logger.Log.Errorw("failed to save completion badge", "user_id", user.UserID, "err", err)
		return nil, err
	}

	s.publishCompletion(ctx, course.CourseID, user.UserID)

	return &models.CourseCompletion{
		CourseID:    course.CourseID,
		CourseTitle: course.Title,
		Status:      completed.Status,
		BadgeID:     badge.BadgeID,
	}, nil
}

// GetBadgesByUserEmail lists the badges a user has earned.
func (s *ProgressService) GetBadgesByUserEmail(ctx context.Context, userEmail string) ([]models.BadgeDB, error) {
	badges, err := s.badges.ListByUserEmail(ctx, userEmail)
	if err != nil {
		logger.Log.Errorw("failed to list badges", "email", userEmail, "err", err)
		return nil, err
	}
	return badges, nil
}

// publishCompletion publishes a course completion event to Kafka, best effort.
func (s *ProgressService) publishCompletion(ctx context.Context, courseID, userID int64) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "course_id", courseID)
		return
	}

	event := models.CatalogEvent{
		EventID:   uuid.NewString(),
		Type:      models.EventCourseCompleted,
		CourseID:  courseID,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal completion event", "event_id", event.EventID, "error", err)
		return
	}

	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{Key: []byte(event.EventID), Value: data}); err != nil {
		logger.Log.Errorw("failed to publish completion event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("completion event published", "event_id", event.EventID, "course_id", courseID, "user_id", userID)
	}
}
