package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manudev/course-catalog-api/internal/logger"
	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrCourseNotFound is wrapped with the offending id at each call site.
	ErrCourseNotFound = errors.New("course not found")
)

// CourseReader defines read operations on course records.
type CourseReader interface {
	List(ctx context.Context, module *string, limit, offset int) ([]models.CourseDB, int64, error)
	DistinctModules(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*models.CourseDB, error)
}

// CourseWriter defines write operations on course records.
type CourseWriter interface {
	Create(ctx context.Context, title, description, module, durationHours, badgeImage string) (*models.CourseDB, error)
	Update(ctx context.Context, course models.CourseDB) (*models.CourseDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ModuleCache caches the distinct module listing.
type ModuleCache interface {
	Get(ctx context.Context) ([]string, error)
	Set(ctx context.Context, modules []string) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CatalogService implements CRUD and paginated search over the course catalog.
type CatalogService struct {
	reader      CourseReader
	writer      CourseWriter
	cache       ModuleCache
	kafkaWriter KafkaWriter
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(reader CourseReader, writer CourseWriter, cache ModuleCache, kafkaWriter KafkaWriter) *CatalogService {
	return &CatalogService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a catalog event to Kafka, best effort.
func (s *CatalogService) publishEvent(ctx context.Context, eventType string, courseID int64) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "course_id", courseID)
		return
	}

	event := models.CatalogEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		CourseID:  courseID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal catalog event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish catalog event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("catalog event published", "event_id", event.EventID, "type", eventType, "course_id", courseID)
	}
}

// invalidateModules drops the cached module listing, best effort.
func (s *CatalogService) invalidateModules(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate module cache", "error", err)
	}
}

// ListCourses returns a page of courses. A negative page clamps to 0 and a
// non-positive size clamps to the default of 20. A blank filter (after
// trimming) lists every course; otherwise the filter matches module names
// case-insensitively anywhere in the value.
func (s *CatalogService) ListCourses(ctx context.Context, module string, page, size int) (*models.CoursePage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = models.DefaultPageSize
	}

	var filter *string
	if trimmed := strings.TrimSpace(module); trimmed != "" {
		filter = &trimmed
	}

	courses, total, err := s.reader.List(ctx, filter, size, page*size)
	if err != nil {
		logger.Log.Errorw("failed to list courses", "module", module, "page", page, "size", size, "error", err)
		return nil, err
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return &models.CoursePage{
		Content:       courses,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// GetAvailableModules returns the distinct module names, lexicographically
// sorted, never nil. The listing is served from cache when possible.
func (s *CatalogService) GetAvailableModules(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if modules, err := s.cache.Get(ctx); err == nil {
			return modules, nil
		}
	}

	modules, err := s.reader.DistinctModules(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch distinct modules", "error", err)
		return nil, err
	}
	if modules == nil {
		modules = []string{}
	}
	sort.Strings(modules)

	if s.cache != nil {
		if err := s.cache.Set(ctx, modules); err != nil {
			logger.Log.Warnw("failed to cache module listing", "error", err)
		}
	}

	return modules, nil
}

// GetCourseByID returns the course with the given id.
func (s *CatalogService) GetCourseByID(ctx context.Context, id int64) (*models.CourseDB, error) {
	course, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", id, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, fmt.Errorf("%w with id %d", ErrCourseNotFound, id)
	}
	return course, nil
}

// CreateCourse persists a new course; the store assigns id and timestamps.
func (s *CatalogService) CreateCourse(ctx context.Context, title, description, module, durationHours, badgeImage string) (*models.CourseDB, error) {
	course, err := s.writer.Create(ctx, title, description, module, durationHours, badgeImage)
	if err != nil {
		logger.Log.Errorw("failed to create course", "title", title, "error", err)
		return nil, err
	}

	s.invalidateModules(ctx)
	s.publishEvent(ctx, models.EventCourseCreated, course.CourseID)

	return course, nil
}

// mergeCourse applies a partial update to an existing course: each non-nil
// patch field overwrites the stored value, nil fields are left untouched.
func mergeCourse(existing models.CourseDB, patch models.CoursePatch) models.CourseDB {
	merged := existing
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Module != nil {
		merged.Module = *patch.Module
	}
	if patch.DurationHours != nil {
		merged.DurationHours = *patch.DurationHours
	}
	if patch.BadgeImage != nil {
		merged.BadgeImage = *patch.BadgeImage
	}
	return merged
}

// UpdateCourseByID applies a merge-patch to a course. updated_at is
// refreshed even when every patch field is nil. The title is immutable.
func (s *CatalogService) UpdateCourseByID(ctx context.Context, id int64, patch models.CoursePatch) (*models.CourseDB, error) {
	existing, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get course for update", "course_id", id, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w with id %d", ErrCourseNotFound, id)
	}

	updated, err := s.writer.Update(ctx, mergeCourse(*existing, patch))
	if err != nil {
		logger.Log.Errorw("failed to update course", "course_id", id, "error", err)
		return nil, err
	}

	s.invalidateModules(ctx)
	s.publishEvent(ctx, models.EventCourseUpdated, id)

	return updated, nil
}

// DeleteCourseByID removes a course. A missing id is a normal outcome,
// reported as false rather than an error.
func (s *CatalogService) DeleteCourseByID(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete course", "course_id", id, "error", err)
		return false, err
	}

	if deleted {
		s.invalidateModules(ctx)
		s.publishEvent(ctx, models.EventCourseDeleted, id)
	}

	return deleted, nil
}
