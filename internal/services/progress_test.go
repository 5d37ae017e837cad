package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
	"github.com/stretchr/testify/assert"
)

type progressMocks struct {
	users       *services.MockUserReader
	courses     *services.MockCourseReader
	reader      *services.MockProgressReader
	writer      *services.MockProgressWriter
	badges      *services.MockBadgeReader
	badgeWriter *services.MockBadgeWriter
	kafkaWriter *services.MockKafkaWriter
}

func newProgressService(t *testing.T) (*services.ProgressService, progressMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := progressMocks{
		users:       services.NewMockUserReader(ctrl),
		courses:     services.NewMockCourseReader(ctrl),
		reader:      services.NewMockProgressReader(ctrl),
		writer:      services.NewMockProgressWriter(ctrl),
		badges:      services.NewMockBadgeReader(ctrl),
		badgeWriter: services.NewMockBadgeWriter(ctrl),
		kafkaWriter: services.NewMockKafkaWriter(ctrl),
	}

	svc := services.NewProgressService(m.users, m.courses, m.reader, m.writer, m.badges, m.badgeWriter, m.kafkaWriter)
	return svc, m
}

func TestProgressService_StartCourse(t *testing.T) {
	user := &models.UserDB{UserID: 7, Name: "Alice", Email: "alice@example.com"}
	course := &models.CourseDB{CourseID: 3, Title: "Go Basics"}

	t.Run("success", func(t *testing.T) {
		svc, m := newProgressService(t)

		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.courses.EXPECT().GetByID(gomock.Any(), int64(3)).Return(course, nil)
		m.reader.EXPECT().GetByUserAndCourse(gomock.Any(), int64(7), int64(3)).Return(nil, nil)

		want := &models.UserProgressDB{ProgressID: 1, UserID: 7, CourseID: 3, Status: models.ProgressStarted}
		m.writer.EXPECT().Save(gomock.Any(), int64(7), int64(3), models.ProgressStarted).Return(want, nil)

		progress, err := svc.StartCourse(context.Background(), "alice@example.com", 3)
		assert.NoError(t, err)
		assert.Equal(t, want, progress)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newProgressService(t)

		m.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		progress, err := svc.StartCourse(context.Background(), "ghost@example.com", 3)
		assert.Nil(t, progress)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Contains(t, err.Error(), "ghost@example.com")
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, m := newProgressService(t)

		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.courses.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		progress, err := svc.StartCourse(context.Background(), "alice@example.com", 99)
		assert.Nil(t, progress)
		assert.ErrorIs(t, err, services.ErrCourseNotFound)
	})

	t.Run("already started", func(t *testing.T) {
		svc, m := newProgressService(t)

		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.courses.EXPECT().GetByID(gomock.Any(), int64(3)).Return(course, nil)
		m.reader.EXPECT().GetByUserAndCourse(gomock.Any(), int64(7), int64(3)).
			Return(&models.UserProgressDB{ProgressID: 1, Status: models.ProgressStarted}, nil)

		progress, err := svc.StartCourse(context.Background(), "alice@example.com", 3)
		assert.Nil(t, progress)
		assert.ErrorIs(t, err, services.ErrCourseAlreadyStarted)
	})
}

func TestProgressService_CompleteCourse(t *testing.T) {
	user := &models.UserDB{UserID: 7, Name: "Alice", Email: "alice@example.com"}
	course := &models.CourseDB{CourseID: 3, Title: "Go Basics"}

	t.Run("success awards badge and publishes event", func(t *testing.T) {
		svc, m := newProgressService(t)

		started := &models.UserProgressDB{ProgressID: 1, UserID: 7, CourseID: 3, Status: models.ProgressStarted}
		now := time.Now()
		completed := &models.UserProgressDB{ProgressID: 1, UserID: 7, CourseID: 3, Status: models.ProgressCompleted, CompletedAt: &now}

		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.reader.EXPECT().GetByUserAndCourse(gomock.Any(), int64(7), int64(3)).Return(started, nil)
		m.courses.EXPECT().GetByID(gomock.Any(), int64(3)).Return(course, nil)
		m.writer.EXPECT().Complete(gomock.Any(), int64(1)).Return(completed, nil)
		m.badgeWriter.EXPECT().
			Save(gomock.Any(), "7", "Completed Go Basics", gomock.Any(), gomock.Any()).
			Return(&models.BadgeDB{BadgeID: 12, Code: "7"}, nil)
		m.kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := svc.CompleteCourse(context.Background(), "alice@example.com", 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), summary.CourseID)
		assert.Equal(t, "Go Basics", summary.CourseTitle)
		assert.Equal(t, models.ProgressCompleted, summary.Status)
		assert.Equal(t, int64(12), summary.BadgeID)
	})

	t.Run("never started", func(t *testing.T) {
		svc, m := newProgressService(t)

		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.reader.EXPECT().GetByUserAndCourse(gomock.Any(), int64(7), int64(3)).Return(nil, nil)

		summary, err := svc.CompleteCourse(context.Background(), "alice@example.com", 3)
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, services.ErrProgressNotFound)
	})

	t.Run("second completion is rejected", func(t *testing.T) {
		svc, m := newProgressService(t)

		now := time.Now()
		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.reader.EXPECT().GetByUserAndCourse(gomock.Any(), int64(7), int64(3)).
			Return(&models.UserProgressDB{ProgressID: 1, Status: models.ProgressCompleted, CompletedAt: &now}, nil)

		summary, err := svc.CompleteCourse(context.Background(), "alice@example.com", 3)
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, services.ErrCourseAlreadyCompleted)
	})
}

func TestProgressService_Listings(t *testing.T) {
	svc, m := newProgressService(t)

	entries := []models.ProgressEntry{{UserName: "Alice", CourseID: 3, CourseTitle: "Go Basics", Status: models.ProgressStarted}}
	m.reader.EXPECT().ListByUserEmail(gomock.Any(), "alice@example.com").Return(entries, nil)

	got, err := svc.GetProgressByUserEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, entries, got)

	badges := []models.BadgeDB{{BadgeID: 12, Code: "7", Title: "Completed Go Basics"}}
	m.badges.EXPECT().ListByUserEmail(gomock.Any(), "alice@example.com").Return(badges, nil)

	gotBadges, err := svc.GetBadgesByUserEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, badges, gotBadges)
}
