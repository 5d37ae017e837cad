package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
)

func TestCompleteCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProgressCompleter(ctrl)

	summary := &models.CourseCompletion{
		CourseID:    5,
		CourseTitle: "Go Basics",
		Status:      models.ProgressCompleted,
		BadgeID:     3,
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			CompleteCourse(gomock.Any(), "john@example.com", int64(5)).
			Return(summary, nil)

		body, _ := json.Marshal(CompleteCourseRequest{CourseID: 5})

		req := asUser(httptest.NewRequest(http.MethodPost, "/progress/complete", bytes.NewReader(body)), "john@example.com")
		w := httptest.NewRecorder()

		NewCompleteCourseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.CourseCompletion
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, *summary, got)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		body, _ := json.Marshal(CompleteCourseRequest{CourseID: 5})

		req := httptest.NewRequest(http.MethodPost, "/progress/complete", bytes.NewReader(body))
		w := httptest.NewRecorder()

		NewCompleteCourseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("never started", func(t *testing.T) {
		mockSvc.EXPECT().
			CompleteCourse(gomock.Any(), "john@example.com", int64(42)).
			Return(nil, services.ErrProgressNotFound)

		body, _ := json.Marshal(CompleteCourseRequest{CourseID: 42})

		req := asUser(httptest.NewRequest(http.MethodPost, "/progress/complete", bytes.NewReader(body)), "john@example.com")
		w := httptest.NewRecorder()

		NewCompleteCourseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("already completed", func(t *testing.T) {
		mockSvc.EXPECT().
			CompleteCourse(gomock.Any(), "john@example.com", int64(5)).
			Return(nil, services.ErrCourseAlreadyCompleted)

		body, _ := json.Marshal(CompleteCourseRequest{CourseID: 5})

		req := asUser(httptest.NewRequest(http.MethodPost, "/progress/complete", bytes.NewReader(body)), "john@example.com")
		w := httptest.NewRecorder()

		NewCompleteCourseHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
