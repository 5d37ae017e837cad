package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/manudev/course-catalog-api/internal/models"
)

func TestListCoursesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCourseLister(ctrl)

	page := &models.CoursePage{
		Content: []models.CourseDB{
			{CourseID: 1, Title: "Go Basics", Module: "Backend"},
		},
		Page:          0,
		Size:          20,
		TotalElements: 1,
		TotalPages:    1,
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "no query parameters",
			target: "/courses",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListCourses(gomock.Any(), "", -1, 0).
					Return(page, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "module filter with paging",
			target: "/courses?module=backend&page=2&size=10",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListCourses(gomock.Any(), "backend", 2, 10).
					Return(page, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "malformed paging falls back to defaults",
			target: "/courses?page=abc&size=xyz",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListCourses(gomock.Any(), "", -1, 0).
					Return(page, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "internal error",
			target: "/courses",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListCourses(gomock.Any(), "", -1, 0).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler := NewListCoursesHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var got models.CoursePage
				err := json.Unmarshal(w.Body.Bytes(), &got)
				assert.NoError(t, err)
				assert.Equal(t, *page, got)
			}
		})
	}
}

func TestGetModulesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockModulesProvider(ctrl)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			GetAvailableModules(gomock.Any()).
			Return([]string{"Backend", "Frontend"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/courses/modules", nil)
		w := httptest.NewRecorder()

		NewGetModulesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []string
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Backend", "Frontend"}, got)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			GetAvailableModules(gomock.Any()).
			Return(nil, errors.New("cache error"))

		req := httptest.NewRequest(http.MethodGet, "/courses/modules", nil)
		w := httptest.NewRecorder()

		NewGetModulesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
