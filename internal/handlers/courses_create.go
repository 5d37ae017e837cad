package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/manudev/course-catalog-api/internal/models"
)

// CourseCreator defines the interface for course creation.
type CourseCreator interface {
	CreateCourse(ctx context.Context, title, description, module, durationHours, badgeImage string) (*models.CourseDB, error)
}

// CreateCourseRequest represents the JSON body for course creation
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	// Course title
	// required: true
	// default: Go Basics
	Title string `json:"title"`

	// Description
	// default: An introduction to Go
	Description string `json:"description"`

	// Module (category tag)
	// default: Backend
	Module string `json:"module"`

	// Duration in hours
	// default: 8
	DurationHours string `json:"durationHours"`

	// Badge image URL
	// default: https://example.com/badge.png
	BadgeImage string `json:"badgeImage"`
}

// NewCreateCourseHandler returns an HTTP handler for course creation.
// @Summary Create a course
// @Description Persists a new course; id and timestamps are assigned by the store
// @Tags courses
// @Accept json
// @Produce json
// @Param createCourseRequest body handlers.CreateCourseRequest true "Course to create"
// @Success 200 {object} models.CourseDB "Created course"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /courses/create [post]
func NewCreateCourseHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCourseRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		course, err := svc.CreateCourse(r.Context(), req.Title, req.Description, req.Module, req.DurationHours, req.BadgeImage)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, course)
	}
}
