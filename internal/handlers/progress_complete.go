package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manudev/course-catalog-api/internal/middlewares"
	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
)

// ProgressCompleter defines the interface for completing a course.
type ProgressCompleter interface {
	CompleteCourse(ctx context.Context, userEmail string, courseID int64) (*models.CourseCompletion, error)
}

// CompleteCourseRequest represents the JSON body for completing a course
// swagger:model CompleteCourseRequest
type CompleteCourseRequest struct {
	// Course id to complete
	// required: true
	// default: 1
	CourseID int64 `json:"courseId"`
}

// NewCompleteCourseHandler returns an HTTP handler that marks a course
// completed for the authenticated user and awards the completion badge.
// @Summary Complete a course
// @Description Marks the given course completed for the authenticated user and awards a badge
// @Tags progress
// @Accept json
// @Produce json
// @Param completeCourseRequest body handlers.CompleteCourseRequest true "Course to complete"
// @Success 200 {object} models.CourseCompletion "Completion summary"
// @Failure 404 {object} handlers.ErrorResponse "User, course, or progress not found"
// @Failure 409 {object} handlers.ErrorResponse "Course already completed"
// @Security BearerAuth
// @Router /progress/complete [post]
func NewCompleteCourseHandler(svc ProgressCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middlewares.GetPrincipal(r.Context())
		if principal == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req CompleteCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		summary, err := svc.CompleteCourse(r.Context(), principal.Email, req.CourseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrCourseNotFound),
				errors.Is(err, services.ErrProgressNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrCourseAlreadyCompleted):
				writeError(w, http.StatusConflict, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
