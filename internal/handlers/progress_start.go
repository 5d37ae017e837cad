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

// ProgressStarter defines the interface for starting a course.
type ProgressStarter interface {
	StartCourse(ctx context.Context, userEmail string, courseID int64) (*models.UserProgressDB, error)
}

// StartCourseRequest represents the JSON body for starting a course
// swagger:model StartCourseRequest
type StartCourseRequest struct {
	// Course id to start
	// required: true
	// default: 1
	CourseID int64 `json:"courseId"`
}

// NewStartCourseHandler returns an HTTP handler that records the
// authenticated user starting a course.
// @Summary Start a course
// @Description Records that the authenticated user started the given course
// @Tags progress
// @Accept json
// @Produce json
// @Param startCourseRequest body handlers.StartCourseRequest true "Course to start"
// @Success 200 {object} models.UserProgressDB "Created progress"
// @Failure 404 {object} handlers.ErrorResponse "User or course not found"
// @Failure 409 {object} handlers.ErrorResponse "Course already started"
// @Security BearerAuth
// @Router /progress/start [post]
func NewStartCourseHandler(svc ProgressStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middlewares.GetPrincipal(r.Context())
		if principal == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req StartCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		progress, err := svc.StartCourse(r.Context(), principal.Email, req.CourseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrCourseNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrCourseAlreadyStarted):
				writeError(w, http.StatusConflict, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}
