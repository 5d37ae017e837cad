package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
)

// CourseGetter defines the interface for the single-course lookup.
type CourseGetter interface {
	GetCourseByID(ctx context.Context, id int64) (*models.CourseDB, error)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewGetCourseHandler returns an HTTP handler for fetching one course by id.
// @Summary Get a course
// @Description Returns the course with the given id
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} models.CourseDB "Course"
// @Failure 404 {object} handlers.ErrorResponse "Course not found"
// @Security BearerAuth
// @Router /courses/{id} [get]
func NewGetCourseHandler(svc CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid course id")
			return
		}

		course, err := svc.GetCourseByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrCourseNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, course)
	}
}
