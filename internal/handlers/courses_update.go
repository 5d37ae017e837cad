package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
)

// CourseUpdater defines the interface for the merge-patch course update.
type CourseUpdater interface {
	UpdateCourseByID(ctx context.Context, id int64, patch models.CoursePatch) (*models.CourseDB, error)
}

// NewUpdateCourseHandler returns an HTTP handler for partial course updates.
// Omitted (null) fields keep their stored values; the title is immutable.
// @Summary Update a course
// @Description Applies a merge-patch to the course with the given id; omitted fields are left untouched
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course id"
// @Param coursePatch body models.CoursePatch true "Fields to overwrite"
// @Success 200 {object} models.CourseDB "Updated course"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Course not found"
// @Security BearerAuth
// @Router /courses/update/{id} [put]
func NewUpdateCourseHandler(svc CourseUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid course id")
			return
		}

		var patch models.CoursePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		course, err := svc.UpdateCourseByID(r.Context(), id, patch)
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
