package handlers

import (
	"context"
	"fmt"
	"net/http"
)

// CourseDeleter defines the interface for course deletion.
type CourseDeleter interface {
	DeleteCourseByID(ctx context.Context, id int64) (bool, error)
}

// NewDeleteCourseHandler returns an HTTP handler for course deletion.
// @Summary Delete a course
// @Description Removes the course with the given id
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 204 "Course deleted"
// @Failure 404 {object} handlers.ErrorResponse "Course not found"
// @Security BearerAuth
// @Router /courses/delete/{id} [delete]
func NewDeleteCourseHandler(svc CourseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid course id")
			return
		}

		deleted, err := svc.DeleteCourseByID(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		if !deleted {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Course not found with id %d", id))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
