package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/manudev/course-catalog-api/internal/models"
)

// CourseLister defines the interface for the paginated course listing.
type CourseLister interface {
	ListCourses(ctx context.Context, module string, page, size int) (*models.CoursePage, error)
}

// NewListCoursesHandler returns an HTTP handler for the paginated course listing.
// @Summary List courses
// @Description Returns one page of courses, optionally filtered by module (case-insensitive substring match)
// @Tags courses
// @Produce json
// @Param module query string false "Module filter"
// @Param page query int false "Zero-based page number, defaults to 0"
// @Param size query int false "Page size, defaults to 20"
// @Success 200 {object} models.CoursePage "One page of courses"
// @Security BearerAuth
// @Router /courses [get]
func NewListCoursesHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		module := r.URL.Query().Get("module")
		page := queryInt(r, "page", -1)
		size := queryInt(r, "size", 0)

		result, err := svc.ListCourses(r.Context(), module, page, size)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed. The service clamps out-of-range values.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
