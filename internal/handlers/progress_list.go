package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/manudev/course-catalog-api/internal/middlewares"
	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
)

// ProgressLister defines the interface for listing a user's course progress.
type ProgressLister interface {
	GetProgressByUserEmail(ctx context.Context, userEmail string) ([]models.ProgressEntry, error)
}

// NewListProgressHandler returns an HTTP handler that lists all progress
// records of the authenticated user.
// @Summary List my course progress
// @Description Returns every course the authenticated user has started or completed
// @Tags progress
// @Produce json
// @Success 200 {array} models.ProgressEntry "Progress entries"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /progress [get]
func NewListProgressHandler(svc ProgressLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middlewares.GetPrincipal(r.Context())
		if principal == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		entries, err := svc.GetProgressByUserEmail(r.Context(), principal.Email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
