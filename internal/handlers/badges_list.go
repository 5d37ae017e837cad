package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/manudev/course-catalog-api/internal/middlewares"
	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
)

// BadgeLister defines the interface for listing a user's badges.
type BadgeLister interface {
	GetBadgesByUserEmail(ctx context.Context, userEmail string) ([]models.BadgeDB, error)
}

// NewListBadgesHandler returns an HTTP handler that lists the badges
// earned by the authenticated user.
// @Summary List my badges
// @Description Returns every badge earned by the authenticated user
// @Tags progress
// @Produce json
// @Success 200 {array} models.BadgeDB "Earned badges"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /badges [get]
func NewListBadgesHandler(svc BadgeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middlewares.GetPrincipal(r.Context())
		if principal == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		badges, err := svc.GetBadgesByUserEmail(r.Context(), principal.Email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, badges)
	}
}
