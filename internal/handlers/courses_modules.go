package handlers

import (
	"context"
	"net/http"
)

// ModulesProvider defines the interface for the distinct module listing.
type ModulesProvider interface {
	GetAvailableModules(ctx context.Context) ([]string, error)
}

// NewGetModulesHandler returns an HTTP handler for the distinct module listing.
// @Summary List available modules
// @Description Returns the distinct module names, lexicographically sorted
// @Tags courses
// @Produce json
// @Success 200 {array} string "Sorted module names"
// @Security BearerAuth
// @Router /courses/modules [get]
func NewGetModulesHandler(svc ModulesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modules, err := svc.GetAvailableModules(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, modules)
	}
}
