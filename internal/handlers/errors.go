package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/manudev/course-catalog-api/internal/logger"
)

// ErrorResponse is the JSON error body returned by every handler.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Course not found with id 42
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
