package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manudev/course-catalog-api/internal/models"
	"github.com/manudev/course-catalog-api/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, name string, roleNames []string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Names of roles to attach; every role must already exist
	// required: true
	// default: ["student"]
	Roles []string `json:"roles"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with the given roles. Ensures a unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} models.UserDB "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Duplicate email, unknown role, or invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password, req.Name, req.Roles)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered),
				errors.Is(err, services.ErrRoleNotFound):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
