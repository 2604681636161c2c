package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
)

// UserUpdater defines the interface that the update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, name, email, password string) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a profile update.
// An empty password leaves the stored hash unchanged.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Display name
	// required: true
	Name string `json:"name"`

	// Email
	// required: true
	Email string `json:"email"`

	// New password, optional
	Password string `json:"password,omitempty"`
}

// NewUpdateUserHandler returns an HTTP handler for profile updates.
// @Summary Update user
// @Description Overwrites name and email; rejects an email already used by a different user; rehashes the password only when one is supplied.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile update"
// @Success 200 {object} models.UserDB
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already in use"
// @Router /users/{userID} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuidParam(r, "userID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid user id"})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		user, err := svc.Update(r.Context(), userID, req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email already in use by another user"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
