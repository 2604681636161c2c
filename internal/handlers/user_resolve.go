package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
)

// EmailResolver resolves an email to a user record, for the identity
// directory consumed by the households service.
type EmailResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// NewResolveUserHandler returns an HTTP handler resolving a user by email.
// @Summary Resolve user by email
// @Description Identity-directory lookup used by sibling services during invitations.
// @Tags users
// @Produce json
// @Param email query string true "Email to resolve"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Missing email parameter"
// @Failure 404 {object} handlers.ErrorResponse "No account for that email"
// @Router /users/by-email [get]
func NewResolveUserHandler(svc EmailResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "email parameter required"})
			return
		}

		user, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
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
