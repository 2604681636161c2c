package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/services"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// LogoutRequest represents the JSON body for logout
// swagger:model LogoutRequest
type LogoutRequest struct {
	// Session id to invalidate
	// required: true
	SessionID uuid.UUID `json:"session_id"`
}

// NewLogoutHandler returns an HTTP handler that invalidates a session.
// @Summary Logout
// @Description Flags the session inactive. Repeating the call on an existing session succeeds; an unknown session id yields 404.
// @Tags users
// @Accept json
// @Produce json
// @Param logoutRequest body handlers.LogoutRequest true "Logout request"
// @Success 200 {object} handlers.MessageResponse "Session closed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogoutRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.Logout(r.Context(), req.SessionID); err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Session not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Session closed"})
	}
}
