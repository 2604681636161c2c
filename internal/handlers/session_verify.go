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

// TokenResolver maps a session token to the owning user id.
type TokenResolver interface {
	ResolveToken(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// VerifySessionRequest represents the JSON body for token verification
// swagger:model VerifySessionRequest
type VerifySessionRequest struct {
	// Bearer token to verify
	// required: true
	Token string `json:"token"`
}

// VerifySessionResponse carries the resolved user id
// swagger:model VerifySessionResponse
type VerifySessionResponse struct {
	// Owning user id
	UserID uuid.UUID `json:"user_id"`
}

// NewVerifySessionHandler returns an HTTP handler resolving a bearer token
// to a user id, for the auth middleware of sibling services.
// @Summary Verify session token
// @Tags users
// @Accept json
// @Produce json
// @Param verifySessionRequest body handlers.VerifySessionRequest true "Token to verify"
// @Success 200 {object} handlers.VerifySessionResponse
// @Failure 401 {object} handlers.ErrorResponse "Unknown, inactive or expired token"
// @Router /sessions/verify [post]
func NewVerifySessionHandler(svc TokenResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifySessionRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		userID, err := svc.ResolveToken(r.Context(), req.Token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifySessionResponse{UserID: userID})
	}
}
