package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/middlewares"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
)

// MemberInviter defines the interface that the service must implement.
type MemberInviter interface {
	Invite(ctx context.Context, householdID, actingUserID uuid.UUID, inviteeEmail, role string) (*models.MembershipDB, error)
}

// InviteMemberRequest represents the JSON body for a membership invitation
// swagger:model InviteMemberRequest
type InviteMemberRequest struct {
	// Email of the user to invite
	// required: true
	// default: guest@example.com
	Email string `json:"email"`

	// Role to grant, defaults to member
	// default: member
	Role string `json:"role,omitempty"`
}

// NewInviteMemberHandler returns an HTTP handler adding a member to a
// household. The caller must hold the administrator or owner role.
// @Summary Invite member
// @Tags households
// @Accept json
// @Produce json
// @Param householdID path string true "Household id"
// @Param inviteMemberRequest body handlers.InviteMemberRequest true "Invitation"
// @Success 201 {object} models.MembershipDB
// @Failure 403 {object} handlers.ErrorResponse "Administrator or owner role required"
// @Failure 404 {object} handlers.ErrorResponse "Household or invitee not found"
// @Failure 409 {object} handlers.ErrorResponse "Already a member"
// @Router /households/{householdID}/members/invite [post]
// @Security BearerAuth
func NewInviteMemberHandler(svc MemberInviter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID := middlewares.GetCallerFromContext(r.Context())
		if callerID == uuid.Nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		householdID, err := uuidParam(r, "householdID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid household id"})
			return
		}

		var req InviteMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if req.Role != "" && !models.ValidRole(req.Role) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid role"})
			return
		}

		membership, err := svc.Invite(r.Context(), householdID, callerID, req.Email, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHouseholdNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Household not found"})
			case errors.Is(err, services.ErrNotAdministrator):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Administrator or owner role required"})
			case errors.Is(err, services.ErrInviteeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "No account exists for the invited email"})
			case errors.Is(err, services.ErrAlreadyMember):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User is already a member of this household"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(membership)
	}
}
