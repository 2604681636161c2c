package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/middlewares"
	"github.com/mmartinpaz/hogares/internal/services"
)

// HouseholdDeleter defines the interface that the service must implement.
type HouseholdDeleter interface {
	Delete(ctx context.Context, householdID, actingUserID uuid.UUID) error
}

// NewDeleteHouseholdHandler returns an HTTP handler deleting a household
// and all of its memberships. Only the owner may delete; a nonexistent
// household also yields 403, preserving the legacy surface.
// @Summary Delete household
// @Tags households
// @Produce json
// @Param householdID path string true "Household id"
// @Success 204 "Household deleted"
// @Failure 403 {object} handlers.ErrorResponse "Only the owner can delete the household"
// @Router /households/{householdID} [delete]
// @Security BearerAuth
func NewDeleteHouseholdHandler(svc HouseholdDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), householdID, callerID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the owner can delete the household"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
