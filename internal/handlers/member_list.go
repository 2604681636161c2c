package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
)

// MemberLister defines the interface that the service must implement.
type MemberLister interface {
	ListMembers(ctx context.Context, householdID uuid.UUID) ([]models.MembershipDB, error)
}

// NewListMembersHandler returns an HTTP handler listing the memberships of
// a household. An unknown household yields an empty list, not 404.
// @Summary List household members
// @Tags households
// @Produce json
// @Param householdID path string true "Household id"
// @Success 200 {array} models.MembershipDB
// @Router /households/{householdID}/members [get]
func NewListMembersHandler(svc MemberLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, err := uuidParam(r, "householdID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid household id"})
			return
		}

		members, err := svc.ListMembers(r.Context(), householdID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(members)
	}
}
