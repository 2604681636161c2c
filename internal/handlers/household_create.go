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

// HouseholdCreator defines the interface that the service must implement.
type HouseholdCreator interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID) (*models.HouseholdDB, error)
}

// CreateHouseholdRequest represents the JSON body for household creation
// swagger:model CreateHouseholdRequest
type CreateHouseholdRequest struct {
	// Household name, globally unique
	// required: true
	// default: Casa
	Name string `json:"name"`
}

// NewCreateHouseholdHandler returns an HTTP handler for household creation.
// The authenticated caller becomes the owner and its first member.
// @Summary Create household
// @Tags households
// @Accept json
// @Produce json
// @Param createHouseholdRequest body handlers.CreateHouseholdRequest true "Household to create"
// @Success 201 {object} models.HouseholdDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Name already in use"
// @Router /households [post]
// @Security BearerAuth
func NewCreateHouseholdHandler(svc HouseholdCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID := middlewares.GetCallerFromContext(r.Context())
		if callerID == uuid.Nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateHouseholdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		household, err := svc.Create(r.Context(), req.Name, callerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHouseholdNameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "A household with this name already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(household)
	}
}
