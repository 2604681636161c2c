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

// HouseholdLister defines the list side of the household service.
type HouseholdLister interface {
	List(ctx context.Context, limit, offset int) ([]models.HouseholdDB, error)
}

// HouseholdGetter defines the single-read side of the household service.
type HouseholdGetter interface {
	Get(ctx context.Context, householdID uuid.UUID) (*models.HouseholdDB, error)
}

// NewListHouseholdsHandler returns an HTTP handler listing all households.
// @Summary List households
// @Tags households
// @Produce json
// @Param limit query int false "Page size, 0 for all"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.HouseholdDB
// @Router /households [get]
func NewListHouseholdsHandler(svc HouseholdLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := limitOffset(r)

		households, err := svc.List(r.Context(), limit, offset)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(households)
	}
}

// NewGetHouseholdHandler returns an HTTP handler fetching one household.
// @Summary Get household
// @Tags households
// @Produce json
// @Param householdID path string true "Household id"
// @Success 200 {object} models.HouseholdDB
// @Failure 404 {object} handlers.ErrorResponse "Household not found"
// @Router /households/{householdID} [get]
func NewGetHouseholdHandler(svc HouseholdGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, err := uuidParam(r, "householdID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid household id"})
			return
		}

		household, err := svc.Get(r.Context(), householdID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHouseholdNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Household not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(household)
	}
}
