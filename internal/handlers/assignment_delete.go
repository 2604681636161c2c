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

// AssignmentDeleter defines the interface that the service must implement.
type AssignmentDeleter interface {
	DeleteAssignment(ctx context.Context, assignmentID uuid.UUID) error
}

// NewDeleteAssignmentHandler returns an HTTP handler removing a single
// assignment by id.
// @Summary Delete assignment
// @Tags tasks
// @Produce json
// @Param assignmentID path string true "Assignment id"
// @Success 204 "Assignment deleted"
// @Failure 404 {object} handlers.ErrorResponse "Assignment not found"
// @Router /assignments/{assignmentID} [delete]
// @Security BearerAuth
func NewDeleteAssignmentHandler(svc AssignmentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assignmentID, err := uuidParam(r, "assignmentID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid assignment id"})
			return
		}

		if err := svc.DeleteAssignment(r.Context(), assignmentID); err != nil {
			switch {
			case errors.Is(err, services.ErrAssignmentNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Assignment not found"})
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
