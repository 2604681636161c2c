package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
)

// AssignmentLister defines the interface that the service must implement.
type AssignmentLister interface {
	ListAssignments(ctx context.Context, taskID uuid.UUID) ([]models.AssignmentDB, error)
}

// NewListAssignmentsHandler returns an HTTP handler listing the assignments
// of a task. An unknown task yields an empty list, not 404.
// @Summary List task assignments
// @Tags tasks
// @Produce json
// @Param taskID path string true "Task id"
// @Success 200 {array} models.AssignmentDB
// @Router /tasks/{taskID}/assignments [get]
func NewListAssignmentsHandler(svc AssignmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuidParam(r, "taskID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid task id"})
			return
		}

		assignments, err := svc.ListAssignments(r.Context(), taskID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(assignments)
	}
}
