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

// TaskCompleter defines the interface that the service must implement.
type TaskCompleter interface {
	Complete(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error)
}

// NewCompleteTaskHandler returns an HTTP handler marking a task completed.
// Completing an already-completed task succeeds and leaves it completed.
// @Summary Complete task
// @Tags tasks
// @Produce json
// @Param taskID path string true "Task id"
// @Success 200 {object} models.TaskDB
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/complete [put]
// @Security BearerAuth
func NewCompleteTaskHandler(svc TaskCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuidParam(r, "taskID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid task id"})
			return
		}

		task, err := svc.Complete(r.Context(), taskID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Task not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(task)
	}
}
