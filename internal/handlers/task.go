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

// TaskLister defines the list side of the task service.
type TaskLister interface {
	List(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]models.TaskDB, error)
}

// TaskGetter defines the single-read side of the task service.
type TaskGetter interface {
	Get(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error)
}

// NewListTasksHandler returns an HTTP handler listing the tasks of a
// household. The household_id query parameter is mandatory.
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param household_id query string true "Household id"
// @Param limit query int false "Page size, 0 for all"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.TaskDB
// @Router /tasks [get]
func NewListTasksHandler(svc TaskLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, err := uuid.Parse(r.URL.Query().Get("household_id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "household_id query parameter is required"})
			return
		}
		limit, offset := limitOffset(r)

		tasks, err := svc.List(r.Context(), householdID, limit, offset)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(tasks)
	}
}

// NewGetTaskHandler returns an HTTP handler fetching one task.
// @Summary Get task
// @Tags tasks
// @Produce json
// @Param taskID path string true "Task id"
// @Success 200 {object} models.TaskDB
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [get]
func NewGetTaskHandler(svc TaskGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuidParam(r, "taskID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid task id"})
			return
		}

		task, err := svc.Get(r.Context(), taskID)
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
