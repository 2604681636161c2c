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

// TaskAssigner defines the interface that the service must implement.
type TaskAssigner interface {
	Assign(ctx context.Context, taskID, userID uuid.UUID) (*models.AssignmentDB, error)
}

// AssignTaskRequest represents the JSON body for a task assignment
// swagger:model AssignTaskRequest
type AssignTaskRequest struct {
	// User to assign the task to
	// required: true
	UserID uuid.UUID `json:"user_id"`
}

// NewAssignTaskHandler returns an HTTP handler assigning a task to a user.
// The same user may be assigned to the same task more than once; each call
// creates a distinct assignment row.
// @Summary Assign task
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task id"
// @Param assignTaskRequest body handlers.AssignTaskRequest true "Assignment"
// @Success 201 {object} models.AssignmentDB
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/assign [post]
// @Security BearerAuth
func NewAssignTaskHandler(svc TaskAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuidParam(r, "taskID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid task id"})
			return
		}

		var req AssignTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if req.UserID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "user_id is required"})
			return
		}

		assignment, err := svc.Assign(r.Context(), taskID, req.UserID)
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
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(assignment)
	}
}
