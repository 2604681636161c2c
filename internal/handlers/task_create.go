package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/middlewares"
	"github.com/mmartinpaz/hogares/internal/models"
)

// TaskCreator defines the interface that the service must implement.
type TaskCreator interface {
	Create(ctx context.Context, title, description string, dueDate *time.Time, householdID, creatorID uuid.UUID) (*models.TaskDB, error)
}

// CreateTaskRequest represents the JSON body for task creation
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	// Household the task belongs to
	// required: true
	HouseholdID uuid.UUID `json:"household_id"`

	// Task title
	// required: true
	// default: Take out the trash
	Title string `json:"title"`

	// Free-form description
	Description string `json:"description,omitempty"`

	// Optional due date
	DueDate *time.Time `json:"due_date,omitempty"`
}

// NewCreateTaskHandler returns an HTTP handler for task creation. The
// authenticated caller is recorded as the creator. The household id is
// not cross-checked against the households service.
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param createTaskRequest body handlers.CreateTaskRequest true "Task to create"
// @Success 201 {object} models.TaskDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tasks [post]
// @Security BearerAuth
func NewCreateTaskHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID := middlewares.GetCallerFromContext(r.Context())
		if callerID == uuid.Nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if req.HouseholdID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "household_id is required"})
			return
		}

		task, err := svc.Create(r.Context(), req.Title, req.Description, req.DueDate, req.HouseholdID, callerID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(task)
	}
}
