package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	householdID := uuid.New()
	taskID := uuid.New()

	t.Run("no caller", func(t *testing.T) {
		handler := NewCreateTaskHandler(NewMockTaskCreator(ctrl))

		bodyBytes, _ := json.Marshal(CreateTaskRequest{HouseholdID: householdID, Title: "Dishes"})
		req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(bodyBytes))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing household id", func(t *testing.T) {
		handler := NewCreateTaskHandler(NewMockTaskCreator(ctrl))

		bodyBytes, _ := json.Marshal(CreateTaskRequest{Title: "Dishes"})
		req := withCaller(httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(bodyBytes)), callerID)

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "household_id is required", resp.Error)
	})

	t.Run("success", func(t *testing.T) {
		due := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

		mockSvc := NewMockTaskCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), "Dishes", "after dinner", gomock.Any(), householdID, callerID).
			Return(&models.TaskDB{TaskID: taskID, Title: "Dishes", HouseholdID: householdID, CreatorID: callerID, DueDate: &due}, nil)

		handler := NewCreateTaskHandler(mockSvc)

		bodyBytes, _ := json.Marshal(CreateTaskRequest{
			HouseholdID: householdID,
			Title:       "Dishes",
			Description: "after dinner",
			DueDate:     &due,
		})
		req := withCaller(httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(bodyBytes)), callerID)

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var task models.TaskDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &task))
		assert.Equal(t, taskID, task.TaskID)
		assert.Equal(t, callerID, task.CreatorID)
		assert.False(t, task.Completed)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewCreateTaskHandler(NewMockTaskCreator(ctrl))

		req := withCaller(httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString("{invalid json}")), callerID)

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCompleteTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taskID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockTaskCompleter(ctrl)
		mockSvc.EXPECT().
			Complete(gomock.Any(), taskID).
			Return(&models.TaskDB{TaskID: taskID, Completed: true}, nil)

		handler := NewCompleteTaskHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPut, "/tasks/"+taskID.String()+"/complete", nil)
		req = withRouteParam(req, "taskID", taskID.String())

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var task models.TaskDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &task))
		assert.True(t, task.Completed)
	})

	t.Run("task not found", func(t *testing.T) {
		mockSvc := NewMockTaskCompleter(ctrl)
		mockSvc.EXPECT().Complete(gomock.Any(), taskID).Return(nil, services.ErrTaskNotFound)

		handler := NewCompleteTaskHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPut, "/tasks/"+taskID.String()+"/complete", nil)
		req = withRouteParam(req, "taskID", taskID.String())

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid task id", func(t *testing.T) {
		handler := NewCompleteTaskHandler(NewMockTaskCompleter(ctrl))

		req := httptest.NewRequest(http.MethodPut, "/tasks/not-a-uuid/complete", nil)
		req = withRouteParam(req, "taskID", "not-a-uuid")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
