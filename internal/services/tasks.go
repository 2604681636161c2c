package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
)

// Error variables
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// TaskReader defines read-only operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]models.TaskDB, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, task models.TaskDB) error
	SetCompleted(ctx context.Context, taskID uuid.UUID) error
}

// AssignmentReader defines read-only operations for assignments.
type AssignmentReader interface {
	GetByID(ctx context.Context, assignmentID uuid.UUID) (*models.AssignmentDB, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.AssignmentDB, error)
}

// AssignmentWriter defines write operations for assignments.
type AssignmentWriter interface {
	Save(ctx context.Context, assignment models.AssignmentDB) error
	Delete(ctx context.Context, assignmentID uuid.UUID) error
}

// TaskService handles tasks and their assignments.
type TaskService struct {
	reader       TaskReader
	writer       TaskWriter
	assignReader AssignmentReader
	assignWriter AssignmentWriter
	events       EventWriter
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(
	reader TaskReader,
	writer TaskWriter,
	assignReader AssignmentReader,
	assignWriter AssignmentWriter,
	events EventWriter,
) *TaskService {
	return &TaskService{
		reader:       reader,
		writer:       writer,
		assignReader: assignReader,
		assignWriter: assignWriter,
		events:       events,
	}
}

// Create stores a new, uncompleted task. The household reference is an
// opaque id from another service and is deliberately not verified here.
func (svc *TaskService) Create(ctx context.Context, title, description string, dueDate *time.Time, householdID, creatorID uuid.UUID) (*models.TaskDB, error) {
	task := models.TaskDB{
		TaskID:      uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		DueDate:     dueDate,
		Completed:   false,
		CreatorID:   creatorID,
		HouseholdID: householdID,
	}

	if err := svc.writer.Save(ctx, task); err != nil {
		logger.Log.Errorw("failed to save task", "err", err)
		return nil, err
	}

	return &task, nil
}

// List returns the tasks of a household. limit <= 0 returns everything.
func (svc *TaskService) List(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]models.TaskDB, error) {
	return svc.reader.ListByHousehold(ctx, householdID, limit, offset)
}

// Get returns a single task by id.
func (svc *TaskService) Get(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error) {
	task, err := svc.reader.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Complete flags the task complete, regardless of its current state, so
// repeating the call is a no-op success. There is no way back to
// uncompleted.
func (svc *TaskService) Complete(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error) {
	task, err := svc.reader.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := svc.writer.SetCompleted(ctx, taskID); err != nil {
		logger.Log.Errorw("failed to complete task", "err", err)
		return nil, err
	}
	task.Completed = true

	publishEvent(ctx, svc.events, models.EventTaskCompleted, taskID, uuid.Nil)

	return task, nil
}

// Assign binds a user to a task. The user reference is not verified and
// repeat assignments of the same user create distinct rows.
func (svc *TaskService) Assign(ctx context.Context, taskID, userID uuid.UUID) (*models.AssignmentDB, error) {
	task, err := svc.reader.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	assignment := models.AssignmentDB{
		AssignmentID: uuid.New(),
		TaskID:       taskID,
		UserID:       userID,
	}

	if err := svc.assignWriter.Save(ctx, assignment); err != nil {
		logger.Log.Errorw("failed to save assignment", "err", err)
		return nil, err
	}

	return &assignment, nil
}

// ListAssignments returns every assignment of a task.
func (svc *TaskService) ListAssignments(ctx context.Context, taskID uuid.UUID) ([]models.AssignmentDB, error) {
	return svc.assignReader.ListByTask(ctx, taskID)
}

// DeleteAssignment removes a single assignment by id.
func (svc *TaskService) DeleteAssignment(ctx context.Context, assignmentID uuid.UUID) error {
	assignment, err := svc.assignReader.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return ErrAssignmentNotFound
	}

	return svc.assignWriter.Delete(ctx, assignmentID)
}
