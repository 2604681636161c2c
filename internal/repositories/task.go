package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
)

// TaskReadRepository handles task read operations.
type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// GetByID returns the task with the given id, or nil if absent.
func (r *TaskReadRepository) GetByID(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error) {
	const query = `
		SELECT task_id, title, description, created_at, due_date, completed, creator_id, household_id
		FROM tasks
		WHERE task_id = $1
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, taskID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

// ListByHousehold returns tasks of a household ordered by creation time.
// limit <= 0 returns everything.
func (r *TaskReadRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]models.TaskDB, error) {
	query := `
		SELECT task_id, title, description, created_at, due_date, completed, creator_id, household_id
		FROM tasks
		WHERE household_id = $1
		ORDER BY created_at
	`
	args := []any{householdID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	tasks := []models.TaskDB{}
	err := r.db.SelectContext(ctx, &tasks, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(tasks),
		"error", err,
	)

	return tasks, err
}

// TaskWriteRepository handles task write operations.
type TaskWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTaskWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TaskWriteRepository {
	return &TaskWriteRepository{db: db, txGetter: txGetter}
}

func (r *TaskWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new task row.
func (r *TaskWriteRepository) Save(ctx context.Context, task models.TaskDB) error {
	query := `
		INSERT INTO tasks (task_id, title, description, created_at, due_date, completed, creator_id, household_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{
		task.TaskID, task.Title, task.Description, task.CreatedAt,
		task.DueDate, task.Completed, task.CreatorID, task.HouseholdID,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{task.TaskID, task.Title, task.HouseholdID},
		"error", err,
	)

	return err
}

// SetCompleted flags the task complete. Safe to call on a task that is
// already complete.
func (r *TaskWriteRepository) SetCompleted(ctx context.Context, taskID uuid.UUID) error {
	query := `UPDATE tasks SET completed = TRUE WHERE task_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, taskID)

	logger.Log.Infow(
		"query", query,
		"args", []any{taskID},
		"error", err,
	)

	return err
}
