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

// AssignmentReadRepository handles assignment read operations.
type AssignmentReadRepository struct {
	db *sqlx.DB
}

func NewAssignmentReadRepository(db *sqlx.DB) *AssignmentReadRepository {
	return &AssignmentReadRepository{db: db}
}

// GetByID returns the assignment with the given id, or nil if absent.
func (r *AssignmentReadRepository) GetByID(ctx context.Context, assignmentID uuid.UUID) (*models.AssignmentDB, error) {
	const query = `
		SELECT assignment_id, task_id, user_id
		FROM assignments
		WHERE assignment_id = $1
	`

	var assignment models.AssignmentDB
	err := r.db.GetContext(ctx, &assignment, query, assignmentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{assignmentID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &assignment, nil
}

// ListByTask returns every assignment of a task, duplicates included.
func (r *AssignmentReadRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.AssignmentDB, error) {
	const query = `
		SELECT assignment_id, task_id, user_id
		FROM assignments
		WHERE task_id = $1
	`

	assignments := []models.AssignmentDB{}
	err := r.db.SelectContext(ctx, &assignments, query, taskID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID},
		"result", len(assignments),
		"error", err,
	)

	return assignments, err
}

// AssignmentWriteRepository handles assignment write operations.
type AssignmentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAssignmentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AssignmentWriteRepository {
	return &AssignmentWriteRepository{db: db, txGetter: txGetter}
}

func (r *AssignmentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new assignment row. No dedup: the same user may be
// assigned to the same task more than once.
func (r *AssignmentWriteRepository) Save(ctx context.Context, assignment models.AssignmentDB) error {
	query := `
		INSERT INTO assignments (assignment_id, task_id, user_id)
		VALUES ($1, $2, $3)
	`
	args := []any{assignment.AssignmentID, assignment.TaskID, assignment.UserID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes a single assignment row.
func (r *AssignmentWriteRepository) Delete(ctx context.Context, assignmentID uuid.UUID) error {
	query := `DELETE FROM assignments WHERE assignment_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, assignmentID)

	logger.Log.Infow(
		"query", query,
		"args", []any{assignmentID},
		"error", err,
	)

	return err
}
