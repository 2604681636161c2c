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

// HouseholdReadRepository handles household read operations.
type HouseholdReadRepository struct {
	db *sqlx.DB
}

func NewHouseholdReadRepository(db *sqlx.DB) *HouseholdReadRepository {
	return &HouseholdReadRepository{db: db}
}

// GetByID returns the household with the given id, or nil if absent.
func (r *HouseholdReadRepository) GetByID(ctx context.Context, householdID uuid.UUID) (*models.HouseholdDB, error) {
	const query = `
		SELECT household_id, name, owner_id, created_at
		FROM households
		WHERE household_id = $1
	`

	var household models.HouseholdDB
	err := r.db.GetContext(ctx, &household, query, householdID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{householdID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &household, nil
}

// GetByName returns the household with the given name, or nil if absent.
// Names are globally unique.
func (r *HouseholdReadRepository) GetByName(ctx context.Context, name string) (*models.HouseholdDB, error) {
	const query = `
		SELECT household_id, name, owner_id, created_at
		FROM households
		WHERE name = $1
	`

	var household models.HouseholdDB
	err := r.db.GetContext(ctx, &household, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &household, nil
}

// List returns households ordered by creation time. limit <= 0 returns everything.
func (r *HouseholdReadRepository) List(ctx context.Context, limit, offset int) ([]models.HouseholdDB, error) {
	query := `
		SELECT household_id, name, owner_id, created_at
		FROM households
		ORDER BY created_at
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	households := []models.HouseholdDB{}
	err := r.db.SelectContext(ctx, &households, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(households),
		"error", err,
	)

	return households, err
}

// HouseholdWriteRepository handles household write operations.
type HouseholdWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewHouseholdWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *HouseholdWriteRepository {
	return &HouseholdWriteRepository{db: db, txGetter: txGetter}
}

func (r *HouseholdWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new household row.
func (r *HouseholdWriteRepository) Save(ctx context.Context, household models.HouseholdDB) error {
	query := `
		INSERT INTO households (household_id, name, owner_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	args := []any{household.HouseholdID, household.Name, household.OwnerID, household.CreatedAt}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{household.HouseholdID, household.Name, household.OwnerID},
		"error", err,
	)

	return err
}

// Delete removes the household row. Memberships must be deleted first.
func (r *HouseholdWriteRepository) Delete(ctx context.Context, householdID uuid.UUID) error {
	query := `DELETE FROM households WHERE household_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, householdID)

	logger.Log.Infow(
		"query", query,
		"args", []any{householdID},
		"error", err,
	)

	return err
}
