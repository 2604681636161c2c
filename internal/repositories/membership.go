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

// MembershipReadRepository handles membership read operations.
type MembershipReadRepository struct {
	db *sqlx.DB
}

func NewMembershipReadRepository(db *sqlx.DB) *MembershipReadRepository {
	return &MembershipReadRepository{db: db}
}

// GetByHouseholdAndUser returns the membership row for (household, user),
// or nil when the user is not a member.
func (r *MembershipReadRepository) GetByHouseholdAndUser(ctx context.Context, householdID, userID uuid.UUID) (*models.MembershipDB, error) {
	const query = `
		SELECT member_id, household_id, user_id, role
		FROM household_members
		WHERE household_id = $1 AND user_id = $2
	`

	var membership models.MembershipDB
	err := r.db.GetContext(ctx, &membership, query, householdID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{householdID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &membership, nil
}

// ListByHousehold returns every membership of a household.
func (r *MembershipReadRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]models.MembershipDB, error) {
	const query = `
		SELECT member_id, household_id, user_id, role
		FROM household_members
		WHERE household_id = $1
	`

	memberships := []models.MembershipDB{}
	err := r.db.SelectContext(ctx, &memberships, query, householdID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{householdID},
		"result", len(memberships),
		"error", err,
	)

	return memberships, err
}

// MembershipWriteRepository handles membership write operations.
type MembershipWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMembershipWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MembershipWriteRepository {
	return &MembershipWriteRepository{db: db, txGetter: txGetter}
}

func (r *MembershipWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new membership row.
func (r *MembershipWriteRepository) Save(ctx context.Context, membership models.MembershipDB) error {
	query := `
		INSERT INTO household_members (member_id, household_id, user_id, role)
		VALUES ($1, $2, $3, $4)
	`
	args := []any{membership.MemberID, membership.HouseholdID, membership.UserID, membership.Role}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// DeleteByHousehold removes every membership of a household, ahead of the
// household row itself.
func (r *MembershipWriteRepository) DeleteByHousehold(ctx context.Context, householdID uuid.UUID) error {
	query := `DELETE FROM household_members WHERE household_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, householdID)

	logger.Log.Infow(
		"query", query,
		"args", []any{householdID},
		"error", err,
	)

	return err
}
