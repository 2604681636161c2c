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

// SessionReadRepository handles session read operations.
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByID returns the session with the given id, or nil if absent.
func (r *SessionReadRepository) GetByID(ctx context.Context, sessionID uuid.UUID) (*models.SessionDB, error) {
	const query = `
		SELECT session_id, user_id, token, created_at, expires_at, active
		FROM sessions
		WHERE session_id = $1
	`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, sessionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// GetActiveByToken returns the active, unexpired session carrying the given
// token, or nil when no such session exists.
func (r *SessionReadRepository) GetActiveByToken(ctx context.Context, token string) (*models.SessionDB, error) {
	const query = `
		SELECT session_id, user_id, token, created_at, expires_at, active
		FROM sessions
		WHERE token = $1 AND active AND expires_at > NOW()
	`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// ListByUser returns all sessions, active or not, owned by the user.
func (r *SessionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SessionDB, error) {
	const query = `
		SELECT session_id, user_id, token, created_at, expires_at, active
		FROM sessions
		WHERE user_id = $1
		ORDER BY created_at
	`

	sessions := []models.SessionDB{}
	err := r.db.SelectContext(ctx, &sessions, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(sessions),
		"error", err,
	)

	return sessions, err
}

// SessionWriteRepository handles session write operations.
type SessionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSessionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SessionWriteRepository {
	return &SessionWriteRepository{db: db, txGetter: txGetter}
}

func (r *SessionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new session row.
func (r *SessionWriteRepository) Save(ctx context.Context, session models.SessionDB) error {
	query := `
		INSERT INTO sessions (session_id, user_id, token, created_at, expires_at, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{
		session.SessionID, session.UserID, session.Token,
		session.CreatedAt, session.ExpiresAt, session.Active,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{session.SessionID, session.UserID},
		"error", err,
	)

	return err
}

// Deactivate flags a single session inactive.
func (r *SessionWriteRepository) Deactivate(ctx context.Context, sessionID uuid.UUID) error {
	query := `UPDATE sessions SET active = FALSE WHERE session_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, sessionID)

	logger.Log.Infow(
		"query", query,
		"args", []any{sessionID},
		"error", err,
	)

	return err
}

// DeactivateByUser flags every active session of the user inactive.
// Called before issuing a new session so at most one stays active.
func (r *SessionWriteRepository) DeactivateByUser(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE sessions SET active = FALSE WHERE user_id = $1 AND active`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}

// DeleteByUser removes all sessions of the user, as part of user deletion.
func (r *SessionWriteRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM sessions WHERE user_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}
