package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/token"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// SessionReader defines read-only operations for sessions.
type SessionReader interface {
	GetByID(ctx context.Context, sessionID uuid.UUID) (*models.SessionDB, error)
	GetActiveByToken(ctx context.Context, tokenString string) (*models.SessionDB, error)
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, session models.SessionDB) error
	Deactivate(ctx context.Context, sessionID uuid.UUID) error
	DeactivateByUser(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles login, logout and token resolution.
type AuthService struct {
	users    UserReader
	sessions SessionReader
	writer   SessionWriter
	ttl      time.Duration
}

// NewAuthService creates a new AuthService. ttl bounds the lifetime of
// issued sessions.
func NewAuthService(users UserReader, sessions SessionReader, writer SessionWriter, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		writer:   writer,
		ttl:      ttl,
	}
}

// Login verifies credentials and issues a fresh session, deactivating every
// prior active session of the user first. A missing email and a wrong
// password both come back as ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.SessionDB, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := svc.writer.DeactivateByUser(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to deactivate prior sessions", "err", err)
		return nil, err
	}

	tok, err := token.New()
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, err
	}

	now := time.Now()
	session := models.SessionDB{
		SessionID: uuid.New(),
		UserID:    user.UserID,
		Token:     tok,
		CreatedAt: now,
		ExpiresAt: now.Add(svc.ttl),
		Active:    true,
	}

	if err := svc.writer.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return nil, err
	}

	return &session, nil
}

// Logout flags a session inactive. Logging out an already-inactive session
// succeeds; only a session id that never existed yields ErrSessionNotFound.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	session, err := svc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	return svc.writer.Deactivate(ctx, sessionID)
}

// ResolveToken maps a bearer token to the owning user id. Unknown, inactive
// and expired tokens all yield ErrInvalidToken.
func (svc *AuthService) ResolveToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	session, err := svc.sessions.GetActiveByToken(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if session == nil {
		return uuid.Nil, ErrInvalidToken
	}
	return session.UserID, nil
}
