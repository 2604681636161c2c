package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context, limit, offset int) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	Update(ctx context.Context, user models.UserDB) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// SessionRemover deletes sessions as part of user deletion.
type SessionRemover interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// UserService handles registration and profile CRUD.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionRemover
	events   EventWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, sessions SessionRemover, events EventWriter) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		events:   events,
	}
}

// Register creates a new user. The email must not already be registered;
// the password is stored as a bcrypt hash.
func (svc *UserService) Register(ctx context.Context, name, email, password string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, models.EventUserRegistered, user.UserID, uuid.Nil)

	return &user, nil
}

// List returns registered users. limit <= 0 returns everything.
func (svc *UserService) List(ctx context.Context, limit, offset int) ([]models.UserDB, error) {
	return svc.reader.List(ctx, limit, offset)
}

// Get returns a single user by id.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail returns a single user by email, for the identity directory.
func (svc *UserService) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update overwrites name and email, re-checking email uniqueness against
// other users when it changes. The password is rehashed only when a new one
// is supplied; empty means unchanged.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, name, email, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if email != user.Email {
		other, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.UserID != userID {
			logger.Log.Errorw("email already in use", "email", email)
			return nil, ErrEmailAlreadyExists
		}
	}

	user.Name = name
	user.Email = email

	if password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := svc.writer.Update(ctx, *user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}

	return user, nil
}

// Delete removes a user and all of their sessions. Sessions go first so no
// session row outlives its user.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := svc.sessions.DeleteByUser(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user sessions", "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}

	publishEvent(ctx, svc.events, models.EventUserDeleted, userID, uuid.Nil)

	return nil
}
