package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUsersPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		name VARCHAR(100),
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS sessions (
		session_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (user_id),
		token VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMP NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newUser(email string) models.UserDB {
	return models.UserDB{
		UserID:       uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupUsersPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := newUser("alice@example.com")
	err := writeRepo.Save(ctx, user)
	assert.NoError(t, err)

	t.Run("ByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.Email, got.Email)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
	})

	t.Run("ByEmail", func(t *testing.T) {
		got, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
	})

	t.Run("EmailIsCaseSensitive", func(t *testing.T) {
		got, err := readRepo.GetByEmail(ctx, "ALICE@example.com")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		dup := newUser("alice@example.com")
		err := writeRepo.Save(ctx, dup)
		assert.Error(t, err)
	})
}

func TestUserRepository_List(t *testing.T) {
	db, teardown := setupUsersPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		u := newUser(fmt.Sprintf("user%d@example.com", i))
		u.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		assert.NoError(t, writeRepo.Save(ctx, u))
	}

	t.Run("All", func(t *testing.T) {
		users, err := readRepo.List(ctx, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("LimitOffset", func(t *testing.T) {
		users, err := readRepo.List(ctx, 2, 1)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "user1@example.com", users[0].Email)
	})
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupUsersPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := newUser("bob@example.com")
	assert.NoError(t, writeRepo.Save(ctx, user))

	user.Name = "Robert"
	user.Email = "robert@example.com"
	user.PasswordHash = "newhash"
	assert.NoError(t, writeRepo.Update(ctx, user))

	got, err := readRepo.GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "Robert", got.Name)
	assert.Equal(t, "robert@example.com", got.Email)
	assert.Equal(t, "newhash", got.PasswordHash)

	assert.NoError(t, writeRepo.Delete(ctx, user.UserID))

	got, err = readRepo.GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository(t *testing.T) {
	db, teardown := setupUsersPostgresContainer(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db, nil)
	writeRepo := NewSessionWriteRepository(db, nil)
	readRepo := NewSessionReadRepository(db)
	ctx := context.Background()

	user := newUser("carol@example.com")
	assert.NoError(t, userWrite.Save(ctx, user))

	session := models.SessionDB{
		SessionID: uuid.New(),
		UserID:    user.UserID,
		Token:     "tok-abc",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		Active:    true,
	}
	assert.NoError(t, writeRepo.Save(ctx, session))

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, session.SessionID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
		assert.True(t, got.Active)
	})

	t.Run("GetActiveByToken", func(t *testing.T) {
		got, err := readRepo.GetActiveByToken(ctx, "tok-abc")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, session.SessionID, got.SessionID)
	})

	t.Run("ExpiredTokenNotResolved", func(t *testing.T) {
		expired := models.SessionDB{
			SessionID: uuid.New(),
			UserID:    user.UserID,
			Token:     "tok-old",
			CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
			ExpiresAt: time.Now().UTC().Add(-time.Hour),
			Active:    true,
		}
		assert.NoError(t, writeRepo.Save(ctx, expired))

		got, err := readRepo.GetActiveByToken(ctx, "tok-old")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Deactivate", func(t *testing.T) {
		assert.NoError(t, writeRepo.Deactivate(ctx, session.SessionID))

		got, err := readRepo.GetActiveByToken(ctx, "tok-abc")
		assert.NoError(t, err)
		assert.Nil(t, got)

		// the row itself stays
		got, err = readRepo.GetByID(ctx, session.SessionID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.False(t, got.Active)
	})

	t.Run("DeactivateByUser", func(t *testing.T) {
		fresh := models.SessionDB{
			SessionID: uuid.New(),
			UserID:    user.UserID,
			Token:     "tok-fresh",
			CreatedAt: time.Now().UTC(),
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			Active:    true,
		}
		assert.NoError(t, writeRepo.Save(ctx, fresh))

		assert.NoError(t, writeRepo.DeactivateByUser(ctx, user.UserID))

		got, err := readRepo.GetActiveByToken(ctx, "tok-fresh")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DeleteByUser", func(t *testing.T) {
		assert.NoError(t, writeRepo.DeleteByUser(ctx, user.UserID))

		sessions, err := readRepo.ListByUser(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Empty(t, sessions)
	})
}
