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

func setupTasksPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS tasks (
		task_id UUID PRIMARY KEY,
		title VARCHAR(150) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		due_date TIMESTAMP,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		creator_id UUID NOT NULL,
		household_id UUID NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assignments (
		assignment_id UUID PRIMARY KEY,
		task_id UUID NOT NULL REFERENCES tasks (task_id),
		user_id UUID NOT NULL
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

func newTask(householdID uuid.UUID, title string) models.TaskDB {
	return models.TaskDB{
		TaskID:      uuid.New(),
		Title:       title,
		Description: "some chore",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		CreatorID:   uuid.New(),
		HouseholdID: householdID,
	}
}

func TestTaskRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupTasksPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	householdID := uuid.New()
	due := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	task := newTask(householdID, "Dishes")
	task.DueDate = &due
	assert.NoError(t, writeRepo.Save(ctx, task))

	t.Run("Found", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, task.TaskID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Dishes", got.Title)
		assert.False(t, got.Completed)
		assert.NotNil(t, got.DueDate)
		assert.Equal(t, due, got.DueDate.UTC())
	})

	t.Run("NilDueDate", func(t *testing.T) {
		undated := newTask(householdID, "Sweep")
		assert.NoError(t, writeRepo.Save(ctx, undated))

		got, err := readRepo.GetByID(ctx, undated.TaskID)
		assert.NoError(t, err)
		assert.Nil(t, got.DueDate)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTaskRepository_ListByHousehold(t *testing.T) {
	db, teardown := setupTasksPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	householdID := uuid.New()
	otherHousehold := uuid.New()

	for i := 0; i < 3; i++ {
		task := newTask(householdID, fmt.Sprintf("Chore %d", i))
		task.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		assert.NoError(t, writeRepo.Save(ctx, task))
	}
	assert.NoError(t, writeRepo.Save(ctx, newTask(otherHousehold, "Elsewhere")))

	t.Run("OnlyOwnHousehold", func(t *testing.T) {
		tasks, err := readRepo.ListByHousehold(ctx, householdID, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, tasks, 3)
	})

	t.Run("LimitOffset", func(t *testing.T) {
		tasks, err := readRepo.ListByHousehold(ctx, householdID, 2, 1)
		assert.NoError(t, err)
		assert.Len(t, tasks, 2)
		assert.Equal(t, "Chore 1", tasks[0].Title)
	})

	t.Run("UnknownHouseholdIsEmpty", func(t *testing.T) {
		tasks, err := readRepo.ListByHousehold(ctx, uuid.New(), 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskRepository_SetCompleted(t *testing.T) {
	db, teardown := setupTasksPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	task := newTask(uuid.New(), "Laundry")
	assert.NoError(t, writeRepo.Save(ctx, task))

	assert.NoError(t, writeRepo.SetCompleted(ctx, task.TaskID))

	got, err := readRepo.GetByID(ctx, task.TaskID)
	assert.NoError(t, err)
	assert.True(t, got.Completed)

	// repeat completion keeps the flag set
	assert.NoError(t, writeRepo.SetCompleted(ctx, task.TaskID))

	got, err = readRepo.GetByID(ctx, task.TaskID)
	assert.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestAssignmentRepository(t *testing.T) {
	db, teardown := setupTasksPostgresContainer(t)
	defer teardown()

	taskWrite := NewTaskWriteRepository(db, nil)
	writeRepo := NewAssignmentWriteRepository(db, nil)
	readRepo := NewAssignmentReadRepository(db)
	ctx := context.Background()

	task := newTask(uuid.New(), "Garden")
	assert.NoError(t, taskWrite.Save(ctx, task))

	userID := uuid.New()
	first := models.AssignmentDB{AssignmentID: uuid.New(), TaskID: task.TaskID, UserID: userID}
	assert.NoError(t, writeRepo.Save(ctx, first))

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, first.AssignmentID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, task.TaskID, got.TaskID)
		assert.Equal(t, userID, got.UserID)
	})

	t.Run("RepeatAssignmentAllowed", func(t *testing.T) {
		second := models.AssignmentDB{AssignmentID: uuid.New(), TaskID: task.TaskID, UserID: userID}
		assert.NoError(t, writeRepo.Save(ctx, second))

		assignments, err := readRepo.ListByTask(ctx, task.TaskID)
		assert.NoError(t, err)
		assert.Len(t, assignments, 2)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, first.AssignmentID))

		got, err := readRepo.GetByID(ctx, first.AssignmentID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ListUnknownTaskIsEmpty", func(t *testing.T) {
		assignments, err := readRepo.ListByTask(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, assignments)
	})
}
