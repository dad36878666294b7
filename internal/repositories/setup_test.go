package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/store"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupSQLite opens a private migrated in-memory database.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := store.Open(context.Background(), store.Config{Driver: store.DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")
	dsn := store.PostgresDSN(host, port.Int(), "postgres", "password", "testdb")

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = store.Open(ctx, store.Config{Driver: store.DriverPostgres, DSN: dsn})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

func insertUser(t *testing.T, db *sqlx.DB, email string) int64 {
	t.Helper()
	id, created, err := NewUserWriteRepository(db, nil).Save(context.Background(), email, "hash")
	require.NoError(t, err)
	require.True(t, created)
	return id
}

func insertEvent(t *testing.T, db *sqlx.DB, ownerID int64, title string, start *time.Time) int64 {
	t.Helper()
	id, err := NewEventRepository(db, nil).Create(context.Background(), ownerID, eventInput(title, start))
	require.NoError(t, err)
	return id
}

func insertParticipant(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()
	id, err := NewParticipantRepository(db, nil).Create(context.Background(), participantInput(name))
	require.NoError(t, err)
	return id
}

func ptr[T any](v T) *T {
	return &v
}

func at(hour int) *time.Time {
	t := time.Date(2025, 10, 1, hour, 0, 0, 0, time.UTC)
	return &t
}
