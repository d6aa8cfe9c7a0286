package migrations_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/limbo/goalkeeper/migrations"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	var exists bool
	err := db.QueryRow("SELECT to_regclass($1) IS NOT NULL", name).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func TestUpDown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("goalkeeper"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, migrations.Up(connStr))

	db, err := sql.Open(migrations.Driver, connStr)
	require.NoError(t, err)
	defer db.Close()
	for _, table := range []string{"users", "teams", "team_members", "goals", "goal_progress", "events", "event_attendees"} {
		assert.True(t, tableExists(t, db, table), table)
	}

	require.NoError(t, migrations.Down(db))
	assert.False(t, tableExists(t, db, "event_attendees"))
	assert.False(t, tableExists(t, db, "events"))
	assert.True(t, tableExists(t, db, "goals"))

	require.NoError(t, migrations.UpDB(db))
	assert.True(t, tableExists(t, db, "events"))
}
