package testing

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/db"
)

// GetDBPool connects to the postgres given by POSTGRES_HOST and POSTGRES_PORT,
// applies the schema and empties every table. The pool is closed on test cleanup.
func GetDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := envOr("POSTGRES_HOST", "localhost")
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         envOr("POSTGRES_PORT", "5432"),
		DBName:         envOr("POSTGRES_DB", "gymlog"),
		DBUser:         envOr("POSTGRES_USER", "postgres"),
		DBPassword:     envOr("POSTGRES_PASSWORD", "postgres"),
		TracingEnabled: false,
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.Migrate(ctx, dbPool))
	TruncateAll(t, dbPool)

	return dbPool
}

func TruncateAll(t *testing.T, dbPool *pgxpool.Pool) {
	t.Helper()
	_, err := dbPool.Exec(
		context.Background(),
		`TRUNCATE cardio_entry, strength_entry, workout_day, cardio_type, exercise, app_user RESTART IDENTITY CASCADE;`,
	)
	require.NoError(t, err)
}

// CreateUser inserts a user directly and returns its id.
func CreateUser(t *testing.T, dbPool *pgxpool.Pool, username string) int64 {
	t.Helper()
	var id int64
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO app_user (username, password_hash) VALUES ($1, 'not-a-real-hash') RETURNING id;`,
		username,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
