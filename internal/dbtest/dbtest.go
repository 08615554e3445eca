// Package dbtest hands integration tests a migrated Postgres database, either
// the one named by TEST_DB_DSN or a throwaway testcontainers instance.
package dbtest

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"shop-backend/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	containerDSN  string
	containerErr  error
)

// Pool returns a pool on a freshly migrated and truncated database.
// Containers are reaped by the testcontainers reaper once the test binary exits.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in -short mode")
	}
	ctx := context.Background()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		containerOnce.Do(func() {
			containerDSN, containerErr = startContainer(ctx)
		})
		require.NoError(t, containerErr, "start postgres container")
		dsn = containerDSN
	}

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "connect db")
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx), "ping db")

	_, err = migrate.Apply(ctx, pool)
	require.NoError(t, err, "apply migrations")

	Reset(ctx, t, pool)
	return pool
}

// Reset empties every table and restarts identities.
func Reset(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(ctx, `TRUNCATE order_item, orders, address, customer, product, product_category, state, country RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "truncate tables")
}

// Count returns the number of rows in table.
func Count(ctx context.Context, t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&n))
	return n
}

func startContainer(ctx context.Context) (string, error) {
	ctr, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("shop_test"),
		tcpostgres.WithUsername("shop"),
		tcpostgres.WithPassword("shop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return "", err
	}
	return ctr.ConnectionString(ctx, "sslmode=disable")
}
