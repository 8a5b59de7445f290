//go:build integration

package containers

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance with a ready
// connection pool and the fincode schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	Pool      *pgxpool.Pool
	DSN       string
}

const bankDirectorySchema = `
CREATE TABLE IF NOT EXISTS bank_directory (
    id           BIGSERIAL PRIMARY KEY,
    country_code CHAR(2)      NOT NULL,
    bank_code    VARCHAR(16)  NOT NULL,
    bic          VARCHAR(11)  NOT NULL,
    bank_name    TEXT
);
CREATE INDEX IF NOT EXISTS idx_bank_directory_lookup
    ON bank_directory (country_code, bank_code);
CREATE INDEX IF NOT EXISTS idx_bank_directory_bic
    ON bank_directory (bic);
`

var (
	pgOnce      sync.Once
	pgSingleton *PostgresContainer
	pgErr       error
)

// GetPostgres returns the shared PostgreSQL container, starting it on first
// use. The container is shared across suites; Ryuk reaps it after the run.
func GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	pgOnce.Do(func() {
		pgSingleton, pgErr = newPostgresContainer()
	})
	if pgErr != nil {
		t.Fatalf("failed to start postgres container: %v", pgErr)
	}
	return pgSingleton
}

func newPostgresContainer() (*PostgresContainer, error) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("fincode"),
		tcpostgres.WithUsername("fincode"),
		tcpostgres.WithPassword("fincode"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("run postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, bankDirectorySchema); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &PostgresContainer{Container: container, Pool: pool, DSN: dsn}, nil
}

// TruncateTables empties the given tables between tests.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}
