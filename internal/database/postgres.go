package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// migrationLockID is a PostgreSQL advisory lock ID for coordinating migrations.
	// Value: 0x666565646261 ("feedba" in ASCII hex)
	migrationLockID             = 0x666565646261
	migrationLockReleaseTimeout = 5 * time.Second
)

// Connect creates a pgx connection pool and verifies the connection.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	poolCfg.ConnConfig.Tracer = &MetricsTracer{}

	slog.Info("Database SSL mode", "sslmode", extractSSLMode(databaseURL))

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected", "min_conns", poolCfg.MinConns, "max_conns", poolCfg.MaxConns)
	return pool, nil
}

func extractSSLMode(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "unknown"
	}
	mode := strings.ToLower(u.Query().Get("sslmode"))
	if mode == "" {
		return "prefer (default)"
	}
	return mode
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY,
		author_id TEXT NOT NULL,
		author_name TEXT NOT NULL,
		author_email TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		rating INT NOT NULL,
		title TEXT NOT NULL,
		comment TEXT NOT NULL,
		images JSONB,
		location JSONB,
		related_entity_id TEXT NOT NULL DEFAULT '',
		related_entity_name TEXT NOT NULL DEFAULT '',
		submitted_at TIMESTAMPTZ NOT NULL,
		is_anonymous BOOLEAN NOT NULL DEFAULT FALSE,
		tags JSONB,
		sentiment JSONB NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		admin_response JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_category ON feedback(category)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_status ON feedback(status)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_submitted_at ON feedback(submitted_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_sentiment_overall ON feedback((sentiment->>'overall'))`,
}

// RunMigrations applies the schema under an advisory lock so that several
// instances starting at once cannot race each other.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for migration: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), migrationLockReleaseTimeout)
		defer cancel()
		if _, err := conn.Exec(unlockCtx, "SELECT pg_advisory_unlock($1)", migrationLockID); err != nil {
			slog.Error("failed to release migration lock", "error", err)
		}
	}()

	slog.Info("running database migrations")
	for _, migration := range migrations {
		if _, err := conn.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
