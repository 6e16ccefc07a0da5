package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDBPool initializes a new pgx connection pool using the provided configuration.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the two document collections backing the service.
// Timestamps are stored as ISO-8601 text and binary payloads as base64 text,
// keeping the row shape a plain string-keyed document.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id            TEXT PRIMARY KEY,
			image_data    TEXT NOT NULL,
			status        TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS assets (
			id             TEXT PRIMARY KEY,
			job_id         TEXT NOT NULL,
			output_type    TEXT NOT NULL,
			language       TEXT NOT NULL,
			width          INTEGER NOT NULL,
			height         INTEGER NOT NULL,
			format         TEXT NOT NULL,
			data           TEXT NOT NULL,
			alt_text       TEXT NOT NULL DEFAULT '',
			contrast_score DOUBLE PRECISION,
			created_at     TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_assets_job_id ON assets (job_id);`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
