package migration

import (
	"context"

	"psychoscore/internal/errors"

	"github.com/jmoiron/sqlx"
)

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createUsersTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create users table")
	}
	if err := r.createTestSessionsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create test_sessions table")
	}
	if err := r.createTestResultsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create test_results table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}
	return nil
}

func (r *MigrationRunner) createUsersTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender TEXT NOT NULL CHECK (gender IN ('male', 'female')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createTestSessionsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS test_sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id),
			instrument TEXT NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('active', 'completed', 'abandoned')),
			current_question INTEGER NOT NULL DEFAULT 1,
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)
	`)
	return err
}

func (r *MigrationRunner) createTestResultsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS test_results (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL REFERENCES test_sessions (id),
			user_id UUID NOT NULL REFERENCES users (id),
			instrument TEXT NOT NULL,
			scores_json TEXT NOT NULL,
			responses_json TEXT NOT NULL,
			quality_json TEXT NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON test_sessions (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_status ON test_sessions (status)`,
		`CREATE INDEX IF NOT EXISTS idx_results_user_id ON test_results (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_session_id ON test_results (session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_instrument ON test_results (user_id, instrument)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
