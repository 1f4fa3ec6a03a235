package postgres

import (
	"context"
	"database/sql"
	"errors"

	"psychoscore/domain/core"
	"psychoscore/models"
	"psychoscore/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ResultRepositoryImpl implements ResultRepository for PostgreSQL
type ResultRepositoryImpl struct {
	db *sqlx.DB
}

// NewResultRepository creates a new PostgreSQL result repository
func NewResultRepository(db *sqlx.DB) ports.ResultRepository {
	return &ResultRepositoryImpl{db: db}
}

// SaveResult stores one scored attempt
func (r *ResultRepositoryImpl) SaveResult(ctx context.Context, result *models.TestResult) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO test_results (id, session_id, user_id, instrument, scores_json, responses_json, quality_json, created_at)
		VALUES (:id, :session_id, :user_id, :instrument, :scores_json, :responses_json, :quality_json, NOW())
	`, result)
	return err
}

// GetResult retrieves the latest result for a user and instrument
func (r *ResultRepositoryImpl) GetResult(ctx context.Context, userID uuid.UUID, instrument string) (*models.TestResult, error) {
	var result models.TestResult
	err := r.db.GetContext(ctx, &result, `
		SELECT id, session_id, user_id, instrument, scores_json, responses_json, quality_json, created_at
		FROM test_results
		WHERE user_id = $1 AND instrument = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, instrument)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrResultNotFound
		}
		return nil, err
	}
	return &result, nil
}

// ListResultsByUser returns all of a user's results, newest first
func (r *ResultRepositoryImpl) ListResultsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestResult, error) {
	var results []*models.TestResult
	err := r.db.SelectContext(ctx, &results, `
		SELECT id, session_id, user_id, instrument, scores_json, responses_json, quality_json, created_at
		FROM test_results
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return results, nil
}
