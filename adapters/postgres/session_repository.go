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

// SessionRepositoryImpl implements SessionRepository for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession creates a new test session
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *models.TestSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.Status == "" {
		session.Status = models.SessionStatusActive
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO test_sessions (id, user_id, instrument, status, current_question, started_at)
		VALUES (:id, :user_id, :instrument, :status, :current_question, NOW())
	`, session)
	return err
}

// GetSessionByID retrieves a session by its ID
func (r *SessionRepositoryImpl) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*models.TestSession, error) {
	var session models.TestSession
	err := r.db.GetContext(ctx, &session, `
		SELECT id, user_id, instrument, status, current_question, started_at, completed_at
		FROM test_sessions
		WHERE id = $1
	`, sessionID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// UpdateSessionStatus transitions a session's lifecycle state. Completed and
// abandoned sessions get their completed_at stamped, a reactivated session
// has it cleared.
func (r *SessionRepositoryImpl) UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, status models.SessionStatus) error {
	query := `
		UPDATE test_sessions
		SET status = $2, completed_at = NULL
		WHERE id = $1
	`
	if status == models.SessionStatusCompleted || status == models.SessionStatusAbandoned {
		query = `
			UPDATE test_sessions
			SET status = $2, completed_at = NOW()
			WHERE id = $1
		`
	}

	res, err := r.db.ExecContext(ctx, query, sessionID, status)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return core.ErrSessionNotFound
	}
	return nil
}

// ListSessionsByUser returns all sessions for a user, newest first
func (r *SessionRepositoryImpl) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestSession, error) {
	var sessions []*models.TestSession
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT id, user_id, instrument, status, current_question, started_at, completed_at
		FROM test_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
