package ports

import (
	"context"

	"psychoscore/models"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for test session operations
type SessionRepository interface {
	// CreateSession creates a new test session
	CreateSession(ctx context.Context, session *models.TestSession) error

	// GetSessionByID retrieves a session by its ID
	GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*models.TestSession, error)

	// UpdateSessionStatus transitions a session's lifecycle state
	UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, status models.SessionStatus) error

	// ListSessionsByUser returns all sessions for a user
	ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestSession, error)
}
