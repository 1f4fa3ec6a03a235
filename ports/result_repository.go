package ports

import (
	"context"

	"psychoscore/models"

	"github.com/google/uuid"
)

// ResultRepository defines the interface for scored result operations.
// It attaches identity (user, session, timestamp) to ScoredResults and keeps
// raw responses alongside derived scores so attempts can be re-scored.
type ResultRepository interface {
	// SaveResult stores one scored attempt
	SaveResult(ctx context.Context, result *models.TestResult) error

	// GetResult retrieves the latest result for a user and instrument
	GetResult(ctx context.Context, userID uuid.UUID, instrument string) (*models.TestResult, error)

	// ListResultsByUser returns all of a user's results, newest first
	ListResultsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestResult, error)
}
