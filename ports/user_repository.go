package ports

import (
	"context"

	"psychoscore/models"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetUserByID retrieves a user by their ID
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// CreateUser creates a new user
	CreateUser(ctx context.Context, user *models.User) error

	// ListUsers returns all users
	ListUsers(ctx context.Context) ([]*models.User, error)
}
