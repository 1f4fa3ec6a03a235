package ports

import (
	"context"

	"psychoscore/domain/scoring"
)

// ProfileExporter renders a user's assembled profile to an external format.
type ProfileExporter interface {
	// Export writes the profile and returns the produced artifact bytes.
	Export(ctx context.Context, userName string, results []scoring.Result) ([]byte, error)
}
