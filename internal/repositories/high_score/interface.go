package high_score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dealgame/internal/repositories/high_score Repository

import (
	"context"

	"github.com/KirkDiggler/dealgame/internal/models"
)

// Repository defines the interface for high score persistence
type Repository interface {
	// GetHighScore retrieves the stored high score.
	// Returns ErrHighScoreNotFound when nothing has been stored yet and
	// ErrCorruptData when the stored value is not a non-negative number.
	GetHighScore(ctx context.Context) (*models.HighScore, error)

	// SaveHighScore overwrites the stored high score.
	// Failures are reported as ErrWriteFailure.
	SaveHighScore(ctx context.Context, input *SaveHighScoreInput) error
}
