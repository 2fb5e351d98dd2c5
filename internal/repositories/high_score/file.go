package high_score

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/dealgame/internal/models"
)

// fileRepository stores the high score as a single number in a text file.
// Session metadata is not kept in this format.
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed high score repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// GetHighScore reads the high score from the file
func (r *fileRepository) GetHighScore(ctx context.Context) (*models.HighScore, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrHighScoreNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	value, err := parseScore(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	return &models.HighScore{
		Value: value,
	}, nil
}

// SaveHighScore replaces the file content with the new high score
func (r *fileRepository) SaveHighScore(ctx context.Context, input *SaveHighScoreInput) error {
	if input == nil || input.HighScore == nil {
		return ErrNilHighScore
	}

	if err := checkScore(input.HighScore.Value); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	// Write next to the target and rename so a failed write never leaves a
	// truncated score behind
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(formatScore(input.HighScore.Value) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	return nil
}
