package high_score

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RepositoryError is a custom error type for high score storage errors
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrHighScoreNotFound RepositoryError = "high score not found"
	ErrCorruptData       RepositoryError = "stored high score is not a non-negative number"
	ErrWriteFailure      RepositoryError = "failed to write high score"
	ErrNilConfig         RepositoryError = "config cannot be nil"
	ErrNilHighScore      RepositoryError = "input and high score cannot be nil"
	ErrEmptyPath         RepositoryError = "path cannot be empty"
	ErrNilRedisClient    RepositoryError = "redis client cannot be nil"
)

// parseScore parses stored content that must hold exactly one non-negative number
func parseScore(content string) (float64, error) {
	fields := strings.Fields(content)
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: expected one value, found %d", ErrCorruptData, len(fields))
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorruptData, fields[0])
	}

	if err := checkScore(value); err != nil {
		return 0, err
	}

	return value, nil
}

func checkScore(value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrCorruptData, value)
	}
	return nil
}

func formatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
