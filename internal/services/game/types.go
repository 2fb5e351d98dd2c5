package game

import (
	"github.com/KirkDiggler/dealgame/internal/common/clock"
	"github.com/KirkDiggler/dealgame/internal/common/uuid"
	"github.com/KirkDiggler/dealgame/internal/random"
	highScoreRepo "github.com/KirkDiggler/dealgame/internal/repositories/high_score"
	"github.com/rs/zerolog"
)

// ShuffleMode selects how boxes are arranged before play
type ShuffleMode string

const (
	// ShuffleModeUniform arranges boxes in a uniformly random permutation
	ShuffleModeUniform ShuffleMode = "uniform"

	// ShuffleModeSwap performs ShuffleSwaps random pairwise swaps, matching
	// historical game traces
	ShuffleModeSwap ShuffleMode = "swap"
)

// Config holds configuration for a game session
type Config struct {
	// BoxValues are the monetary amounts, box i holds BoxValues[i] before shuffling
	BoxValues []float64

	// BoxesPerRound[r-1] is the number of boxes opened in round r
	BoxesPerRound []int

	// NumRounds is the number of rounds in the game
	NumRounds int

	// ShuffleEnabled turns shuffling off for deterministic games
	ShuffleEnabled bool

	// ShuffleMode defaults to ShuffleModeUniform
	ShuffleMode ShuffleMode

	// ShuffleSwaps is the number of swaps used by ShuffleModeSwap
	ShuffleSwaps int

	// Repository dependencies
	HighScoreRepo highScoreRepo.Repository

	// Service dependencies
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional, nothing is logged when nil
	Logger *zerolog.Logger
}
