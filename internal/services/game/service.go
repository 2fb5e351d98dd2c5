package game

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/KirkDiggler/dealgame/internal/boxes"
	"github.com/KirkDiggler/dealgame/internal/common/clock"
	"github.com/KirkDiggler/dealgame/internal/models"
	highScoreRepo "github.com/KirkDiggler/dealgame/internal/repositories/high_score"
	"github.com/rs/zerolog"
)

// session implements the Service interface
type session struct {
	id            string
	boxes         *boxes.List
	boxesPerRound []int
	numRounds     int

	playerBoxIndex       int
	hasPlayerChosenBox   bool
	round                int
	boxesOpenedThisRound int
	boxesOpenedTotal     int
	highScore            float64

	highScoreRepo highScoreRepo.Repository
	clock         clock.Clock
	log           zerolog.Logger
}

// New creates a game session: boxes are built and shuffled, the game starts at
// round 1 and the previous high score is loaded from the repository
func New(ctx context.Context, cfg *Config) (*session, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	list, err := boxes.New(cfg.BoxValues)
	if err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	s := &session{
		id:            cfg.UUIDGenerator.NewUUID(),
		boxes:         list,
		boxesPerRound: cfg.BoxesPerRound[:cfg.NumRounds],
		numRounds:     cfg.NumRounds,
		round:         1,
		highScoreRepo: cfg.HighScoreRepo,
		clock:         cfg.Clock,
	}
	s.log = log.With().Str("session_id", s.id).Logger()

	if cfg.ShuffleEnabled {
		switch cfg.ShuffleMode {
		case ShuffleModeSwap:
			list.Shuffle(cfg.Random, cfg.ShuffleSwaps)
		default:
			list.ShuffleUniform(cfg.Random)
		}
	}

	highScore, err := s.loadHighScore(ctx)
	if err != nil {
		return nil, err
	}
	s.highScore = highScore

	s.log.Debug().
		Int("boxes", list.Len()).
		Int("rounds", s.numRounds).
		Bool("shuffled", cfg.ShuffleEnabled).
		Float64("high_score", s.highScore).
		Msg("game session created")

	return s, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	if cfg.HighScoreRepo == nil {
		return ErrNilHighScoreRepo
	}

	if cfg.ShuffleEnabled && cfg.Random == nil {
		return ErrNilRandom
	}

	if cfg.Clock == nil {
		return ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return ErrNilUUIDGenerator
	}

	if cfg.NumRounds < 1 {
		return fmt.Errorf("%w: need at least one round, got %d", ErrInvalidConfig, cfg.NumRounds)
	}

	if len(cfg.BoxesPerRound) < cfg.NumRounds {
		return fmt.Errorf("%w: %d rounds but boxes are only given for %d",
			ErrInvalidConfig, cfg.NumRounds, len(cfg.BoxesPerRound))
	}

	switch cfg.ShuffleMode {
	case "", ShuffleModeUniform, ShuffleModeSwap:
	default:
		return fmt.Errorf("%w: unknown shuffle mode %q", ErrInvalidConfig, cfg.ShuffleMode)
	}

	if cfg.ShuffleSwaps < 0 {
		return fmt.Errorf("%w: negative shuffle swaps", ErrInvalidConfig)
	}

	// The player's box must stay closed, so every round together may open at
	// most all the other boxes
	total := 0
	for r, count := range cfg.BoxesPerRound[:cfg.NumRounds] {
		if count < 0 {
			return fmt.Errorf("%w: round %d opens %d boxes", ErrInvalidConfig, r+1, count)
		}
		total += count
	}

	if total > len(cfg.BoxValues)-1 {
		return fmt.Errorf("%w: rounds open %d boxes but only %d can be opened",
			ErrInvalidConfig, total, len(cfg.BoxValues)-1)
	}

	return nil
}

// loadHighScore treats a missing high score as 0
func (s *session) loadHighScore(ctx context.Context) (float64, error) {
	highScore, err := s.highScoreRepo.GetHighScore(ctx)
	if err != nil {
		if errors.Is(err, highScoreRepo.ErrHighScoreNotFound) {
			return 0, nil
		}
		if errors.Is(err, highScoreRepo.ErrCorruptData) {
			return 0, fmt.Errorf("%w: %w", ErrCorruptHighScoreData, err)
		}
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}

	return highScore.Value, nil
}

// ID returns the session identifier
func (s *session) ID() string {
	return s.id
}

// Status returns where the session is in its lifecycle
func (s *session) Status() models.GameStatus {
	if !s.hasPlayerChosenBox {
		return models.GameStatusAwaitingChoice
	}

	if s.IsFinalRound() && s.IsEndOfRound() {
		return models.GameStatusFinished
	}

	return models.GameStatusRoundInProgress
}

// HighScore returns the best payout known to this session
func (s *session) HighScore() float64 {
	return s.highScore
}

// IsNewHighScore saves value as the high score when it is strictly greater than
// the current one. The in-memory high score only changes once the save succeeds.
func (s *session) IsNewHighScore(ctx context.Context, value float64) (bool, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return false, fmt.Errorf("%w: %v", ErrInvalidValue, value)
	}

	if value <= s.highScore {
		return false, nil
	}

	err := s.highScoreRepo.SaveHighScore(ctx, &highScoreRepo.SaveHighScoreInput{
		HighScore: &models.HighScore{
			Value:      value,
			SessionID:  s.id,
			AchievedAt: s.clock.Now(),
		},
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrHighScoreWriteFailure, err)
	}

	s.log.Debug().
		Float64("previous", s.highScore).
		Float64("high_score", value).
		Msg("new high score")

	s.highScore = value
	return true, nil
}

// String renders the boxes for diagnostics
func (s *session) String() string {
	return s.boxes.String()
}
