package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/dealgame/internal/common/clock"
	"github.com/KirkDiggler/dealgame/internal/common/uuid"
	"github.com/KirkDiggler/dealgame/internal/config"
	"github.com/KirkDiggler/dealgame/internal/handlers/console"
	"github.com/KirkDiggler/dealgame/internal/models"
	"github.com/KirkDiggler/dealgame/internal/random"
	highScoreRepo "github.com/KirkDiggler/dealgame/internal/repositories/high_score"
	"github.com/KirkDiggler/dealgame/internal/services/game"
	"github.com/KirkDiggler/dealgame/internal/services/messaging"
)

// PlayCmd plays one game on stdin/stdout
type PlayCmd struct {
	NoShuffle   bool   `help:"Keep boxes in configured order (for testing)"`
	Seed        int64  `help:"Seed for the shuffle, 0 seeds from the clock"`
	ShuffleMode string `help:"Shuffle algorithm: uniform or swap"`
}

// HighScoreCmd groups the high score commands
type HighScoreCmd struct {
	Show  ShowHighScoreCmd  `cmd:"" default:"1" help:"Show the stored high score"`
	Reset ResetHighScoreCmd `cmd:"" help:"Reset the stored high score to zero"`
}

// ShowHighScoreCmd prints the stored high score
type ShowHighScoreCmd struct{}

// ResetHighScoreCmd overwrites the stored high score with zero
type ResetHighScoreCmd struct{}

// loadConfig reads the configuration shared by every command
func loadConfig(cli *CLI) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	if err := config.LoadEnv(cfg, cli.EnvFile); err != nil {
		return nil, zerolog.Nop(), err
	}

	if cli.Debug {
		cfg.Log.Debug = true
	}
	if cli.JSONLogs {
		cfg.Log.JSON = true
	}

	return cfg, setupLogger(cfg.Log.Debug, cfg.Log.JSON), nil
}

func (p *PlayCmd) Run(cli *CLI) error {
	cfg, logger, err := loadConfig(cli)
	if err != nil {
		return err
	}

	if p.NoShuffle {
		cfg.Game.Shuffle = false
	}
	if p.Seed != 0 {
		cfg.Game.Seed = p.Seed
	}
	if p.ShuffleMode != "" {
		cfg.Game.ShuffleMode = p.ShuffleMode
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	repo, closeRepo, err := openHighScoreRepo(&cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Warn().Err(err).Msg("failed to close high score storage")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt falls through to the default handler and exits
	context.AfterFunc(ctx, stop)

	rng := random.New(&random.Config{Seed: cfg.Game.Seed})

	svc, err := game.New(ctx, &game.Config{
		BoxValues:      cfg.Game.BoxValues,
		BoxesPerRound:  cfg.Game.BoxesPerRound,
		NumRounds:      cfg.Game.NumRounds,
		ShuffleEnabled: cfg.Game.Shuffle,
		ShuffleMode:    game.ShuffleMode(cfg.Game.ShuffleMode),
		ShuffleSwaps:   cfg.Game.ShuffleSwaps,
		HighScoreRepo:  repo,
		Random:         rng,
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
		Logger:         &logger,
	})
	if err != nil {
		if errors.Is(err, game.ErrCorruptHighScoreData) {
			return fmt.Errorf("%w (fix or remove the stored high score to continue)", err)
		}
		return fmt.Errorf("failed to start game: %w", err)
	}

	messages, err := messaging.New(&messaging.Config{
		Random: rng,
	})
	if err != nil {
		return err
	}

	c, err := console.New(&console.Config{
		In:       os.Stdin,
		Out:      os.Stdout,
		Game:     svc,
		Messages: messages,
		Logger:   &logger,
	})
	if err != nil {
		return err
	}

	_, err = c.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nGame abandoned.")
		return nil
	}
	return err
}

// openStorage loads the configuration and opens the high score repository
func openStorage(cli *CLI) (highScoreRepo.Repository, func() error, zerolog.Logger, error) {
	cfg, logger, err := loadConfig(cli)
	if err != nil {
		return nil, nil, logger, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, logger, fmt.Errorf("invalid configuration: %w", err)
	}

	repo, closeRepo, err := openHighScoreRepo(&cfg.Storage)
	if err != nil {
		return nil, nil, logger, err
	}
	return repo, closeRepo, logger, nil
}

func (h *ShowHighScoreCmd) Run(cli *CLI) error {
	repo, closeRepo, _, err := openStorage(cli)
	if err != nil {
		return err
	}
	defer closeRepo()

	highScore, err := repo.GetHighScore(context.Background())
	if err != nil {
		if errors.Is(err, highScoreRepo.ErrHighScoreNotFound) {
			fmt.Println("No high score yet.")
			return nil
		}
		return err
	}

	fmt.Println(formatHighScore(highScore))
	return nil
}

// formatHighScore renders a stored high score with two decimals and its age
func formatHighScore(highScore *models.HighScore) string {
	text := "High score: $" + humanize.FormatFloat("#,###.##", highScore.Value)
	if !highScore.AchievedAt.IsZero() {
		text += fmt.Sprintf(" (set %s)", humanize.Time(highScore.AchievedAt))
	}
	return text
}

func (r *ResetHighScoreCmd) Run(cli *CLI) error {
	repo, closeRepo, logger, err := openStorage(cli)
	if err != nil {
		return err
	}
	defer closeRepo()

	err = repo.SaveHighScore(context.Background(), &highScoreRepo.SaveHighScoreInput{
		HighScore: &models.HighScore{
			Value:      0,
			AchievedAt: clock.New().Now(),
		},
	})
	if err != nil {
		return err
	}

	logger.Info().Msg("high score reset")
	fmt.Println("High score reset.")
	return nil
}
