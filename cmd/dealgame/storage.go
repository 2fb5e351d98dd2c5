package main

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dealgame/internal/config"
	highScoreRepo "github.com/KirkDiggler/dealgame/internal/repositories/high_score"
)

// openHighScoreRepo builds the configured high score repository. The returned
// close function releases its connection.
func openHighScoreRepo(cfg *config.StorageConfig) (highScoreRepo.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.StorageFile:
		repo, err := highScoreRepo.NewFile(&highScoreRepo.FileConfig{
			Path: cfg.Path,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, noop, nil

	case config.StorageSQLite:
		repo, err := highScoreRepo.NewSQLite(&highScoreRepo.SQLiteConfig{
			Path: cfg.Path,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          0,
			DialTimeout: 5 * time.Second,
		})

		repo, err := highScoreRepo.NewRedis(&highScoreRepo.Config{
			RedisClient: client,
			KeyPrefix:   cfg.RedisPrefix,
		})
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to open Redis high score storage: %w", err)
		}
		return repo, client.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
