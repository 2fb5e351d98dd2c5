package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dealgame/internal/config"
	"github.com/KirkDiggler/dealgame/internal/models"
	highScoreRepo "github.com/KirkDiggler/dealgame/internal/repositories/high_score"
)

func TestOpenHighScoreRepo(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	testCases := map[string]*config.StorageConfig{
		"file":   {Backend: config.StorageFile, Path: filepath.Join(dir, "highscore.txt")},
		"sqlite": {Backend: config.StorageSQLite, Path: filepath.Join(dir, "dealgame.db")},
		"redis":  {Backend: config.StorageRedis, RedisAddr: mr.Addr(), RedisPrefix: "test:"},
	}

	for name, storage := range testCases {
		t.Run(name, func(t *testing.T) {
			repo, closeRepo, err := openHighScoreRepo(storage)
			require.NoError(t, err)
			defer closeRepo()

			_, err = repo.GetHighScore(context.Background())
			assert.ErrorIs(t, err, highScoreRepo.ErrHighScoreNotFound)

			err = repo.SaveHighScore(context.Background(), &highScoreRepo.SaveHighScoreInput{
				HighScore: &models.HighScore{Value: 200},
			})
			require.NoError(t, err)

			highScore, err := repo.GetHighScore(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200.0, highScore.Value)
		})
	}
}

func TestOpenHighScoreRepo_UnknownBackend(t *testing.T) {
	_, _, err := openHighScoreRepo(&config.StorageConfig{Backend: "tape"})
	assert.Error(t, err)
}

func TestOpenHighScoreRepo_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := openHighScoreRepo(&config.StorageConfig{Backend: config.StorageRedis, RedisAddr: addr})
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
