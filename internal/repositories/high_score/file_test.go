package high_score

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/dealgame/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileRepo(t *testing.T) (*fileRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "highscore.txt")
	repo, err := NewFile(&FileConfig{Path: path})
	require.NoError(t, err)

	return repo, path
}

func TestNewFile_InvalidConfig(t *testing.T) {
	_, err := NewFile(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = NewFile(&FileConfig{})
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestFile_MissingFile(t *testing.T) {
	repo, _ := newTestFileRepo(t)

	_, err := repo.GetHighScore(context.Background())
	assert.ErrorIs(t, err, ErrHighScoreNotFound)
}

func TestFile_SaveAndGet(t *testing.T) {
	repo, path := newTestFileRepo(t)

	err := repo.SaveHighScore(context.Background(), &SaveHighScoreInput{
		HighScore: &models.HighScore{Value: 75000, SessionID: "ignored"},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "75000\n", string(content))

	highScore, err := repo.GetHighScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75000.0, highScore.Value)
	assert.Empty(t, highScore.SessionID)
}

func TestFile_ReadsLegacyFormat(t *testing.T) {
	repo, path := newTestFileRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("13147.753884615382"), 0o644))

	highScore, err := repo.GetHighScore(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 13147.7538846, highScore.Value, 1e-6)
}

func TestFile_Corrupt(t *testing.T) {
	for name, content := range map[string]string{
		"empty":      "",
		"text":       "one million",
		"two values": "10 20",
		"negative":   "-3",
		"nan":        "NaN",
	} {
		t.Run(name, func(t *testing.T) {
			repo, path := newTestFileRepo(t)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := repo.GetHighScore(context.Background())
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestFile_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "highscore.txt")
	repo, err := NewFile(&FileConfig{Path: path})
	require.NoError(t, err)

	err = repo.SaveHighScore(context.Background(), &SaveHighScoreInput{
		HighScore: &models.HighScore{Value: 1},
	})
	assert.ErrorIs(t, err, ErrWriteFailure)
}

func TestFile_RejectsNegativeScore(t *testing.T) {
	repo, path := newTestFileRepo(t)

	err := repo.SaveHighScore(context.Background(), &SaveHighScoreInput{
		HighScore: &models.HighScore{Value: -1},
	})
	assert.ErrorIs(t, err, ErrWriteFailure)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
