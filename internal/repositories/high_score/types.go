package high_score

import (
	"github.com/KirkDiggler/dealgame/internal/models"
	"github.com/redis/go-redis/v9"
)

// SaveHighScoreInput contains parameters for saving a high score
type SaveHighScoreInput struct {
	HighScore *models.HighScore
}

// Config holds configuration for the Redis high score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces the keys, e.g. "dealgame:"
	KeyPrefix string
}

// FileConfig holds configuration for the text file high score repository
type FileConfig struct {
	// Path of the file holding the score, e.g. "highscore.txt"
	Path string
}

// SQLiteConfig holds configuration for the SQLite high score repository
type SQLiteConfig struct {
	// Path of the database file, ":memory:" is not supported since each
	// pooled connection would see its own database
	Path string
}
