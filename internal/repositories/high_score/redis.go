package high_score

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dealgame/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Keys for Redis, relative to the configured prefix
	valueKey = "high_score:value"
	metaKey  = "high_score:meta"

	metaSessionID  = "session_id"
	metaAchievedAt = "achieved_at"
)

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed high score repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		prefix: cfg.KeyPrefix,
	}, nil
}

// GetHighScore retrieves the high score from Redis
func (r *redisRepository) GetHighScore(ctx context.Context) (*models.HighScore, error) {
	raw, err := r.client.Get(ctx, r.prefix+valueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrHighScoreNotFound
		}
		return nil, fmt.Errorf("failed to get high score: %w", err)
	}

	value, err := parseScore(raw)
	if err != nil {
		return nil, err
	}

	meta, err := r.client.HGetAll(ctx, r.prefix+metaKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get high score metadata: %w", err)
	}

	highScore := &models.HighScore{
		Value:     value,
		SessionID: meta[metaSessionID],
	}

	// Metadata is informational; an unreadable timestamp is left as zero
	if at, err := time.Parse(time.RFC3339Nano, meta[metaAchievedAt]); err == nil {
		highScore.AchievedAt = at
	}

	return highScore, nil
}

// SaveHighScore persists the high score and its metadata in one transaction
func (r *redisRepository) SaveHighScore(ctx context.Context, input *SaveHighScoreInput) error {
	if input == nil || input.HighScore == nil {
		return ErrNilHighScore
	}

	highScore := input.HighScore
	if err := checkScore(highScore.Value); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	achievedAt := ""
	if !highScore.AchievedAt.IsZero() {
		achievedAt = highScore.AchievedAt.UTC().Format(time.RFC3339Nano)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.prefix+valueKey, formatScore(highScore.Value), 0)
	pipe.Del(ctx, r.prefix+metaKey)
	pipe.HSet(ctx, r.prefix+metaKey,
		metaSessionID, highScore.SessionID,
		metaAchievedAt, achievedAt,
	)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	return nil
}
