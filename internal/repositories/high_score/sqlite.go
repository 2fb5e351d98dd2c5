package high_score

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dealgame/internal/models"
	_ "modernc.org/sqlite"
)

// sqliteRepository keeps the high score in a single-row SQLite table
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database and migrates it
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := &sqliteRepository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

// Close closes the database connection
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func (r *sqliteRepository) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS high_score (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value REAL NOT NULL,
		session_id TEXT NOT NULL DEFAULT '',
		achieved_at TEXT NOT NULL DEFAULT ''
	)`)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// GetHighScore reads the stored high score
func (r *sqliteRepository) GetHighScore(ctx context.Context) (*models.HighScore, error) {
	var (
		value      sql.NullFloat64
		sessionID  string
		achievedAt string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT value, session_id, achieved_at FROM high_score WHERE id = 1`,
	).Scan(&value, &sessionID, &achievedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHighScoreNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	if !value.Valid {
		return nil, fmt.Errorf("%w: null value", ErrCorruptData)
	}

	if err := checkScore(value.Float64); err != nil {
		return nil, err
	}

	highScore := &models.HighScore{
		Value:     value.Float64,
		SessionID: sessionID,
	}

	if at, err := time.Parse(time.RFC3339Nano, achievedAt); err == nil {
		highScore.AchievedAt = at
	}

	return highScore, nil
}

// SaveHighScore upserts the single high score row
func (r *sqliteRepository) SaveHighScore(ctx context.Context, input *SaveHighScoreInput) error {
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

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO high_score (id, value, session_id, achieved_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			value = excluded.value,
			session_id = excluded.session_id,
			achieved_at = excluded.achieved_at`,
		highScore.Value, highScore.SessionID, achievedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	return nil
}
