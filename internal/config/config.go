// Package config loads the game setup and storage settings.
//
// Defaults describe the reference game. A YAML file can override any field
// and environment variables (optionally read from a .env file) override the
// storage and logging settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dealgame/internal/models"
)

// Storage backends for the high score
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Environment variables read by LoadEnv
const (
	EnvStorage       = "DEALGAME_STORAGE"
	EnvHighScorePath = "DEALGAME_HIGH_SCORE_PATH"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvSeed          = "DEALGAME_SEED"
	EnvDebug         = "DEALGAME_DEBUG"
)

// Config is the complete application configuration
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig describes the boxes and rounds of a game
type GameConfig struct {
	BoxValues     []float64 `yaml:"box_values"`
	BoxesPerRound []int     `yaml:"boxes_per_round"`
	NumRounds     int       `yaml:"num_rounds"`
	Shuffle       bool      `yaml:"shuffle"`
	ShuffleMode   string    `yaml:"shuffle_mode"`
	ShuffleSwaps  int       `yaml:"shuffle_swaps"`

	// Seed makes the shuffle reproducible, 0 seeds from the clock
	Seed int64 `yaml:"seed"`
}

// StorageConfig selects where the high score lives
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	Path          string `yaml:"path"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisPrefix   string `yaml:"redis_prefix"`
}

// LogConfig controls logging output
type LogConfig struct {
	Debug bool `yaml:"debug"`
	JSON  bool `yaml:"json"`
}

// Default returns the reference game stored in highscore.txt
func Default() *Config {
	return &Config{
		Game: GameConfig{
			BoxValues:     append([]float64(nil), models.DefaultBoxValues...),
			BoxesPerRound: append([]int(nil), models.DefaultBoxesPerRound...),
			NumRounds:     models.DefaultNumRounds,
			Shuffle:       true,
			ShuffleMode:   "uniform",
			ShuffleSwaps:  models.DefaultShuffleSwaps,
		},
		Storage: StorageConfig{
			Backend:   StorageFile,
			Path:      "highscore.txt",
			RedisAddr: "localhost:6379",
		},
	}
}

// Load returns the defaults overridden by the YAML file at path, if path is not empty
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// LoadEnv reads envFile into the environment when it exists and applies the
// environment overrides to cfg
func LoadEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv(EnvHighScorePath); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		cfg.Storage.RedisPassword = v
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		cfg.Game.Seed = seed
	}

	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvDebug, err)
		}
		cfg.Log.Debug = debug
	}

	return nil
}

// Validate checks the settings the game engine does not check itself
func (c *Config) Validate() error {
	if c.Game.NumRounds < 1 {
		return fmt.Errorf("num_rounds must be positive, got %d", c.Game.NumRounds)
	}

	if len(c.Game.BoxValues) < 2 {
		return fmt.Errorf("at least two box values are needed, got %d", len(c.Game.BoxValues))
	}

	switch c.Game.ShuffleMode {
	case "uniform", "swap":
	default:
		return fmt.Errorf("shuffle_mode must be uniform or swap, got %q", c.Game.ShuffleMode)
	}

	switch c.Storage.Backend {
	case StorageFile, StorageSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage path is required for the %s backend", c.Storage.Backend)
		}
	case StorageRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New("redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	return nil
}
