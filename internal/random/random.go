package random

import (
	"math/rand/v2"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/dealgame/internal/random Source

// Source provides the randomness used to arrange boxes before play
type Source interface {
	// IntN returns a uniformly random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// Config for the random source
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// Rand is a Source backed by a PCG generator
type Rand struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	u := uint64(seed)
	return &Rand{
		random: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))),
	}
}

// IntN returns a uniformly random int in [0, n)
func (r *Rand) IntN(n int) int {
	return r.random.IntN(n)
}

// mix spreads a single seed across the 64-bit PCG state
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
