// Package random provides the uniform random source used for team assignment.
package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/atharrell/LoL-Game-Queue-Bot/internal/random Source

// Source produces uniformly distributed integers
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Config for the default source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Roller is a goroutine-safe Source shared by every guild
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniformly distributed value in [0, n)
func (r *Roller) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}
