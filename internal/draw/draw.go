package draw

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sampler.go github.com/KirkDiggler/pugbot/internal/draw Sampler

// ErrNotEnoughCandidates is returned when fewer candidates than requested are given
var ErrNotEnoughCandidates = errors.New("not enough candidates to draw from")

// Sampler picks n distinct candidates uniformly at random
type Sampler interface {
	Sample(candidates []string, n int) ([]string, error)
}

// Drawer draws without replacement using math/rand
type Drawer struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the drawer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new drawer
func New(cfg *Config) *Drawer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Drawer{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Sample returns n distinct candidates. The input is sorted first so the
// same seed always yields the same draw regardless of caller ordering.
func (d *Drawer) Sample(candidates []string, n int) ([]string, error) {
	if n < 0 || len(candidates) < n {
		return nil, ErrNotEnoughCandidates
	}

	pool := make([]string, len(candidates))
	copy(pool, candidates)
	sort.Strings(pool)

	d.mu.Lock()
	defer d.mu.Unlock()

	// Partial Fisher-Yates: the first n slots end up holding the draw
	for i := 0; i < n; i++ {
		j := i + d.random.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n], nil
}
