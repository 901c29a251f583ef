package demo

import (
	"math/rand"
	"sync"
)

// Rand is the source of randomness for the demo endpoints. Handlers own an
// explicit, seedable source instead of drawing from package-global state,
// so tests can inject deterministic sequences.
type Rand interface {
	// Float64 returns a uniform draw in [0.0, 1.0).
	Float64() float64

	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
}

// lockedRand guards a math/rand source. Fiber serves requests concurrently
// and *rand.Rand is not safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand creates a concurrency-safe Rand seeded with the given value.
func NewRand(seed int64) Rand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
