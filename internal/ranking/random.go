package ranking

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource draws floats in [0, 1). Implementations must be safe for concurrent use.
type RandomSource interface {
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a seeded source. A zero seed picks one from the clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // ranking jitter, not crypto
	}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// ZeroSource always returns 0, which turns every jitter term off.
type ZeroSource struct{}

func (ZeroSource) Float64() float64 { return 0 }

// FixedSource always returns the same draw.
type FixedSource float64

func (f FixedSource) Float64() float64 { return float64(f) }

// Jitter returns a draw in [0, max). Non-positive max disables it.
func Jitter(src RandomSource, max float64) float64 {
	if max <= 0 || src == nil {
		return 0
	}
	v := src.Float64()
	if v < 0 || v >= 1 {
		v = 0
	}
	return v * max
}
