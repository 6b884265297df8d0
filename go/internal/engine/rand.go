package engine

import "math/rand"

// Rand is the random source every simulation draw goes through. Injecting it
// keeps game outcomes reproducible under a fixed seed.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntBetween returns a uniform integer draw in [lo, hi], inclusive on both ends.
	IntBetween(lo, hi int) int
}

type seededRand struct {
	rnd *rand.Rand
}

// NewRand returns a Rand backed by math/rand with the given seed. It is not
// safe for concurrent use; give each in-flight game its own source.
func NewRand(seed int64) Rand {
	return &seededRand{rnd: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) Float64() float64 {
	return s.rnd.Float64()
}

func (s *seededRand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rnd.Intn(hi-lo+1)
}
