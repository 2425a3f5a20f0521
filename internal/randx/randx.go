// Package randx defines the random source injected into candidate
// generation and probe pacing, so both can be made deterministic in tests.
package randx

import (
	"math/rand/v2"
)

// Rand is the random capability the rest of the tree depends on.
// Implementations must be safe for use from a single goroutine; callers
// that share a Rand across goroutines synchronize externally.
type Rand interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Uniform returns a uniform float64 in [lo, hi).
	Uniform(lo, hi float64) float64

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// Choice returns a uniformly drawn element of s. It panics if s is empty.
func Choice[T any](r Rand, s []T) T {
	return s[r.IntN(len(s))]
}

// Chance returns true with probability 1/n. Used for the generator's
// "one in three" and "one in two" style draws.
func Chance(r Rand, n int) bool {
	return r.IntN(n) == 0
}

type source struct {
	r *rand.Rand
}

// New returns a deterministic Rand seeded with the given values.
// Two sources created with the same seeds produce identical draws.
func New(seed1, seed2 uint64) Rand {
	return &source{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewSource returns an automatically seeded Rand for production use.
func NewSource() Rand {
	return &source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *source) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *source) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

func (s *source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
