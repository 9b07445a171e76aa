// Package rng provides the seeded, swappable pseudo-random source shared
// by every player in mcts. Keeping it behind a small interface — rather
// than threading *rand.Rand everywhere — lets callers substitute a
// deterministic stub in tests, the same shape skybrian-Gongo's Randomness
// interface gives its robot package.
package rng

import "golang.org/x/exp/rand"

// Source is the random surface every player depends on.
type Source interface {
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

type source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed: the same seed
// always produces the same move sequence.
func New(seed uint64) Source {
	return &source{r: rand.New(rand.NewSource(seed))}
}

// NewFromHalves combines two 32-bit halves into the 64-bit seed handed to
// New. This is the split representation a host UI passes across a
// narrower numeric boundary (e.g. two JavaScript-safe 32-bit integers).
func NewFromHalves(low, high uint32) Source {
	return New(uint64(low) | (uint64(high) << 32))
}

func (s *source) Intn(n int) int {
	return s.r.Intn(n)
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}
