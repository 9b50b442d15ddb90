// Package entropy isolates every stochastic decision in the generation
// pipeline behind a small Source interface, so a test harness can substitute
// a seeded or fully pinned source. An optional true-randomness client backed
// by random.org is provided for runs that want it.
package entropy

import "math/rand"

// Source supplies the randomness consumed by archetype selection, rotation
// draws, the extractor's tie-break coin, and supply sampling.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
	// Coin returns a fair boolean.
	Coin() bool
}

// Seeded is a deterministic Source backed by math/rand.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic source from the given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) Intn(n int) int   { return s.rng.Intn(n) }
func (s *Seeded) Float64() float64 { return s.rng.Float64() }
func (s *Seeded) Coin() bool       { return s.rng.Intn(2) == 0 }
