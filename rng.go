package sirsim

import "math/rand"

// RNG is the pseudo-random source consumed by every distribution sampler in
// the simulation. It is always injected, never read from process-global
// state, so that independent trajectories stay independent when run in
// parallel (see Orchestrator).
type RNG interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}

// mathRNG adapts *rand.Rand to the RNG interface.
type mathRNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded with seed. Two RNGs created with the same
// seed produce identical sequences (P5, determinism).
func NewRNG(seed int64) RNG {
	return &mathRNG{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRNG) Float64() float64 { return m.r.Float64() }
func (m *mathRNG) Intn(n int) int   { return m.r.Intn(n) }
