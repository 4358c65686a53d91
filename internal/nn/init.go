package nn

import "math/rand/v2"

// NewRand creates a deterministic source for parameter initialization.
//
// Every constructor in this package takes its randomness from an explicit
// *rand.Rand, so a fixed seed reproduces the same network.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform draws a value from U[lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
