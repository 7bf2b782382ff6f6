// Package prng centralizes deterministic pseudo-random number generation
// for the hunter. Every subsystem that needs randomness (layout
// generation, the genetic architect, parallel ensemble fan-out) derives
// its generators from here so that a single top-level seed makes the
// whole decision pipeline reproducible, including across goroutines.
package prng

import "math/rand/v2"

// New returns a PRNG deterministically seeded from seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Derive produces an independent sub-seed for worker index i, so that
// concurrent workers each get their own generator without sharing state
// or a lock, while the overall result stays a pure function of seed and
// worker count — never of goroutine scheduling order.
func Derive(seed uint64, i int) uint64 {
	x := seed + uint64(i+1)*0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}
