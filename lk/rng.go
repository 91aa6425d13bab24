// Package lk — deterministic random generation.
//
// One RNG per solver, created at construction time and threaded through
// every random decision (start vertex, class picks during tour
// generation). Same seed ⇒ identical tours across platforms. No
// time-based sources anywhere.
//
// math/rand.Rand is not goroutine-safe; the solver is single-threaded, so
// the RNG is never shared.
package lk

import "math/rand"

// defaultSeed is the fixed seed substituted when Options.Seed == 0, so the
// zero value of Options is still fully reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// pickOne returns a uniformly random element of a non-empty slice.
//
// Complexity: O(1).
func pickOne(rng *rand.Rand, elems []int) int {
	return elems[rng.Intn(len(elems))]
}
