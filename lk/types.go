// Package lk — contracts and sentinel errors.
//
// This file defines the external collaborators of the solver (the distance
// oracle and the mutable tour) and the strict sentinels returned by every
// entry point. Policy: no fmt.Errorf in hot paths; callers match with
// errors.Is.
package lk

import "errors"

var (
	// ErrDimension is returned when a problem or candidate table has an
	// unusable dimension (zero, negative, or mismatched).
	ErrDimension = errors.New("lk: invalid dimension")

	// ErrBadK is returned when a neighbor-based candidate strategy is asked
	// for k outside [1, n-1].
	ErrBadK = errors.New("lk: neighbor count k out of range")

	// ErrUnknownStrategy is returned for a CandidateStrategy value this
	// package does not know.
	ErrUnknownStrategy = errors.New("lk: unknown candidate strategy")

	// ErrBadTrials is returned when FindBestTour is called with fewer than
	// one trial.
	ErrBadTrials = errors.New("lk: number of trials must be at least 1")

	// ErrNotPermutation is returned when a vertex order is not a permutation
	// of {0..n-1}.
	ErrNotPermutation = errors.New("lk: order is not a permutation of the vertex set")

	// ErrExchangeBroken is returned when applying an edge exchange produced
	// a non-Hamiltonian result even though the feasibility check passed.
	// It indicates a bug in the Tour implementation, not bad user input.
	ErrExchangeBroken = errors.New("lk: exchange broke the tour")

	// ErrBadOptions is returned for internally inconsistent Options.
	ErrBadOptions = errors.New("lk: invalid options")
)

// Problem is the distance oracle the solver runs against.
//
// Contract:
//   - Dimension() is the number of vertices n; vertices are 0..n-1.
//   - Dist is symmetric, nonnegative, and Dist(v, v) == 0.
//   - Implementations must be safe for concurrent reads.
type Problem interface {
	// Dimension returns the number of vertices.
	Dimension() int

	// Dist returns the distance between two vertices.
	Dist(u, v int) int64
}

// Tour is a mutable Hamiltonian cycle over {0..n-1}.
//
// The solver owns the tour it mutates; implementations need not be
// goroutine-safe. Predecessor/Successor disambiguate the two cycle
// neighbors by a fixed orientation that must stay consistent for the
// lifetime of the tour.
type Tour interface {
	// Dimension returns the number of vertices on the cycle.
	Dimension() int

	// Neighbors returns the two vertices adjacent to v on the cycle,
	// in (successor, predecessor) order.
	Neighbors(v int) (int, int)

	// Predecessor returns the neighbor preceding v under the tour's
	// orientation.
	Predecessor(v int) int

	// Successor returns the neighbor following v under the tour's
	// orientation.
	Successor(v int) int

	// ContainsEdge reports whether {u, v} is an edge of the cycle.
	ContainsEdge(u, v int) bool

	// IsTourAfterExchange reports whether exchanging the closed walk's
	// alternating edges yields another Hamiltonian cycle.
	IsTourAfterExchange(closed AlternatingWalk) bool

	// Exchange applies the exchange implied by the closed walk, mutating
	// the tour. Returns ErrExchangeBroken if the result is not a
	// Hamiltonian cycle.
	Exchange(closed AlternatingWalk) error

	// Sequence returns the vertex order along the cycle, starting at an
	// implementation-chosen vertex, without the closing repeat.
	Sequence() []int
}
