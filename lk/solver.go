// Package lk — the multi-trial driver.
//
// A Solver owns the candidate table, the single seeded RNG, and the
// incumbent best tour shared between the start-tour generator (edge
// biasing) and the search (first-broken-edge rule). The incumbent is only
// updated between trials, never during an ImproveTour call.
//
// Concurrency: the solver is single-threaded by design. CandidateEdges is
// immutable after construction and the Problem oracle must tolerate
// concurrent reads, so independent solvers may run in parallel on the
// same problem; one Solver must not.
package lk

import (
	"context"
	"math/rand"
)

// Solver runs Lin–Kernighan trials against a problem.
type Solver struct {
	problem    Problem
	candidates CandidateEdges
	opts       Options
	rng        *rand.Rand

	best       *ArrayTour // incumbent best tour; nil before the first trial completes
	bestLength int64

	// Scratch reused across trials.
	search    lkSearch
	remaining []int
	pos       []int
	classA    []int
	classB    []int
	genOrder  []int
}

// New creates a solver for a problem and a prebuilt candidate table.
//
// Contracts:
//   - p.Dimension() ≥ 2, else ErrDimension.
//   - The candidate table's dimension must match the problem's.
//
// Complexity: O(n) setup.
func New(p Problem, ce CandidateEdges, opts Options) (*Solver, error) {
	if p == nil {
		return nil, ErrDimension
	}
	n := p.Dimension()
	if n < 2 {
		return nil, ErrDimension
	}
	if ce.Dimension() != n {
		return nil, ErrDimension
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	return &Solver{
		problem:    p,
		candidates: ce,
		opts:       o,
		rng:        rngFromSeed(o.Seed),
		remaining:  make([]int, 0, n),
		pos:        make([]int, n),
		classA:     make([]int, 0, n),
		classB:     make([]int, 0, n),
		genOrder:   make([]int, n),
	}, nil
}

// FindBestTour runs up to trials restart trials and returns the shortest
// tour found. See FindBestTourContext for the full contract.
func (s *Solver) FindBestTour(trials int, optimum int64, acceptableError float64) (*ArrayTour, error) {
	return s.FindBestTourContext(context.Background(), trials, optimum, acceptableError)
}

// FindBestTourContext runs up to trials restart trials: each generates a
// randomized start tour, improves it to a Lin–Kernighan local optimum,
// and keeps it when strictly shorter than the incumbent. Trials stop
// early once the incumbent is within acceptableError of a known optimum
// (optimum ≤ 0 means unknown and disables the early stop).
//
// The context is checked between trials; on cancellation the incumbent so
// far is returned together with the context error. ImproveTour itself is
// not interruptible.
//
// Errors: ErrBadTrials for trials < 1; ErrExchangeBroken (fatal) if the
// tour implementation breaks under a checked exchange.
func (s *Solver) FindBestTourContext(ctx context.Context, trials int, optimum int64, acceptableError float64) (*ArrayTour, error) {
	if trials < 1 {
		return nil, ErrBadTrials
	}

	var (
		trial    int   // 1-based trial counter
		startLen int64 // length of the generated start tour
		length   int64 // length after improvement
	)
	for trial = 1; trial <= trials; trial++ {
		if err := ctx.Err(); err != nil {
			return s.best, err
		}

		start, err := s.GenerateRandomTour()
		if err != nil {
			return nil, err
		}
		startLen = Length(s.problem, start)

		improved, err := s.ImproveTour(start)
		if err != nil {
			return nil, err
		}
		length = Length(s.problem, improved)

		if s.best == nil || length < s.bestLength {
			s.best = improved
			s.bestLength = length
		}

		if lg := s.opts.Logger; lg != nil {
			lg.Info("trial finished",
				"trial", trial,
				"start", startLen,
				"improved", length,
				"best", s.bestLength,
			)
		}

		if optimum > 0 && float64(s.bestLength) <= (1+acceptableError)*float64(optimum) {
			break
		}
	}

	return s.best, nil
}

// BestLength returns the incumbent tour length, valid once FindBestTour
// has completed at least one trial.
func (s *Solver) BestLength() int64 { return s.bestLength }
