// Package lk — solver options.
package lk

import charmlog "github.com/charmbracelet/log"

// Default search depths. The values match the classical parameterization
// of the heuristic and rarely need tuning.
const (
	// DefaultBacktrackingDepth is the highest walk position the search may
	// backtrack to after a failed extension.
	DefaultBacktrackingDepth = 5

	// DefaultInfeasibilityDepth is the highest even walk position at which
	// partial walks may still be infeasible as exchanges (feasibility is
	// not yet checked there).
	DefaultInfeasibilityDepth = 2
)

// Options configures a Solver. The zero value is usable; DefaultOptions
// fills in the canonical depths explicitly.
type Options struct {
	// Seed drives the solver's single RNG. 0 selects a fixed default seed,
	// so runs are reproducible either way.
	Seed int64

	// BacktrackingDepth caps how far back the search may retreat when a
	// candidate set runs empty. 0 means DefaultBacktrackingDepth.
	BacktrackingDepth int

	// InfeasibilityDepth caps the even walk positions at which exchange
	// feasibility is deferred. 0 means DefaultInfeasibilityDepth.
	InfeasibilityDepth int

	// Logger, when non-nil, receives one progress record per trial
	// (start length, improved length, running best). Nil keeps the solver
	// silent; algorithms themselves never log.
	Logger *charmlog.Logger
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{
		Seed:               0,
		BacktrackingDepth:  DefaultBacktrackingDepth,
		InfeasibilityDepth: DefaultInfeasibilityDepth,
	}
}

// normalize substitutes defaults for zero depths and validates the rest.
// Negative depths are rejected with ErrBadOptions.
//
// Complexity: O(1).
func (o Options) normalize() (Options, error) {
	if o.BacktrackingDepth < 0 || o.InfeasibilityDepth < 0 {
		return Options{}, ErrBadOptions
	}
	if o.BacktrackingDepth == 0 {
		o.BacktrackingDepth = DefaultBacktrackingDepth
	}
	if o.InfeasibilityDepth == 0 {
		o.InfeasibilityDepth = DefaultInfeasibilityDepth
	}

	return o, nil
}
