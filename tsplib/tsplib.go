// Package tsplib loads symmetric TSPLIB instances into a dense distance
// oracle for the solver.
//
// Supported: TYPE TSP with EDGE_WEIGHT_TYPE EUC_2D, CEIL_2D, ATT, GEO, or
// EXPLICIT (FULL_MATRIX and the triangular row formats). Distances follow
// the TSPLIB reference definitions, including the nearest-integer
// rounding, so lengths match published optima.
//
// All pairwise distances are precomputed into one row-major []int64
// buffer; Dist is a single indexed load, which keeps the solver's hot
// loops free of parsing or float work.
package tsplib

import (
	"errors"

	"github.com/katalvlaran/lkh/lk"
)

var (
	// ErrFormat is returned for malformed instance files. The wrapped
	// message names the offending line or keyword.
	ErrFormat = errors.New("tsplib: malformed instance")

	// ErrUnsupported is returned for well-formed files using features this
	// package does not implement (e.g. asymmetric types).
	ErrUnsupported = errors.New("tsplib: unsupported instance feature")
)

// Instance is a parsed TSPLIB problem. It implements lk.Problem.
type Instance struct {
	// Name is the NAME field, Comment the concatenated COMMENT lines.
	Name    string
	Comment string

	n int
	w []int64 // dense row-major distance matrix
}

var _ lk.Problem = (*Instance)(nil)

// Dimension returns the number of cities.
func (ins *Instance) Dimension() int { return ins.n }

// Dist returns the precomputed distance between two cities.
func (ins *Instance) Dist(u, v int) int64 { return ins.w[u*ins.n+v] }

// NewInstance builds an instance directly from a symmetric distance
// matrix; useful for tests and embedded problems. The matrix must be
// square with n ≥ 2.
func NewInstance(name string, dist [][]int64) (*Instance, error) {
	n := len(dist)
	if n < 2 {
		return nil, ErrFormat
	}

	ins := &Instance{Name: name, n: n, w: make([]int64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrFormat
		}
		for j = 0; j < n; j++ {
			ins.w[i*n+j] = dist[i][j]
		}
	}

	return ins, nil
}
