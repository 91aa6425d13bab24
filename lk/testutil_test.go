// Package lk_test provides shared helpers for the solver tests: tiny
// deterministic problem builders and tour normalization utilities.
package lk_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lkh/lk"
)

// seedDet is the deterministic seed used across tests.
const seedDet = int64(7)

// matProblem is a minimal lk.Problem over a dense matrix.
type matProblem struct {
	n int
	w [][]int64
}

func (p matProblem) Dimension() int      { return p.n }
func (p matProblem) Dist(u, v int) int64 { return p.w[u][v] }

// euclidProblem builds a symmetric problem from 2D points with
// nearest-integer rounding of the Euclidean distances.
func euclidProblem(pts [][2]float64) matProblem {
	n := len(pts)
	w := make([][]int64, n)

	var i, j int
	for i = 0; i < n; i++ {
		w[i] = make([]int64, n)
	}
	var d int64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = int64(math.Floor(math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1]) + 0.5))
			w[i][j] = d
			w[j][i] = d
		}
	}

	return matProblem{n: n, w: w}
}

// lineProblem places n cities on a line at x = 0..n-1.
func lineProblem(n int) matProblem {
	w := make([][]int64, n)
	var i, j int
	for i = 0; i < n; i++ {
		w[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			if i > j {
				w[i][j] = int64(i - j)
			} else {
				w[i][j] = int64(j - i)
			}
		}
	}

	return matProblem{n: n, w: w}
}

// ringProblem uses the cyclic distance min(|i-j|, n-|i-j|); the optimum
// tour is the ring 0,1,…,n-1 with length n.
func ringProblem(n int) matProblem {
	w := make([][]int64, n)
	var i, j, d int
	for i = 0; i < n; i++ {
		w[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			d = i - j
			if d < 0 {
				d = -d
			}
			if n-d < d {
				d = n - d
			}
			w[i][j] = int64(d)
		}
	}

	return matProblem{n: n, w: w}
}

// mustTour builds an ArrayTour or fails the test.
func mustTour(t *testing.T, order []int) *lk.ArrayTour {
	t.Helper()
	tour, err := lk.NewArrayTour(order)
	if err != nil {
		t.Fatalf("NewArrayTour(%v): %v", order, err)
	}

	return tour
}

// mustSolver builds a solver with the given strategy or fails the test.
func mustSolver(t *testing.T, p lk.Problem, strategy lk.CandidateStrategy, k int, seed int64) *lk.Solver {
	t.Helper()
	ce, err := lk.NewCandidateEdges(p, strategy, k)
	if err != nil {
		t.Fatalf("NewCandidateEdges: %v", err)
	}
	opts := lk.DefaultOptions()
	opts.Seed = seed
	s, err := lk.New(p, ce, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return s
}

// canonicalCycle normalizes a vertex sequence under rotation and
// reflection: rotate so 0 comes first, then orient toward the smaller
// second element. Two sequences describe the same cycle iff their
// canonical forms are equal.
func canonicalCycle(seq []int) []int {
	n := len(seq)
	out := make([]int, n)

	// Rotate to put vertex 0 first.
	var pivot, i int
	for i = 0; i < n; i++ {
		if seq[i] == 0 {
			pivot = i
			break
		}
	}
	for i = 0; i < n; i++ {
		out[i] = seq[(pivot+i)%n]
	}

	// Reflect when the reverse direction starts smaller.
	if n > 2 && out[n-1] < out[1] {
		for i = 1; i < (n+1)/2; i++ {
			out[i], out[n-i] = out[n-i], out[i]
		}
	}

	return out
}
