// Package lk — candidate-edge pre-selection.
//
// The search only ever adds edges leading into a vertex's candidate row,
// so the quality of the rows largely decides solution quality. Four
// strategies are provided, from exhaustive (tiny instances) to α-nearest
// rows ranked by how much forcing an edge into a minimum 1-tree would
// cost (see alpha.go).
//
// Determinism: all sort keys break ties by vertex id, so the same problem
// always yields the same table.
package lk

import "sort"

// CandidateStrategy selects how the candidate table is built.
type CandidateStrategy uint8

const (
	// AllNeighbors lists every other vertex per row. Exhaustive search;
	// only sensible for small instances.
	AllNeighbors CandidateStrategy = iota

	// NearestNeighbors lists the k nearest vertices per row, ascending by
	// distance.
	NearestNeighbors

	// AlphaNearestNeighbors ranks rows by (α-distance, distance), where α
	// is derived from a minimum 1-tree.
	AlphaNearestNeighbors

	// OptimizedAlphaNearestNeighbors is AlphaNearestNeighbors on a
	// subgradient-optimized 1-tree (tighter ranking, costlier setup).
	OptimizedAlphaNearestNeighbors
)

// String returns the strategy name used by CLI flags and logs.
func (s CandidateStrategy) String() string {
	switch s {
	case AllNeighbors:
		return "all"
	case NearestNeighbors:
		return "nearest"
	case AlphaNearestNeighbors:
		return "alpha"
	case OptimizedAlphaNearestNeighbors:
		return "alpha-opt"
	default:
		return "unknown"
	}
}

// CandidateEdges maps each vertex to an ordered row of neighbor vertices.
// Rows never contain the owning vertex. Built once per problem and
// immutable afterwards; safe to share read-only.
type CandidateEdges [][]int

// Dimension returns the number of rows.
func (ce CandidateEdges) Dimension() int { return len(ce) }

// NewCandidateEdges builds the candidate table for a problem.
//
// Contracts:
//   - p.Dimension() ≥ 2, else ErrDimension.
//   - For the neighbor-based strategies, 1 ≤ k ≤ n-1, else ErrBadK;
//     k is ignored by AllNeighbors.
//
// Complexity: O(n² log n) for the sorting strategies; the α strategies add
// an O(n²) 1-tree construction (O(iters·n²) for the optimized variant).
func NewCandidateEdges(p Problem, strategy CandidateStrategy, k int) (CandidateEdges, error) {
	n := p.Dimension()
	if n < 2 {
		return nil, ErrDimension
	}

	switch strategy {
	case AllNeighbors:
		return allNeighborRows(n), nil

	case NearestNeighbors:
		if k < 1 || k >= n {
			return nil, ErrBadK
		}

		return nearestRows(n, k, func(v, w1, w2 int) bool {
			d1, d2 := p.Dist(v, w1), p.Dist(v, w2)
			if d1 != d2 {
				return d1 < d2
			}

			return w1 < w2
		}), nil

	case AlphaNearestNeighbors, OptimizedAlphaNearestNeighbors:
		if k < 1 || k >= n {
			return nil, ErrBadK
		}
		var alpha [][]int64
		if strategy == AlphaNearestNeighbors {
			alpha = alphaDistances(n, p.Dist)
		} else {
			alpha = optimizedAlphaDistances(n, p.Dist)
		}

		return nearestRows(n, k, func(v, w1, w2 int) bool {
			if alpha[v][w1] != alpha[v][w2] {
				return alpha[v][w1] < alpha[v][w2]
			}
			d1, d2 := p.Dist(v, w1), p.Dist(v, w2)
			if d1 != d2 {
				return d1 < d2
			}

			return w1 < w2
		}), nil

	default:
		return nil, ErrUnknownStrategy
	}
}

// allNeighborRows builds rows listing every other vertex in id order.
//
// Complexity: O(n²) time and space.
func allNeighborRows(n int) CandidateEdges {
	rows := make(CandidateEdges, n)

	var (
		v   int   // row owner
		w   int   // neighbor under consideration
		row []int // row being filled
	)
	for v = 0; v < n; v++ {
		row = make([]int, 0, n-1)
		for w = 0; w < n; w++ {
			if w != v {
				row = append(row, w)
			}
		}
		rows[v] = row
	}

	return rows
}

// nearestRows builds rows of the k best neighbors per vertex under the
// given strict-weak order. The order must be total per owner (ties broken
// by id inside the comparator), which makes the table deterministic.
//
// Complexity: O(n² log n) time, O(n²) output plus one O(n) scratch slice.
func nearestRows(n, k int, less func(v, w1, w2 int) bool) CandidateEdges {
	rows := make(CandidateEdges, n)
	scratch := make([]int, 0, n-1) // reused candidate pool per vertex

	var (
		v   int
		w   int
		row []int
	)
	for v = 0; v < n; v++ {
		scratch = scratch[:0]
		for w = 0; w < n; w++ {
			if w != v {
				scratch = append(scratch, w)
			}
		}
		owner := v // capture for the closure below
		sort.Slice(scratch, func(i, j int) bool { return less(owner, scratch[i], scratch[j]) })

		row = make([]int, k)
		copy(row, scratch[:k])
		rows[v] = row
	}

	return rows
}
