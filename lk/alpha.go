// Package lk — α-distances from minimum 1-trees.
//
// The α-distance of an edge (v,w) is the increase in minimum-1-tree length
// when the 1-tree is forced to contain (v,w). Edges of the 1-tree itself
// have α = 0; edges far from any near-optimal tour get large values. The
// measure ranks candidate edges much better than raw distance.
//
// Construction (root r = 0):
//   - Build a minimum spanning tree over V\{r} with Prim in O(n²), then
//     add the two cheapest r-incident edges — the minimum 1-tree.
//   - For v,w ≠ r: α(v,w) = c(v,w) − β(v,w) where β(v,w) is the largest
//     edge cost on the MST path between v and w. β follows the recurrence
//     β(v,w) = max(β(v, parent(w)), c(parent(w), w)) processed in the
//     order Prim added vertices, O(n²) total.
//   - For the root: forcing (r,w) evicts the costlier of the two root
//     edges, so α(r,w) = c(r,w) − c₂ (zero for the two root edges).
//
// The optimized variant first runs a Held–Karp subgradient loop on vertex
// multipliers π (reduced costs c'(v,w) = c(v,w) + π_v + π_w), keeps the π
// with the best dual value L(π) = cost(T(π)) − 2Σπ, and computes α on
// those reduced costs. Tour feasibility needs deg(v)=2 everywhere, so the
// subgradient direction is deg(v) − 2.
//
// Determinism: Prim and the root-edge selection break ties by vertex id;
// the step schedule is purely arithmetic. No RNG.
//
// Complexity: O(n²) per 1-tree, O(iters·n²) for the optimized variant,
// O(n²) memory for the β table.
package lk

import "math"

// alphaSubgradientIters bounds the subgradient loop of the optimized
// variant. Diminishing steps make later iterations cheap to skip.
const alphaSubgradientIters = 32

// alphaDistances returns the n×n α-distance table for a symmetric distance
// function. The diagonal is zero. For n < 3 no 1-tree exists and the table
// is all zeros, which degrades α ranking to plain distance ranking.
func alphaDistances(n int, dist func(u, v int) int64) [][]int64 {
	if n < 3 {
		return zeroTable(n)
	}
	e := newOneTreeEngine(n, dist)
	e.build()

	return e.alphaTable()
}

// optimizedAlphaDistances returns α-distances computed on reduced costs
// after a subgradient optimization of the Held–Karp multipliers.
func optimizedAlphaDistances(n int, dist func(u, v int) int64) [][]int64 {
	if n < 3 {
		return zeroTable(n)
	}
	e := newOneTreeEngine(n, dist)

	var (
		bestPi = make([]float64, n) // multipliers achieving the best dual value
		bestL  = math.Inf(-1)      // best L(π) observed
		sumPi  float64             // Σ π_i for the dual value
		norm2  float64             // ‖deg−2‖²
		step   float64             // subgradient step size
		t0     float64             // initial step scale
		cost   float64             // reduced cost of the current 1-tree
		iter   int
		i      int
		d      int // deg(i) − 2
	)

	cost = e.build()
	t0 = cost / float64(2*n) // classical initial scale L(0)/(2n)

	for iter = 0; iter < alphaSubgradientIters; iter++ {
		sumPi = 0
		for i = 0; i < n; i++ {
			sumPi += e.pi[i]
		}
		if l := cost - 2*sumPi; l > bestL {
			bestL = l
			copy(bestPi, e.pi)
		}

		norm2 = 0
		for i = 0; i < n; i++ {
			d = e.deg[i] - 2
			norm2 += float64(d * d)
		}
		if norm2 == 0 {
			break // the 1-tree is already a tour; π is optimal
		}

		step = t0 / float64(1+iter)
		if step <= 0 {
			break
		}
		for i = 0; i < n; i++ {
			e.pi[i] += step * float64(e.deg[i]-2)
		}

		cost = e.build()
	}

	// Evaluate α on the best multipliers seen, not the last ones.
	copy(e.pi, bestPi)
	e.build()

	return e.alphaTable()
}

// zeroTable allocates an all-zero n×n table.
func zeroTable(n int) [][]int64 {
	out := make([][]int64, n)
	var v int
	for v = 0; v < n; v++ {
		out[v] = make([]int64, n)
	}

	return out
}

// oneTreeEngine holds the mutable state for building minimum 1-trees on
// reduced costs. Arrays are reused across subgradient iterations.
type oneTreeEngine struct {
	n    int
	root int
	dist func(u, v int) int64

	pi []float64 // Lagrange multipliers

	// Prim state over V\{root}.
	inTree   []bool
	parent   []int
	key      []float64
	addOrder []int // vertices in the order Prim included them

	deg []int // vertex degrees in the current 1-tree

	// Root-edge selection of the current 1-tree.
	rootTo1, rootTo2 int     // endpoints of the two cheapest root edges
	rootC2           float64 // reduced cost of the second-cheapest root edge
}

func newOneTreeEngine(n int, dist func(u, v int) int64) *oneTreeEngine {
	return &oneTreeEngine{
		n:        n,
		root:     0,
		dist:     dist,
		pi:       make([]float64, n),
		inTree:   make([]bool, n),
		parent:   make([]int, n),
		key:      make([]float64, n),
		addOrder: make([]int, 0, n),
		deg:      make([]int, n),
	}
}

// reduced returns c'(u,v) = c(u,v) + π_u + π_v.
func (e *oneTreeEngine) reduced(u, v int) float64 {
	return float64(e.dist(u, v)) + e.pi[u] + e.pi[v]
}

// build constructs the minimum 1-tree under the current multipliers and
// returns its total reduced cost. It fills deg, parent, addOrder, and the
// root-edge selection.
//
// Complexity: O(n²) time.
func (e *oneTreeEngine) build() float64 {
	var (
		inf  = math.Inf(1)
		v    int
		u    int
		best int
		iter int
		c    float64
		cost float64
	)

	for v = 0; v < e.n; v++ {
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = inf
		e.deg[v] = 0
	}
	e.addOrder = e.addOrder[:0]

	// Prim over V\{root}; start at the smallest non-root vertex.
	start := 0
	if start == e.root {
		start = 1
	}
	e.key[start] = 0

	for iter = 0; iter < e.n-1; iter++ {
		best = -1
		for v = 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] || (e.key[v] == e.key[best] && v < best) {
				best = v
			}
		}

		e.inTree[best] = true
		e.addOrder = append(e.addOrder, best)
		if e.parent[best] != -1 {
			u = e.parent[best]
			cost += e.reduced(best, u)
			e.deg[best]++
			e.deg[u]++
		}

		for v = 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] || v == best {
				continue
			}
			c = e.reduced(best, v)
			if c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Two cheapest root edges, ties by vertex id.
	var (
		m1, m2     = inf, inf
		m1To, m2To = -1, -1
	)
	for v = 0; v < e.n; v++ {
		if v == e.root {
			continue
		}
		c = e.reduced(e.root, v)
		if c < m1 || (c == m1 && v < m1To) {
			m2, m2To = m1, m1To
			m1, m1To = c, v
		} else if c < m2 || (c == m2 && v < m2To) {
			m2, m2To = c, v
		}
	}
	cost += m1 + m2
	e.deg[e.root] += 2
	e.deg[m1To]++
	e.deg[m2To]++
	e.rootTo1, e.rootTo2 = m1To, m2To
	e.rootC2 = m2

	return cost
}

// alphaTable derives the α-distances from the last built 1-tree.
//
// Complexity: O(n²) time and memory (the β table).
func (e *oneTreeEngine) alphaTable() [][]int64 {
	var (
		n     = e.n
		ninf  = math.Inf(-1)
		beta  = make([][]float64, n)
		alpha = make([][]int64, n)
		v, w  int
		p     int
		idx   int
		j     int
		b     float64
	)
	for v = 0; v < n; v++ {
		beta[v] = make([]float64, n)
		alpha[v] = make([]int64, n)
	}

	// β over MST vertices in Prim order: β(v,w) = max(β(v,parent(w)), c'(parent(w),w)).
	for idx = 0; idx < len(e.addOrder); idx++ {
		w = e.addOrder[idx]
		beta[w][w] = ninf
		p = e.parent[w]
		if p == -1 {
			continue // first vertex; no earlier partners yet
		}
		for j = 0; j < idx; j++ {
			v = e.addOrder[j]
			b = beta[v][p]
			if c := e.reduced(p, w); c > b {
				b = c
			}
			beta[v][w] = b
			beta[w][v] = b
		}
	}

	for v = 0; v < n; v++ {
		for w = 0; w < n; w++ {
			switch {
			case v == w:
				alpha[v][w] = 0
			case v == e.root || w == e.root:
				other := v
				if other == e.root {
					other = w
				}
				if other == e.rootTo1 || other == e.rootTo2 {
					alpha[v][w] = 0
				} else {
					alpha[v][w] = roundToInt64(e.reduced(v, w) - e.rootC2)
				}
			default:
				alpha[v][w] = roundToInt64(e.reduced(v, w) - beta[v][w])
			}
		}
	}

	return alpha
}

// roundToInt64 rounds to the nearest integer, clamping negatives to zero:
// α is a nonnegative measure and tiny negative values only arise from
// float noise in the reduced costs.
func roundToInt64(x float64) int64 {
	if x <= 0 {
		return 0
	}

	return int64(math.Round(x))
}
