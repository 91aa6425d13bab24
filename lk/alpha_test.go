// White-box tests for the α-distance tables: the values on a line metric
// are small enough to verify by hand.
package lk

import "testing"

// lineDist is the |i-j| metric used throughout these tests.
func lineDist(u, v int) int64 {
	if u > v {
		return int64(u - v)
	}

	return int64(v - u)
}

// For 4 collinear cities the minimum 1-tree (root 0) consists of the MST
// {1-2, 2-3} plus the two cheapest root edges {0-1, 0-2}.
func TestAlphaDistancesLine(t *testing.T) {
	alpha := alphaDistances(4, lineDist)

	// 1-tree edges have α = 0.
	for _, e := range [][2]int{{1, 2}, {2, 3}, {0, 1}, {0, 2}} {
		if alpha[e[0]][e[1]] != 0 || alpha[e[1]][e[0]] != 0 {
			t.Fatalf("α%v = %d/%d, want 0", e, alpha[e[0]][e[1]], alpha[e[1]][e[0]])
		}
	}

	// Forcing 0-3 evicts the second root edge (cost 2): α = 3 − 2 = 1.
	if alpha[0][3] != 1 {
		t.Fatalf("α(0,3) = %d, want 1", alpha[0][3])
	}
	// Forcing 1-3 evicts the max edge on the MST path 1-2-3 (cost 1):
	// α = 2 − 1 = 1.
	if alpha[1][3] != 1 {
		t.Fatalf("α(1,3) = %d, want 1", alpha[1][3])
	}
}

func TestAlphaDistancesTableShape(t *testing.T) {
	const n = 7
	alpha := alphaDistances(n, lineDist)

	var v, w int
	for v = 0; v < n; v++ {
		if alpha[v][v] != 0 {
			t.Fatalf("diagonal α(%d,%d) = %d", v, v, alpha[v][v])
		}
		for w = 0; w < n; w++ {
			if alpha[v][w] < 0 {
				t.Fatalf("negative α(%d,%d) = %d", v, w, alpha[v][w])
			}
			if alpha[v][w] != alpha[w][v] {
				t.Fatalf("asymmetric α at (%d,%d)", v, w)
			}
		}
	}
}

func TestOptimizedAlphaDistancesShape(t *testing.T) {
	const n = 6
	alpha := optimizedAlphaDistances(n, lineDist)

	if len(alpha) != n {
		t.Fatalf("table has %d rows", len(alpha))
	}
	var v, w int
	for v = 0; v < n; v++ {
		if len(alpha[v]) != n {
			t.Fatalf("row %d has %d entries", v, len(alpha[v]))
		}
		if alpha[v][v] != 0 {
			t.Fatalf("diagonal α(%d,%d) = %d", v, v, alpha[v][v])
		}
		for w = 0; w < n; w++ {
			if alpha[v][w] < 0 {
				t.Fatalf("negative α(%d,%d)", v, w)
			}
			if alpha[v][w] != alpha[w][v] {
				t.Fatalf("asymmetric α at (%d,%d)", v, w)
			}
		}
	}
}

func TestAlphaDistancesTinyDimension(t *testing.T) {
	alpha := alphaDistances(2, lineDist)
	if alpha[0][1] != 0 || alpha[1][0] != 0 {
		t.Fatalf("n=2 table must be zero, got %v", alpha)
	}
}
