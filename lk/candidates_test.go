package lk_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lkh/lk"
)

func TestCandidateEdgesAllNeighbors(t *testing.T) {
	p := lineProblem(5)

	ce, err := lk.NewCandidateEdges(p, lk.AllNeighbors, 0)
	require.NoError(t, err)
	require.Equal(t, 5, ce.Dimension())

	var v int
	for v = 0; v < 5; v++ {
		require.Len(t, ce[v], 4, "row %d", v)
		require.NotContains(t, ce[v], v, "row %d contains its owner", v)
	}
}

func TestCandidateEdgesNearestSortedAndSized(t *testing.T) {
	p := lineProblem(6)
	const k = 3

	ce, err := lk.NewCandidateEdges(p, lk.NearestNeighbors, k)
	require.NoError(t, err)

	var v, i int
	for v = 0; v < 6; v++ {
		require.Len(t, ce[v], k, "row %d", v)
		require.NotContains(t, ce[v], v)
		for i = 0; i+1 < k; i++ {
			require.LessOrEqual(t, p.Dist(v, ce[v][i]), p.Dist(v, ce[v][i+1]),
				"row %d not ascending", v)
		}
	}

	// On a line the nearest neighbors of an interior vertex are its direct
	// neighbors first; ties (distance 1 on both sides, then 2) break by id.
	require.Equal(t, []int{1, 3, 0}, ce[2])
}

func TestCandidateEdgesDeterministic(t *testing.T) {
	p := ringProblem(8)

	a, err := lk.NewCandidateEdges(p, lk.NearestNeighbors, 4)
	require.NoError(t, err)
	b, err := lk.NewCandidateEdges(p, lk.NearestNeighbors, 4)
	require.NoError(t, err)

	var v int
	for v = 0; v < 8; v++ {
		require.True(t, slices.Equal(a[v], b[v]), "row %d differs", v)
	}
}

func TestCandidateEdgesAlphaStrategies(t *testing.T) {
	p := euclidProblem([][2]float64{
		{0, 0}, {10, 0}, {20, 0}, {20, 10}, {10, 10}, {0, 10},
	})

	for _, strategy := range []lk.CandidateStrategy{
		lk.AlphaNearestNeighbors,
		lk.OptimizedAlphaNearestNeighbors,
	} {
		ce, err := lk.NewCandidateEdges(p, strategy, 3)
		require.NoError(t, err, strategy.String())

		var v int
		for v = 0; v < 6; v++ {
			require.Len(t, ce[v], 3)
			require.NotContains(t, ce[v], v)
		}
	}
}

func TestCandidateEdgesErrors(t *testing.T) {
	p := lineProblem(4)

	_, err := lk.NewCandidateEdges(p, lk.NearestNeighbors, 4)
	require.ErrorIs(t, err, lk.ErrBadK, "k == n")

	_, err = lk.NewCandidateEdges(p, lk.NearestNeighbors, 0)
	require.ErrorIs(t, err, lk.ErrBadK, "k == 0")

	_, err = lk.NewCandidateEdges(p, lk.CandidateStrategy(99), 2)
	require.ErrorIs(t, err, lk.ErrUnknownStrategy)

	_, err = lk.NewCandidateEdges(matProblem{n: 1, w: [][]int64{{0}}}, lk.AllNeighbors, 0)
	require.ErrorIs(t, err, lk.ErrDimension)
}

func TestCandidateStrategyNames(t *testing.T) {
	cases := map[lk.CandidateStrategy]string{
		lk.AllNeighbors:                   "all",
		lk.NearestNeighbors:               "nearest",
		lk.AlphaNearestNeighbors:          "alpha",
		lk.OptimizedAlphaNearestNeighbors: "alpha-opt",
		lk.CandidateStrategy(99):          "unknown",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Fatalf("String(%d) = %q, want %q", s, s.String(), want)
		}
	}
}
