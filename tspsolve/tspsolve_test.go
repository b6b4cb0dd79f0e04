package tspsolve_test

import (
	"context"
	"testing"

	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/pathfinding"
	"github.com/oroutengine/ogr/profile"
	"github.com/oroutengine/ogr/tspmatrix"
	"github.com/oroutengine/ogr/tspsolve"
	"github.com/stretchr/testify/require"
)

func buildMatrix(t *testing.T) *tspmatrix.TspMatrix {
	t.Helper()
	g := graph.NewGraph()
	nodes := map[int64]geo.Coordinate{
		10: geo.NewCoordinate(0, 0),
		20: geo.NewCoordinate(0, 1),
		30: geo.NewCoordinate(1, 0),
		40: geo.NewCoordinate(1, 1),
		50: geo.NewCoordinate(2, 2),
	}
	for id, c := range nodes {
		require.NoError(t, g.AddNode(id, c))
	}
	type e struct {
		id, from, to int64
		meters       float64
	}
	edges := []e{
		{100, 10, 20, 4}, {104, 20, 10, 4},
		{101, 10, 30, 1}, {105, 30, 10, 1},
		{102, 20, 40, 2}, {106, 40, 20, 2},
		{103, 30, 40, 5}, {107, 40, 30, 5},
		{200, 20, 50, 1}, {201, 50, 20, 1},
		{202, 30, 50, 2}, {203, 50, 30, 2},
	}
	for _, ed := range edges {
		d, err := geo.NewDistance(ed.meters)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(ed.id, ed.from, ed.to, true, d, nil))
	}

	m, err := tspmatrix.New([]int64{10, 20, 30, 40, 50})
	require.NoError(t, err)
	require.NoError(t, m.Precompute(context.Background(), g, pathfinding.NewDijkstra(), profile.CarProfile(), nil))

	return m
}

func requireValidPermutation(t *testing.T, route []int, n int) {
	t.Helper()
	require.Len(t, route, n)
	seen := make(map[int]bool, n)
	for _, v := range route {
		require.False(t, seen[v], "index %d repeated", v)
		seen[v] = true
	}
}

func TestIG_ProducesValidTour(t *testing.T) {
	m := buildMatrix(t)
	s := &tspsolve.IG{Iterations: 50, Seed: 7}

	route, cost, err := s.Solve(m, 0, true)
	require.NoError(t, err)
	requireValidPermutation(t, route, m.N())
	require.Equal(t, 0, route[0])
	require.Positive(t, cost.Meters())
}

func TestIGN_ProducesValidTour(t *testing.T) {
	m := buildMatrix(t)
	s := &tspsolve.IGN{Iterations: 50, Seed: 7}

	route, _, err := s.Solve(m, 2, false)
	require.NoError(t, err)
	requireValidPermutation(t, route, m.N())
	require.Equal(t, 2, route[0])
}

func TestILSB_ProducesValidTour(t *testing.T) {
	m := buildMatrix(t)
	s := &tspsolve.ILSB{Iterations: 50, Seed: 7}

	route, _, err := s.Solve(m, 1, true)
	require.NoError(t, err)
	requireValidPermutation(t, route, m.N())
	require.Equal(t, 1, route[0])
}

func TestSolve_RejectsOutOfRangeStart(t *testing.T) {
	m := buildMatrix(t)
	_, _, err := tspsolve.NewIG().Solve(m, 99, true)
	require.ErrorIs(t, err, tspsolve.ErrStartIndexOutOfRange)
}

func TestEnsureStart_RotatesInPlace(t *testing.T) {
	route := []int{3, 1, 2, 0, 4}
	tspsolve.EnsureStart(route, 0)
	require.Equal(t, []int{0, 4, 3, 1, 2}, route)
}

func TestDefaultSolvers_HaveSpecDefaultIterations(t *testing.T) {
	require.Equal(t, 5000, tspsolve.NewIG().Iterations)
	require.Equal(t, 10000, tspsolve.NewIGN().Iterations)
	require.Equal(t, 5000, tspsolve.NewILSB().Iterations)
}
