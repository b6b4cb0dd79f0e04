package routing_test

import (
	"testing"
	"time"

	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/profile"
	"github.com/oroutengine/ogr/routing"
	"github.com/stretchr/testify/require"
)

func buildG1(t *testing.T) *graph.Graph {
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
		tags         map[string]string
	}
	edges := []e{
		{100, 10, 20, 4, nil},
		{101, 10, 30, 1, nil},
		{102, 20, 40, 2, nil},
		{103, 30, 40, 5, nil},
		{104, 20, 10, 4, nil},
		{105, 30, 10, 1, nil},
		{106, 40, 20, 2, nil},
		{107, 40, 30, 5, nil},
		{200, 20, 50, 1, nil},
		{201, 50, 20, 1, nil},
		{202, 30, 50, 6, map[string]string{"highway": "private"}},
		{203, 50, 30, 6, nil},
	}
	for _, ed := range edges {
		d, err := geo.NewDistance(ed.meters)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(ed.id, ed.from, ed.to, true, d, ed.tags))
	}

	return g
}

// S1: findPath(G1, 10, 40, none) with Dijkstra → edges [100, 102],
// total 6. Two edge sequences tie for that cost, [100, 102] and
// [101, 103]; node 30 is popped before node 20 (dist 1 vs. 4), so 40
// is first relaxed via edge 103, and the later equal-cost relaxation
// through 102 (from node 20) replaces it before 40 is popped
// (runner.relax replaces on equal cost).
func TestFindPath_S1(t *testing.T) {
	g := buildG1(t)
	f := routing.NewPathfindingFacade(g)

	res, err := f.FindPath(10, 40, "dijkstra", nil)
	require.NoError(t, err)
	require.Equal(t, []int64{100, 102}, res.EdgeIDs)
	require.Equal(t, 6.0, res.TotalDistance.Meters())
	require.Equal(t, []int64{10, 20, 40}, res.NodeIDs)
}

// S2: findPath(G1, 10, 30, none) with Dijkstra → edges [101], total 1.
func TestFindPath_S2(t *testing.T) {
	g := buildG1(t)
	f := routing.NewPathfindingFacade(g)

	res, err := f.FindPath(10, 30, "dijkstra", nil)
	require.NoError(t, err)
	require.Equal(t, []int64{101}, res.EdgeIDs)
	require.Equal(t, 1.0, res.TotalDistance.Meters())
}

// S3: findPath(G1, 10, 50, P-car) with Dijkstra → edges [100, 200], total 5.
func TestFindPath_S3(t *testing.T) {
	g := buildG1(t)
	f := routing.NewPathfindingFacade(g)

	carProfile := profile.New("P-car", "car", 10, profile.WithFactor("private", 0))
	res, err := f.FindPath(10, 50, "dijkstra", carProfile)
	require.NoError(t, err)
	require.Equal(t, []int64{100, 200}, res.EdgeIDs)
	require.Equal(t, 5.0, res.TotalDistance.Meters())
}

// S7: Graph G1 augmented with node 60 at (10,10) and no edges; findPath → empty list.
func TestFindPath_S7_Unreachable(t *testing.T) {
	g := buildG1(t)
	require.NoError(t, g.AddNode(60, geo.NewCoordinate(10, 10)))

	f := routing.NewPathfindingFacade(g)
	res, err := f.FindPath(10, 60, "dijkstra", nil)
	require.NoError(t, err)
	require.Empty(t, res.EdgeIDs)
}

func TestFindPath_UnknownNode(t *testing.T) {
	g := buildG1(t)
	f := routing.NewPathfindingFacade(g)

	_, err := f.FindPath(9999, 40, "dijkstra", nil)
	var rErr *routing.RoutingError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, routing.NodeNotFound, rErr.Kind)
	require.NotNil(t, rErr.NodeID)
	require.Equal(t, int64(9999), *rErr.NodeID)
}

func TestFindPath_UnknownAlgorithm(t *testing.T) {
	g := buildG1(t)
	f := routing.NewPathfindingFacade(g)

	_, err := f.FindPath(10, 40, "bogus", nil)
	var rErr *routing.RoutingError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, routing.InvalidArgument, rErr.Kind)
}

func TestFindPathAsync_DeliversResult(t *testing.T) {
	g := buildG1(t)
	f := routing.NewPathfindingFacade(g)

	select {
	case ev := <-f.FindPathAsync(10, 40, "dijkstra", nil):
		require.NoError(t, ev.Err)
		require.NotNil(t, ev.Result)
		require.Equal(t, []int64{100, 102}, ev.Result.EdgeIDs)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async result")
	}
}

func TestTspSolve_TooFewWaypoints(t *testing.T) {
	g := buildG1(t)
	f := routing.NewTspFacade(g)

	_, err := f.Solve([]int64{10}, "ig", "dijkstra", nil, true)
	var rErr *routing.RoutingError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, routing.InsufficientWaypoints, rErr.Kind)
}

func TestTspSolve_InvalidWaypoint(t *testing.T) {
	g := buildG1(t)
	f := routing.NewTspFacade(g)

	_, err := f.Solve([]int64{10, 9999}, "ig", "dijkstra", nil, true)
	var rErr *routing.RoutingError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, routing.InvalidWaypoints, rErr.Kind)
	require.Equal(t, []int64{9999}, rErr.MissingWaypoints)
}

func TestTspSolve_UnreachableWaypoints(t *testing.T) {
	g := buildG1(t)
	require.NoError(t, g.AddNode(60, geo.NewCoordinate(10, 10)))

	f := routing.NewTspFacade(g)
	_, err := f.Solve([]int64{10, 20, 60}, "ig", "dijkstra", nil, true)
	var rErr *routing.RoutingError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, routing.UnreachableWaypoints, rErr.Kind)
	require.NotEmpty(t, rErr.Suggestions)
}

func TestTspSolve_ValidTour(t *testing.T) {
	g := buildG1(t)
	f := routing.NewTspFacade(g)

	res, err := f.Solve([]int64{10, 20, 30, 40}, "ig", "dijkstra", nil, true)
	require.NoError(t, err)
	require.Len(t, res.TourIndices, 4)
	require.Equal(t, 0, res.TourIndices[0])
	require.Len(t, res.Segments, 4)
	require.Positive(t, res.TotalDistance.Meters())
}
