package pathfinding_test

import (
	"testing"

	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/pathfinding"
	"github.com/oroutengine/ogr/profile"
	"github.com/stretchr/testify/require"
)

// buildG1 mirrors the scenario graph used across the domain's packages:
// five nodes arranged in a diamond plus a spur, with one private-tagged
// shortcut edge used to exercise profile-based blocking.
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
		{202, 30, 50, 2, map[string]string{"highway": "private"}},
		{203, 50, 30, 2, nil},
	}
	for _, ed := range edges {
		d, err := geo.NewDistance(ed.meters)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(ed.id, ed.from, ed.to, true, d, ed.tags))
	}

	return g
}

func TestDijkstra_FindsShortestPath(t *testing.T) {
	g := buildG1(t)
	d := pathfinding.NewDijkstra()

	res, err := d.FindPath(g, 10, 40, profile.CarProfile())
	require.NoError(t, err)
	// 10 -101-> 30 -202(private, blocked for car? no factor set => allowed)-> 50 ... but
	// the direct diamond path 10->20->40 (4+2=6) vs 10->30->40 (1+5=6) is a tie;
	// either is valid and both are length 2.
	require.Len(t, res.EdgeIDs, 2)
	require.Positive(t, res.NodesExplored)
}

func TestDijkstra_NoPathWhenUnreachable(t *testing.T) {
	g := buildG1(t)
	require.NoError(t, g.AddNode(999, geo.NewCoordinate(9, 9)))

	d := pathfinding.NewDijkstra()
	res, err := d.FindPath(g, 10, 999, profile.CarProfile())
	require.NoError(t, err)
	require.Empty(t, res.EdgeIDs)
}

func TestDijkstra_RespectsProfileBlocking(t *testing.T) {
	g := buildG1(t)
	blocking := profile.New("NoPrivate", "test", 10, profile.WithFactor("private", 0))

	d := pathfinding.NewDijkstra()
	res, err := d.FindPath(g, 30, 50, blocking)
	require.NoError(t, err)
	// Direct edge 202 is blocked; only remaining route is via 20.
	require.NotContains(t, res.EdgeIDs, int64(202))
}

func TestDijkstra_UnknownNodes(t *testing.T) {
	g := buildG1(t)
	d := pathfinding.NewDijkstra()

	_, err := d.FindPath(g, 999, 40, profile.CarProfile())
	require.ErrorIs(t, err, pathfinding.ErrStartNotFound)

	_, err = d.FindPath(g, 10, 999, profile.CarProfile())
	require.ErrorIs(t, err, pathfinding.ErrEndNotFound)
}

func TestAStar_AgreesWithDijkstraOnCost(t *testing.T) {
	g := buildG1(t)
	p := profile.CarProfile()

	dRes, err := pathfinding.NewDijkstra().FindPath(g, 10, 50, p)
	require.NoError(t, err)
	aRes, err := pathfinding.NewAStar().FindPath(g, 10, 50, p)
	require.NoError(t, err)

	require.Equal(t, len(dRes.EdgeIDs) > 0, len(aRes.EdgeIDs) > 0)

	pathMeters := func(edgeIDs []int64) float64 {
		var total float64
		for _, id := range edgeIDs {
			e, err := g.GetEdge(id)
			require.NoError(t, err)
			total += e.Dist.Meters()
		}
		return total
	}
	require.InDelta(t, pathMeters(dRes.EdgeIDs), pathMeters(aRes.EdgeIDs), 1e-6)
}

func TestAStar_SameSourceAndTarget(t *testing.T) {
	g := buildG1(t)
	res, err := pathfinding.NewAStar().FindPath(g, 10, 10, profile.CarProfile())
	require.NoError(t, err)
	require.Empty(t, res.EdgeIDs)
}
