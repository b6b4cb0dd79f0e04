package pathfinding

import (
	"time"

	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/profile"
)

// astarHeuristicScale keeps the Manhattan-degree heuristic admissible:
// it must never overestimate the true remaining cost, so it is scaled
// down from the flat-earth approximation by a small safety margin.
const astarHeuristicScale = 0.95

// AStar is a goal-directed shortest-path algorithm using an admissible,
// scaled Manhattan-degree heuristic on geographic coordinates.
type AStar struct{}

// NewAStar constructs an A* algorithm instance.
func NewAStar() *AStar { return &AStar{} }

// Name returns the algorithm's registered name.
func (a *AStar) Name() string { return "astar" }

// FindPath computes a minimum-cost path from startID to endID using
// A* search. If the search hits MaxExpansions before reaching endID,
// it returns, plus a warning rather than an error, the path to endID
// recorded so far if endID has already been relaxed (that path is not
// guaranteed minimal), or an empty EdgeIDs otherwise; no path to any
// other node is returned.
func (a *AStar) FindPath(g *graph.Graph, startID, endID int64, p *profile.Profile) (Result, error) {
	began := time.Now()

	if !g.HasNode(startID) {
		return Result{}, ErrStartNotFound
	}
	if !g.HasNode(endID) {
		return Result{}, ErrEndNotFound
	}

	goal, err := g.GetNode(endID)
	if err != nil {
		return Result{}, ErrEndNotFound
	}

	heuristic := func(nodeID int64) float64 {
		n, err := g.GetNode(nodeID)
		if err != nil {
			return 0
		}

		return n.Coord.ManhattanDegreesMeters(goal.Coord) * astarHeuristicScale
	}

	r := newRunner(g, p, startID, endID, heuristic, MaxExpansions)
	r.run()

	res := Result{
		EdgeIDs:       reconstruct(g, r.prevEdge, startID, endID),
		NodesExplored: r.expansions,
		Elapsed:       time.Since(began),
	}
	if r.capped {
		res.Warnings = append(res.Warnings, "expansion cap reached")
	}

	return res, nil
}
