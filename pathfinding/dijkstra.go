package pathfinding

import (
	"time"

	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/profile"
)

// Dijkstra is the exact, heuristic-free shortest-path algorithm.
type Dijkstra struct{}

// NewDijkstra constructs a Dijkstra algorithm instance.
func NewDijkstra() *Dijkstra { return &Dijkstra{} }

// Name returns the algorithm's registered name.
func (d *Dijkstra) Name() string { return "dijkstra" }

// FindPath computes the minimum-cost path from startID to endID,
// respecting p's road restrictions. It never errors on "no path
// found"; an empty Result.EdgeIDs with NodesExplored > 0 means the
// search exhausted the reachable component without finding endID.
func (d *Dijkstra) FindPath(g *graph.Graph, startID, endID int64, p *profile.Profile) (Result, error) {
	began := time.Now()

	if !g.HasNode(startID) {
		return Result{}, ErrStartNotFound
	}
	if !g.HasNode(endID) {
		return Result{}, ErrEndNotFound
	}

	r := newRunner(g, p, startID, endID, nil, MaxExpansions)
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
