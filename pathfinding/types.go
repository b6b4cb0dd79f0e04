package pathfinding

import (
	"time"

	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/profile"
)

// MaxExpansions caps the number of nodes a single search may finalize
// before it gives up and returns its best partial result.
const MaxExpansions = 200_000

// Result is the outcome of a single FindPath call.
type Result struct {
	// EdgeIDs is the ordered sequence of edge ids forming the path from
	// start to end. Empty if no path was found.
	EdgeIDs []int64

	// NodesExplored counts how many nodes were popped off the frontier
	// and finalized during the search.
	NodesExplored int

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration

	// Warnings carries non-fatal conditions, e.g. "expansion cap
	// reached", that a caller may want to surface to a user.
	Warnings []string
}

// Algorithm is implemented by every pathfinding strategy.
type Algorithm interface {
	FindPath(g *graph.Graph, startID, endID int64, p *profile.Profile) (Result, error)
	Name() string
}
