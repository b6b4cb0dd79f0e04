package tspsolve

import (
	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/tspmatrix"
)

// Solver is implemented by every TSP metaheuristic. Solve returns a
// permutation of waypoint indices 0..N-1 (one occurrence each),
// starting at startIdx, plus its reported cost (closed iff closed is
// true — return-to-start is purely a cost-reporting flag, never a
// permutation change).
type Solver interface {
	Solve(m *tspmatrix.TspMatrix, startIdx int, closed bool) ([]int, geo.Distance, error)
}
