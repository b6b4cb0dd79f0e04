package routing

import (
	"context"
	"time"

	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/pathfindingfactory"
	"github.com/oroutengine/ogr/profile"
	"github.com/oroutengine/ogr/tspmatrix"
	"github.com/oroutengine/ogr/tspsolvefactory"
)

// TspFacade answers fixed-start open or closed tour queries over N
// waypoints in a shared graph.
type TspFacade struct {
	g *graph.Graph
}

// NewTspFacade constructs a facade over g.
func NewTspFacade(g *graph.Graph) *TspFacade {
	return &TspFacade{g: g}
}

// Solve validates waypoints, precomputes the all-pairs distance
// matrix, runs the named TSP solver, and assembles a fully packaged
// TspResult. p may be nil, meaning no vehicle restrictions apply.
func (f *TspFacade) Solve(waypoints []int64, tspAlgo, pathAlgo string, p *profile.Profile, closed bool) (TspResult, error) {
	if len(waypoints) < 2 {
		return TspResult{}, insufficientWaypointsError()
	}

	var missing []int64
	for _, id := range waypoints {
		if !f.g.HasNode(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return TspResult{}, invalidWaypointsError(missing)
	}

	pathAlgorithm, err := pathfindingfactory.ByName(pathAlgo)
	if err != nil {
		return TspResult{}, invalidArgumentError(err.Error())
	}

	solver, err := tspsolvefactory.ByName(tspAlgo)
	if err != nil {
		return TspResult{}, invalidArgumentError(err.Error())
	}

	if p == nil {
		p = profile.NoRestrictions()
	}

	m, err := tspmatrix.New(waypoints)
	if err != nil {
		return TspResult{}, invalidArgumentError(err.Error())
	}

	precomputeStart := time.Now()
	if err := m.Precompute(context.Background(), f.g, pathAlgorithm, p, nil); err != nil {
		return TspResult{}, invalidArgumentError(err.Error())
	}
	precomputeElapsed := time.Since(precomputeStart)

	if !m.HasValidSolution() {
		return TspResult{}, unreachableWaypointsError(problematicWaypoints(m, waypoints))
	}

	solveStart := time.Now()
	tour, totalCost, err := solver.Solve(m, 0, closed)
	if err != nil {
		return TspResult{}, invalidArgumentError(err.Error())
	}
	solveElapsed := time.Since(solveStart)

	segments, err := f.buildSegments(m, waypoints, tour, closed)
	if err != nil {
		return TspResult{}, err
	}

	return TspResult{
		TourIndices:    tour,
		WaypointIDs:    waypoints,
		Segments:       segments,
		TotalDistance:  totalCost,
		PrecomputeTime: precomputeElapsed,
		SolveTime:      solveElapsed,
		Algorithm:      tspAlgo,
	}, nil
}

// SolveAsync dispatches Solve on a background goroutine and delivers
// its outcome on the returned channel, which is closed after the
// single terminal event. The profile, if non-nil, is cloned before
// dispatch so the goroutine's lifetime is independent of the caller.
func (f *TspFacade) SolveAsync(waypoints []int64, tspAlgo, pathAlgo string, p *profile.Profile, closed bool) <-chan TspEvent {
	ch := make(chan TspEvent, 1)

	var clone *profile.Profile
	if p != nil {
		clone = p.Clone()
	}

	go func() {
		res, err := f.Solve(waypoints, tspAlgo, pathAlgo, clone, closed)
		if err != nil {
			ch <- TspEvent{Err: err}
		} else {
			ch <- TspEvent{Result: &res}
		}
		close(ch)
	}()

	return ch
}

// buildSegments extracts each leg's edge and node list from the
// precomputed matrix, following tour order and closing the loop when
// closed is true.
func (f *TspFacade) buildSegments(m *tspmatrix.TspMatrix, waypoints []int64, tour []int, closed bool) ([]TspSegment, error) {
	segments := make([]TspSegment, 0, len(tour))

	legCount := len(tour) - 1
	if closed && len(tour) >= 2 {
		legCount = len(tour)
	}

	for i := 0; i < legCount; i++ {
		from := tour[i]
		to := tour[(i+1)%len(tour)]

		edgeIDs, err := m.PathEdgeIDs(from, to)
		if err != nil {
			return nil, invalidArgumentError(err.Error())
		}
		dist, err := m.Distance(from, to)
		if err != nil {
			return nil, invalidArgumentError(err.Error())
		}

		nodeIDs, _, err := f.expandSegment(waypoints[from], edgeIDs)
		if err != nil {
			return nil, err
		}

		segments = append(segments, TspSegment{
			FromWaypointIdx: from,
			ToWaypointIdx:   to,
			EdgeIDs:         edgeIDs,
			NodeIDs:         nodeIDs,
			Distance:        dist,
		})
	}

	return segments, nil
}

func (f *TspFacade) expandSegment(start int64, edgeIDs []int64) ([]int64, int64, error) {
	nodeIDs := make([]int64, 0, len(edgeIDs)+1)
	nodeIDs = append(nodeIDs, start)

	cur := start
	for _, edgeID := range edgeIDs {
		e, err := f.g.GetEdge(edgeID)
		if err != nil {
			return nil, 0, invalidArgumentError(err.Error())
		}
		var next int64
		if e.From == cur {
			next = e.To
		} else {
			next = e.From
		}
		nodeIDs = append(nodeIDs, next)
		cur = next
	}

	return nodeIDs, cur, nil
}

// problematicWaypoints collects the node ids appearing on either side
// of any unreachable pair in m.
func problematicWaypoints(m *tspmatrix.TspMatrix, waypoints []int64) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, pair := range m.UnreachablePairs() {
		for _, idx := range pair {
			id := waypoints[idx]
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	return ids
}
