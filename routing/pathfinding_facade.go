package routing

import (
	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/pathfindingfactory"
	"github.com/oroutengine/ogr/profile"
)

// PathfindingFacade answers single-source single-target shortest path
// queries over a shared graph.
type PathfindingFacade struct {
	g *graph.Graph
}

// NewPathfindingFacade constructs a facade over g.
func NewPathfindingFacade(g *graph.Graph) *PathfindingFacade {
	return &PathfindingFacade{g: g}
}

// FindPath validates start/end existence, constructs the named
// algorithm, and runs it, returning a fully packaged PathResult.
// p may be nil, meaning no vehicle restrictions apply.
func (f *PathfindingFacade) FindPath(startID, endID int64, algoName string, p *profile.Profile) (PathResult, error) {
	if !f.g.HasNode(startID) {
		return PathResult{}, nodeNotFoundError(startID)
	}
	if !f.g.HasNode(endID) {
		return PathResult{}, nodeNotFoundError(endID)
	}

	algo, err := pathfindingfactory.ByName(algoName)
	if err != nil {
		return PathResult{}, invalidArgumentError(err.Error())
	}

	if p == nil {
		p = profile.NoRestrictions()
	}

	res, err := algo.FindPath(f.g, startID, endID, p)
	if err != nil {
		return PathResult{}, invalidArgumentError(err.Error())
	}

	nodeIDs, total, err := f.expand(startID, res.EdgeIDs)
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{
		EdgeIDs:       res.EdgeIDs,
		NodeIDs:       nodeIDs,
		TotalDistance: total,
		NodesExplored: res.NodesExplored,
		Elapsed:       res.Elapsed,
		Algorithm:     algo.Name(),
	}, nil
}

// FindPathAsync dispatches FindPath on a background goroutine and
// delivers its outcome on the returned channel, which is closed after
// the single terminal event. The profile, if non-nil, is cloned
// before dispatch so the goroutine's lifetime is independent of the
// caller's pointer.
func (f *PathfindingFacade) FindPathAsync(startID, endID int64, algoName string, p *profile.Profile) <-chan PathEvent {
	ch := make(chan PathEvent, 1)

	var clone *profile.Profile
	if p != nil {
		clone = p.Clone()
	}

	go func() {
		res, err := f.FindPath(startID, endID, algoName, clone)
		if err != nil {
			ch <- PathEvent{Err: err}
		} else {
			ch <- PathEvent{Result: &res}
		}
		close(ch)
	}()

	return ch
}

// expand derives the node sequence from an edge sequence (source of
// the first edge, then each edge's target in turn) and sums the
// edges' distances. An empty edgeIDs yields a nil node sequence and
// zero distance.
func (f *PathfindingFacade) expand(start int64, edgeIDs []int64) ([]int64, geo.Distance, error) {
	if len(edgeIDs) == 0 {
		return nil, 0, nil
	}

	nodeIDs := make([]int64, 0, len(edgeIDs)+1)
	nodeIDs = append(nodeIDs, start)

	var total float64
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
		total += e.Dist.Meters()
		cur = next
	}

	d, err := geo.NewDistance(total)
	if err != nil {
		d = 0
	}

	return nodeIDs, d, nil
}
