package tspmatrix

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/pathfinding"
	"github.com/oroutengine/ogr/profile"
)

// New allocates a TspMatrix over the given waypoint node ids, with
// every cell initialized as unreachable (diagonal cells excepted,
// which are always zero). Call Precompute to fill it in.
func New(waypoints []int64) (*TspMatrix, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	return newTspMatrix(waypoints), nil
}

// Precompute fills every off-diagonal cell of m with the shortest
// distance and realizing edge path between the corresponding pair of
// waypoints, using algo and p. Work is distributed by rows across a
// fixed worker pool: W = max(4, min(runtime.NumCPU(), N)) — surplus
// workers beyond N simply exit immediately on their first claim. Each
// worker repeatedly claims the next unassigned row from an atomic
// counter and computes every cell of that row by itself, so rows
// never contend with each other; onProgress, if non-nil, is invoked
// under a mutex once per completed row with (completedPairs,
// totalPairs, percent) — a row contributes its N−1 off-diagonal pairs
// atomically, all at once, when the row finishes.
//
// Precompute respects ctx cancellation: if ctx is done before a
// worker claims its next row, that worker stops early and the
// returned error is ctx.Err(). Rows already completed remain valid
// in m.
func (m *TspMatrix) Precompute(ctx context.Context, g *graph.Graph, algo pathfinding.Algorithm, p *profile.Profile, onProgress func(done, total, percent int)) error {
	for _, id := range m.Waypoints {
		if !g.HasNode(id) {
			return ErrWaypointNotFound
		}
	}

	n := m.N()
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 4 {
		workers = 4
	}

	totalPairs := n * (n - 1)
	pairsPerRow := n - 1

	var nextRow int64 = -1
	var donePairs int64
	var progressMu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)

	worker := func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}

			row := atomic.AddInt64(&nextRow, 1)
			if row >= int64(n) {
				return nil
			}

			computeRow(g, algo, p, m, int(row))

			d := atomic.AddInt64(&donePairs, int64(pairsPerRow))
			if onProgress != nil {
				progressMu.Lock()
				onProgress(int(d), totalPairs, int(d*100/int64(totalPairs)))
				progressMu.Unlock()
			}
		}
	}

	for i := 0; i < workers; i++ {
		group.Go(worker)
	}

	return group.Wait()
}

// computeRow fills every cell of row i, owned exclusively by the
// calling worker for the duration of this call.
func computeRow(g *graph.Graph, algo pathfinding.Algorithm, p *profile.Profile, m *TspMatrix, i int) {
	src := m.Waypoints[i]
	for j := 0; j < m.N(); j++ {
		if i == j {
			continue
		}
		dst := m.Waypoints[j]

		res, err := algo.FindPath(g, src, dst, p)
		if err != nil || len(res.EdgeIDs) == 0 {
			m.dist[i][j] = geo.Inf
			m.path[i][j] = nil
			continue
		}

		var total float64
		for _, edgeID := range res.EdgeIDs {
			e, err := g.GetEdge(edgeID)
			if err != nil {
				continue
			}
			total += e.Dist.Meters()
		}
		d, err := geo.NewDistance(total)
		if err != nil {
			d = geo.Inf
		}
		m.dist[i][j] = d
		m.path[i][j] = res.EdgeIDs
	}
}
