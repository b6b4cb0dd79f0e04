package pathfinding

import (
	"container/heap"
	"math"

	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/profile"
)

// edgeCost is the traversal cost of an edge under a profile: physical
// distance divided by the profile's speed factor for the edge's
// highway class, so preferred classes (factor > 1) are cheaper and
// avoided classes (0 < factor < 1) are more expensive. Blocked classes
// (factor == 0) are never reached here; they are filtered out of
// relaxation by IsRoadSuitable before this is called.
func edgeCost(e *graph.Edge, p *profile.Profile) float64 {
	f := p.Factor(e.HighwayClass())
	if f <= 0 {
		return math.Inf(1)
	}

	return e.Dist.Meters() / f
}

// nodeItem is a single frontier entry: a node and its tentative
// distance from the search's source.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist, used
// under the lazy-decrease-key discipline: superseded entries are left
// in place and discarded on pop once their node is finalized.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// runner holds the mutable state of a single Dijkstra or A* search.
// When heuristic is non-nil the search behaves as A*; when nil it is
// plain Dijkstra.
type runner struct {
	g       *graph.Graph
	p       *profile.Profile
	start   int64
	end     int64
	cap     int
	heuristic func(nodeID int64) float64

	dist       map[int64]float64
	prevEdge   map[int64]int64
	visited    map[int64]bool
	pq         nodePQ
	expansions int
	capped     bool
}

func newRunner(g *graph.Graph, p *profile.Profile, start, end int64, heuristic func(int64) float64, cap int) *runner {
	return &runner{
		g:         g,
		p:         p,
		start:     start,
		end:       end,
		cap:       cap,
		heuristic: heuristic,
		dist:      make(map[int64]float64),
		prevEdge:  make(map[int64]int64),
		visited:   make(map[int64]bool),
	}
}

func (r *runner) priority(id int64, dist float64) float64 {
	if r.heuristic == nil {
		return dist
	}

	return dist + r.heuristic(id)
}

func (r *runner) run() {
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.start, dist: r.priority(r.start, 0)})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.expansions++

		if u == r.end {
			return
		}
		if r.expansions >= r.cap {
			r.capped = true
			return
		}

		r.relax(u)
	}
}

func (r *runner) relax(u int64) {
	outgoing, err := r.g.Outgoing(u)
	if err != nil {
		return
	}

	var v int64
	for _, edgeID := range outgoing {
		e, err := r.g.GetEdge(edgeID)
		if err != nil {
			continue
		}
		if !r.p.IsRoadSuitable(e.Tags) {
			continue
		}

		if e.From == u {
			v = e.To
		} else {
			v = e.From
		}
		if r.visited[v] {
			continue
		}

		// An equal-cost path replaces the recorded predecessor, so among
		// tied routes to a not-yet-finalized node the last one relaxed wins.
		newDist := r.dist[u] + edgeCost(e, r.p)
		if old, ok := r.dist[v]; ok && newDist > old {
			continue
		}

		r.dist[v] = newDist
		r.prevEdge[v] = edgeID
		heap.Push(&r.pq, &nodeItem{id: v, dist: r.priority(v, newDist)})
	}
}

// reconstruct walks the predecessor-edge chain from end back to start,
// returning the edge ids in start-to-end order. It walks every hop
// (not merely the last), so a multi-hop path is fully recovered.
func reconstruct(g *graph.Graph, prevEdge map[int64]int64, start, end int64) []int64 {
	if start == end {
		return nil
	}

	var edgeIDs []int64
	cur := end
	for cur != start {
		edgeID, ok := prevEdge[cur]
		if !ok {
			return nil
		}
		edgeIDs = append(edgeIDs, edgeID)

		e, err := g.GetEdge(edgeID)
		if err != nil {
			return nil
		}
		if e.To == cur {
			cur = e.From
		} else {
			cur = e.To
		}
	}

	for i, j := 0, len(edgeIDs)-1; i < j; i, j = i+1, j-1 {
		edgeIDs[i], edgeIDs[j] = edgeIDs[j], edgeIDs[i]
	}

	return edgeIDs
}
