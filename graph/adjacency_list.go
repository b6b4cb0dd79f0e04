package graph

import "github.com/oroutengine/ogr/geo"

// AddNode inserts a node into the graph. Returns ErrDuplicateNodeID if a
// node with this id already exists.
//
// Complexity: O(1).
func (g *Graph) AddNode(id int64, coord geo.Coordinate) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[id] = &Node{ID: id, Coord: coord}

	return nil
}

// HasNode reports whether a node with the given id exists.
//
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// GetNode returns the node with the given id.
//
// Complexity: O(1).
func (g *Graph) GetNode(id int64) (*Node, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// NodeCount returns the number of nodes in the graph.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// AddEdge inserts a directed edge. Both from and to must already exist as
// nodes (ErrNodeNotFound otherwise); id must be unused (ErrDuplicateEdgeID
// otherwise). tags may be nil, in which case an empty map is stored.
// AddEdge rebuilds the adjacency entries for from (and, if the edge is not
// one-way, to) incrementally; BuildAdjacency is only needed after a bulk
// load that bypassed AddEdge (e.g. the snapshot codec).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, from, to int64, oneWay bool, dist geo.Distance, tags map[string]string) error {
	g.muNodes.RLock()
	_, fromOK := g.nodes[from]
	_, toOK := g.nodes[to]
	g.muNodes.RUnlock()
	if !fromOK {
		return &nodeRefError{node: from}
	}
	if !toOK {
		return &nodeRefError{node: to}
	}

	if tags == nil {
		tags = make(map[string]string)
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if _, exists := g.edges[id]; exists {
		return ErrDuplicateEdgeID
	}

	e := &Edge{ID: id, From: from, To: to, OneWay: oneWay, Dist: dist, Tags: tags}
	g.edges[id] = e
	g.adjacency[from] = append(g.adjacency[from], id)
	if !oneWay && from != to {
		g.adjacency[to] = append(g.adjacency[to], id)
	}

	return nil
}

// GetEdge returns the edge with the given id.
//
// Complexity: O(1).
func (g *Graph) GetEdge(id int64) (*Edge, error) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeCount returns the number of edges in the graph.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.edges)
}

// Outgoing returns the ids of edges incident on nodeID: every edge with
// From == nodeID, plus every non-one-way edge with To == nodeID. Returns
// ErrNodeNotFound if nodeID is not in the graph.
//
// Complexity: O(deg(nodeID)).
func (g *Graph) Outgoing(nodeID int64) ([]int64, error) {
	g.muNodes.RLock()
	_, ok := g.nodes[nodeID]
	g.muNodes.RUnlock()
	if !ok {
		return nil, ErrNodeNotFound
	}

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	ids := g.adjacency[nodeID]
	out := make([]int64, len(ids))
	copy(out, ids)

	return out, nil
}

// BuildAdjacency recomputes the adjacency index from the current edge
// table. It is idempotent and safe to call after a bulk edge load (such
// as snapshot decoding) that did not go through AddEdge.
//
// Complexity: O(E).
func (g *Graph) BuildAdjacency() {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	g.adjacency = make(map[int64][]int64, len(g.nodes))
	var e *Edge
	for _, e = range g.edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], e.ID)
		if !e.OneWay && e.From != e.To {
			g.adjacency[e.To] = append(g.adjacency[e.To], e.ID)
		}
	}
}

// Clear drops all nodes, edges, and adjacency entries, returning the
// graph to its freshly constructed state.
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muNodes.Lock()
	g.nodes = make(map[int64]*Node)
	g.muNodes.Unlock()

	g.muEdges.Lock()
	g.edges = make(map[int64]*Edge)
	g.adjacency = make(map[int64][]int64)
	g.hasBounds = false
	g.muEdges.Unlock()
}

// SetBounds records the graph's bounding box.
//
// Complexity: O(1).
func (g *Graph) SetBounds(minLat, maxLat, minLon, maxLon float64) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	g.hasBounds = true
	g.minLat, g.maxLat, g.minLon, g.maxLon = minLat, maxLat, minLon, maxLon
}

// Bounds returns the graph's bounding box and whether one has been set.
//
// Complexity: O(1).
func (g *Graph) Bounds() (minLat, maxLat, minLon, maxLon float64, ok bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return g.minLat, g.maxLat, g.minLon, g.maxLon, g.hasBounds
}

// nodeRefError wraps ErrNodeNotFound with the offending node id.
type nodeRefError struct {
	node int64
}

func (e *nodeRefError) Error() string {
	return ErrNodeNotFound.Error()
}

func (e *nodeRefError) Unwrap() error {
	return ErrNodeNotFound
}

// NodeID returns the id that could not be resolved.
func (e *nodeRefError) NodeID() int64 {
	return e.node
}
