package graph

import "sort"

// Nodes returns all nodes sorted by id ascending (deterministic order,
// relied on by the snapshot codec and by tests).
//
// Complexity: O(N log N).
func (g *Graph) Nodes() []*Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]*Node, 0, len(g.nodes))
	var n *Node
	for _, n = range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns all edges sorted by id ascending.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
