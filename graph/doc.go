// Package graph is the street-network graph store: nodes with
// coordinates, directed tagged edges, an adjacency index, and an
// optional bounding box.
//
// Graph owns its nodes and edges exclusively. The *Node and *Edge
// pointers handed out by Graph methods refer to the graph's own stored
// records, not copies, and must be treated as read-only. AddNode,
// AddEdge, and Clear never modify an existing record, so a previously
// returned pointer stays valid after them.
//
// Two independent sync.RWMutex locks guard the store: one for the
// node table, one for the edge table and the adjacency index. This
// lets pathfinding and TSP precompute (both read-only for their
// duration) proceed without contending on writer locks taken by a
// concurrent loader.
package graph
