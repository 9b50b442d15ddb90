// Package territory derives the flat territory connectivity graph from a
// hexagon grid. The graph is a pure function of grid state and is never
// stored back.
package territory

import (
	"github.com/google/uuid"
)

// EdgeKind tags how an edge was derived. Rendering and analysis depend on
// the distinction.
type EdgeKind string

const (
	// EdgeInternal joins two territories inside the same hexagon.
	EdgeInternal EdgeKind = "internal"
	// EdgeInterHexagon joins territories across a declared side connection.
	EdgeInterHexagon EdgeKind = "inter_hexagon"
)

// Node is a territory in the derived graph, tagged with its owning hexagon.
type Node struct {
	ID    uuid.UUID
	HexID uuid.UUID
}

// Edge is an undirected edge between two territories. Parallel edges
// between the same pair are kept, not merged: the internal pass and the
// inter-hexagon pass record their findings independently.
type Edge struct {
	A, B uuid.UUID
	Kind EdgeKind
}

// Graph is the derived undirected territory graph.
type Graph struct {
	nodes []Node
	edges []Edge
	index map[uuid.UUID]int
	adj   map[uuid.UUID][]uuid.UUID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[uuid.UUID]int),
		adj:   make(map[uuid.UUID][]uuid.UUID),
	}
}

// AddNode registers a territory under its owning hexagon. Re-adding an id
// is a no-op.
func (g *Graph) AddNode(id, hexID uuid.UUID) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, HexID: hexID})
}

// AddEdge appends an undirected edge. Edges are never deduplicated; calling
// twice for the same pair records two parallel edges.
func (g *Graph) AddEdge(a, b uuid.UUID, kind EdgeKind) {
	g.edges = append(g.edges, Edge{A: a, B: b, Kind: kind})
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// EdgesOfKind returns the edges carrying the given tag.
func (g *Graph) EdgesOfKind(kind EdgeKind) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Neighbors returns the adjacency list of a node. Parallel edges yield
// repeated entries.
func (g *Graph) Neighbors(id uuid.UUID) []uuid.UUID {
	return g.adj[id]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// HexagonOf returns the owning hexagon id of a territory node.
func (g *Graph) HexagonOf(id uuid.UUID) (uuid.UUID, bool) {
	i, ok := g.index[id]
	if !ok {
		return uuid.UUID{}, false
	}
	return g.nodes[i].HexID, true
}

// WithinDistance returns the set of nodes at graph distance <= radius from
// start, including start itself. Implemented as rounds of neighbor
// expansion, one per unit of distance.
func (g *Graph) WithinDistance(start uuid.UUID, radius int) map[uuid.UUID]bool {
	reached := map[uuid.UUID]bool{start: true}
	frontier := []uuid.UUID{start}
	for hop := 0; hop < radius; hop++ {
		var next []uuid.UUID
		for _, id := range frontier {
			for _, n := range g.adj[id] {
				if !reached[n] {
					reached[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return reached
}

// Distance returns the shortest-path hop count between two nodes, or -1 if
// unreachable.
func (g *Graph) Distance(a, b uuid.UUID) int {
	if a == b {
		return 0
	}
	reached := map[uuid.UUID]bool{a: true}
	frontier := []uuid.UUID{a}
	dist := 0
	for len(frontier) > 0 {
		dist++
		var next []uuid.UUID
		for _, id := range frontier {
			for _, n := range g.adj[id] {
				if n == b {
					return dist
				}
				if !reached[n] {
					reached[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return -1
}
