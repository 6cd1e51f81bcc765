// Package graph provides the in-memory graph used by generators for
// bookkeeping and by consumers to materialize an event stream.
//
// The structure is deliberately non-strict: duplicate node additions are
// no-ops, adding an edge whose endpoints do not exist yet creates them, and
// removing an unknown element does nothing. Generators drive the graph from
// event sequences where such situations are legitimate, so none of them is
// an error here. Correctness obligations stay with the code producing the
// events.
//
// Graph implements stream.Sink, so a consumer can rebuild the emitted
// structure by attaching a Graph directly to a generator:
//
//	g := graph.New("collected")
//	r := gen.NewRandomGenerator(g, 2.0)
//
// Graph is not safe for concurrent use without external synchronization.
package graph

import (
	"maps"
	"slices"
)

// Attributes stores arbitrary key-value pairs attached to nodes and edges.
// Maps are never nil on elements owned by a Graph.
type Attributes map[string]any

// Node is a vertex with its attributes and current degree bookkeeping.
type Node struct {
	ID     string
	Attrs  Attributes
	degree int
}

// Degree returns the number of edges incident to the node.
// Self-loops count twice, matching the usual graph-theoretic convention.
func (n *Node) Degree() int { return n.degree }

// Edge is a connection between two nodes. For undirected edges the From/To
// distinction records emission order but carries no semantics.
type Edge struct {
	ID       string
	From     string
	To       string
	Directed bool
	Attrs    Attributes
}

// Graph is a non-strict mutable graph keyed by node and edge IDs.
type Graph struct {
	id    string
	nodes map[string]*Node
	edges map[string]*Edge
}

// New creates an empty graph with the given identifier.
// The identifier only labels the graph (e.g. in exports); it does not need
// to be unique.
func New(id string) *Graph {
	return &Graph{
		id:    id,
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// ID returns the graph identifier.
func (g *Graph) ID() string { return g.id }

// AddNode inserts a node if it does not exist and returns it.
// Adding an existing ID returns the existing node unchanged.
func (g *Graph) AddNode(id string) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Attrs: Attributes{}}
	g.nodes[id] = n
	return n
}

// RemoveNode removes a node and all edges incident to it.
// Removing an unknown ID is a no-op.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.removeEdge(eid)
		}
	}
	delete(g.nodes, id)
}

// AddEdge inserts an edge between from and to, creating either endpoint if it
// does not exist yet, and returns the edge. Adding an existing edge ID
// returns the existing edge unchanged.
func (g *Graph) AddEdge(id, from, to string, directed bool) *Edge {
	if e, ok := g.edges[id]; ok {
		return e
	}
	g.AddNode(from).degree++
	g.AddNode(to).degree++
	e := &Edge{ID: id, From: from, To: to, Directed: directed, Attrs: Attributes{}}
	g.edges[id] = e
	return e
}

// RemoveEdge removes the edge with the given ID.
// Removing an unknown ID is a no-op.
func (g *Graph) RemoveEdge(id string) {
	g.removeEdge(id)
}

func (g *Graph) removeEdge(id string) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	if n, ok := g.nodes[e.From]; ok {
		n.degree--
	}
	if n, ok := g.nodes[e.To]; ok {
		n.degree--
	}
	delete(g.edges, id)
}

// Node returns the node with the given ID, or nil if absent.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// Edge returns the edge with the given ID, or nil if absent.
func (g *Graph) Edge(id string) *Edge { return g.edges[id] }

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether an edge with the given ID exists.
func (g *Graph) HasEdge(id string) bool {
	_, ok := g.edges[id]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeIDs returns all node IDs in sorted order.
// Sorting keeps iteration deterministic for exports and tests.
func (g *Graph) NodeIDs() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// EdgeIDs returns all edge IDs in sorted order.
func (g *Graph) EdgeIDs() []string {
	return slices.Sorted(maps.Keys(g.edges))
}

// Nodes returns all nodes sorted by ID.
// The returned slice contains the graph's own node structs.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, id := range g.NodeIDs() {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges sorted by ID.
// The returned slice contains the graph's own edge structs.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, id := range g.EdgeIDs() {
		out = append(out, g.edges[id])
	}
	return out
}

// Clear removes all nodes and edges. The graph identifier is kept.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
}

// SetNodeAttribute sets an attribute on a node, creating the node if needed.
func (g *Graph) SetNodeAttribute(id, name string, value any) {
	g.AddNode(id).Attrs[name] = value
}

// SetEdgeAttribute sets an attribute on an edge if it exists.
// Unknown edge IDs are tolerated silently.
func (g *Graph) SetEdgeAttribute(id, name string, value any) {
	if e, ok := g.edges[id]; ok {
		e.Attrs[name] = value
	}
}
