// Package export serializes generated graphs to JSON and back.
//
// The format is the canonical snapshot of a generation run: sorted nodes and
// edges with their attributes. It is human-readable and round-trip safe:
// generate → export → re-import produces an equivalent graph.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// =============================================================================
// Serialization Types
// =============================================================================

// Snapshot is the serialization format for a graph.
type Snapshot struct {
	ID    string `json:"id,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is the serialized form of one vertex.
type Node struct {
	ID    string         `json:"id"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Edge is the serialized form of one edge.
type Edge struct {
	ID       string         `json:"id"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Directed bool           `json:"directed,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty"`
}

// =============================================================================
// Graph ↔ Snapshot Conversion
// =============================================================================

// FromGraph converts a graph to its serialization format.
// Nodes and edges are sorted by ID for deterministic output.
func FromGraph(g *graph.Graph) Snapshot {
	out := Snapshot{
		ID:    g.ID(),
		Nodes: make([]Node, 0, g.NodeCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, Node{ID: n.ID, Attrs: copyAttrs(n.Attrs)})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Edge{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Directed: e.Directed,
			Attrs:    copyAttrs(e.Attrs),
		})
	}
	return out
}

// ToGraph rebuilds a graph from its serialization format.
// The target graph is non-strict, so malformed snapshots (edges naming
// unknown nodes) still import; the missing endpoints are created.
func ToGraph(s Snapshot) *graph.Graph {
	g := graph.New(s.ID)
	for _, n := range s.Nodes {
		node := g.AddNode(n.ID)
		for k, v := range n.Attrs {
			node.Attrs[k] = v
		}
	}
	for _, e := range s.Edges {
		edge := g.AddEdge(e.ID, e.From, e.To, e.Directed)
		for k, v := range e.Attrs {
			edge.Attrs[k] = v
		}
	}
	return g
}

func copyAttrs(a graph.Attributes) map[string]any {
	if len(a) == 0 {
		return nil
	}
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// =============================================================================
// I/O
// =============================================================================

// Marshal converts a graph to indented JSON bytes.
func Marshal(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as indented JSON to w.
func Write(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a graph to a JSON file created with 0644 permissions.
func WriteFile(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a JSON snapshot from r and rebuilds the graph.
// Element identifiers are validated; a snapshot with empty or control-
// character ids is rejected rather than imported.
func Read(r io.Reader) (*graph.Graph, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for _, n := range s.Nodes {
		if err := errors.ValidateElementID(n.ID); err != nil {
			return nil, fmt.Errorf("node: %w", err)
		}
	}
	for _, e := range s.Edges {
		if err := errors.ValidateElementID(e.ID); err != nil {
			return nil, fmt.Errorf("edge: %w", err)
		}
	}
	return ToGraph(s), nil
}

// ReadFile reads a JSON file and rebuilds the graph.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
