// Package dot renders generated graphs with Graphviz.
//
// [ToDOT] produces Graphviz DOT source from a graph; [RenderSVG] and
// [RenderPNG] rasterize it in-process via [github.com/goccy/go-graphviz].
// Nodes carrying an "xy" attribute (emitted by positional generators such
// as the grid model) are pinned to those coordinates.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphgen/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Labels renders each element's "label" attribute when present.
	// Without it, node IDs are used and edges stay unlabeled.
	Labels bool

	// UsePositions pins nodes with an "xy" attribute to their coordinates
	// and switches the layout engine to neato-compatible output.
	UsePositions bool
}

// ToDOT converts a graph to Graphviz DOT source.
// Output is deterministic: elements are emitted in sorted ID order, and the
// graph keyword (digraph/graph) follows whether any edge is directed.
func ToDOT(g *graph.Graph, opts Options) string {
	directed := false
	for _, e := range g.Edges() {
		if e.Directed {
			directed = true
			break
		}
	}

	keyword, connector := "graph", "--"
	if directed {
		keyword, connector = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", keyword, g.ID())
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := edgeAttrs(e, opts)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, connector, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q %s %q [%s];\n", e.From, connector, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *graph.Node, opts Options) []string {
	label := n.ID
	if opts.Labels {
		if l, ok := n.Attrs["label"].(string); ok {
			label = l
		}
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	if opts.UsePositions {
		if xy, ok := n.Attrs["xy"].([]float64); ok && len(xy) == 2 {
			attrs = append(attrs, fmt.Sprintf("pos=%q", fmt.Sprintf("%g,%g!", xy[0], xy[1])))
		}
	}
	return attrs
}

func edgeAttrs(e *graph.Edge, opts Options) []string {
	if !opts.Labels {
		return nil
	}
	if l, ok := e.Attrs["label"].(string); ok {
		return []string{fmt.Sprintf("label=%q", l)}
	}
	return nil
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
