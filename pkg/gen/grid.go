package gen

import (
	"fmt"

	"github.com/matzehuels/graphgen/pkg/stream"
)

// GridGenerator grows a square grid one ring at a time. Nodes are named
// "<x>_<y>" and positioned with AddNodeAt, so sinks that understand the
// "xy" attribute can lay the graph out without any computation.
//
// After n steps the grid is n×n: step k adds the nodes with max coordinate
// k-1 and wires them to their left and upper neighbors.
type GridGenerator struct {
	*Base
	size  int
	torus bool
	wrap  []string
}

// NewGridGenerator creates a grid generator pushing events into sink.
func NewGridGenerator(sink stream.Sink) *GridGenerator {
	return &GridGenerator{Base: NewBase(sink)}
}

// SetTorus toggles torus mode: after every growth step the grid's opposite
// borders are connected, so every node keeps degree four. The wrap edges are
// removed and recreated as the grid grows. Takes effect from the next
// growth step.
func (g *GridGenerator) SetTorus(on bool) { g.torus = on }

// Begin emits the corner node at the origin. Calling Begin again restarts
// the run.
func (g *GridGenerator) Begin() {
	g.size = 1
	g.wrap = nil
	g.AddNodeAt(gridID(0, 0), 0, 0)
}

// NextEvents grows the grid by one ring. It always reports true; the grid
// can grow indefinitely.
func (g *GridGenerator) NextEvents() bool {
	s := g.size

	// Right edge of the new ring first: (s,0) .. (s,s-1). Emitting it before
	// the bottom edge keeps every edge's endpoints already announced.
	for y := 0; y < s; y++ {
		g.addGridNode(s, y)
	}
	// Bottom edge of the new ring, corner included: (0,s) .. (s,s).
	for x := 0; x <= s; x++ {
		g.addGridNode(x, s)
	}

	g.size++
	if g.torus {
		g.rewrap()
	}
	return true
}

// rewrap drops the previous ring's border connections and closes the
// current borders onto each other.
func (g *GridGenerator) rewrap() {
	for _, id := range g.wrap {
		g.DelEdge(id)
	}
	g.wrap = g.wrap[:0]

	last := g.size - 1
	if last < 2 {
		// A 2-wide grid's borders are already neighbors.
		return
	}
	for y := 0; y <= last; y++ {
		g.wrap = append(g.wrap, g.AddEdge("", gridID(last, y), gridID(0, y)))
	}
	for x := 0; x <= last; x++ {
		g.wrap = append(g.wrap, g.AddEdge("", gridID(x, last), gridID(x, 0)))
	}
}

func (g *GridGenerator) addGridNode(x, y int) {
	g.AddNodeAt(gridID(x, y), float64(x), float64(y))
	if x > 0 {
		g.AddEdge("", gridID(x-1, y), gridID(x, y))
	}
	if y > 0 {
		g.AddEdge("", gridID(x, y-1), gridID(x, y))
	}
}

func gridID(x, y int) string {
	return fmt.Sprintf("%d_%d", x, y)
}
