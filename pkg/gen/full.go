package gen

import (
	"strconv"

	"github.com/matzehuels/graphgen/pkg/stream"
)

// FullGenerator grows a complete graph: every step adds one node and
// connects it to all previously generated nodes. Node identifiers are
// consecutive integers starting at "0".
//
// The generator never exhausts; callers bound the loop themselves.
type FullGenerator struct {
	*Base
	nodeCount int
}

// NewFullGenerator creates a complete-graph generator pushing events
// into sink.
func NewFullGenerator(sink stream.Sink) *FullGenerator {
	return &FullGenerator{Base: NewBase(sink)}
}

// Begin emits the first node. Calling Begin again restarts the run.
func (g *FullGenerator) Begin() {
	g.nodeCount = 0
	g.addNext()
}

// NextEvents adds one node and connects it to every existing node.
// It always reports true; the model has no natural end.
func (g *FullGenerator) NextEvents() bool {
	g.addNext()
	return true
}

func (g *FullGenerator) addNext() {
	id := strconv.Itoa(g.nodeCount)
	g.AddNode(id)
	for i := 0; i < g.nodeCount; i++ {
		g.AddEdge("", id, strconv.Itoa(i))
	}
	g.nodeCount++
}
