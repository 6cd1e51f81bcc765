package gen

import (
	"strconv"

	"github.com/matzehuels/graphgen/pkg/stream"
)

// RandomGenerator grows a random graph: every step adds one node and links
// it to randomly chosen existing nodes so the average degree converges to
// the configured target. It keeps the internal mirror graph enabled to
// remember which nodes exist and which links are already present.
type RandomGenerator struct {
	*Base
	averageDegree float64
	nodeCount     int
}

// NewRandomGenerator creates a random-graph generator with the given target
// average degree. Degrees below zero are treated as zero.
func NewRandomGenerator(sink stream.Sink, averageDegree float64) *RandomGenerator {
	if averageDegree < 0 {
		averageDegree = 0
	}
	g := &RandomGenerator{Base: NewBase(sink), averageDegree: averageDegree}
	g.SetUseInternalGraph(true)
	return g
}

// Begin emits the first node. Calling Begin again restarts the run with the
// mirror cleared.
func (g *RandomGenerator) Begin() {
	g.clearKeptData()
	g.SetUseInternalGraph(true)
	g.nodeCount = 0
	g.AddNode(strconv.Itoa(g.nodeCount))
	g.nodeCount++
}

// NextEvents adds one node and links it to existing nodes. The number of
// links per step is averageDegree/2 with randomized rounding (one draw), so
// the expected total degree per node converges to averageDegree. It always
// reports true; the model has no natural end.
func (g *RandomGenerator) NextEvents() bool {
	existing := g.Internal().NodeIDs()

	id := strconv.Itoa(g.nodeCount)
	g.AddNode(id)
	g.nodeCount++

	half := g.averageDegree / 2
	links := int(half)
	if g.Rand().Float64() < half-float64(links) {
		links++
	}

	for i := 0; i < links && len(existing) > 0; i++ {
		other := existing[g.Rand().Intn(len(existing))]
		if g.Internal().HasEdge(id+"_"+other) || g.Internal().HasEdge(other+"_"+id) {
			continue
		}
		g.AddEdge("", id, other)
	}
	return true
}
