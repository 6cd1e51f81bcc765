package gen

import (
	"github.com/matzehuels/graphgen/pkg/graph"
	"github.com/matzehuels/graphgen/pkg/stream"
)

// Generator is the driving contract every graph generator exposes.
//
// Callers run the loop Begin, then NextEvents until it returns false (or
// until they decide they have enough graph), then End. End only clears
// bookkeeping; a generator may be restarted with another Begin afterwards.
type Generator interface {
	// Begin starts a generation run and emits its initial events.
	Begin()

	// NextEvents produces the next increment of events and reports whether
	// the generator can produce more.
	NextEvents() bool

	// End finalizes the run and clears kept data. It emits no events and is
	// idempotent.
	End()
}

// Base is the engine concrete generators build on. It owns the event
// emission protocol: every AddNode/AddEdge call is turned into ordered sink
// events, attribute values are drawn from the shared random source, edge
// orientation is decided by the direction configuration, and all of it is
// optionally mirrored into an internal graph for bookkeeping.
//
// The zero value is not usable; use NewBase. Base is not safe for concurrent
// use.
type Base struct {
	sink     stream.Sink
	sourceID string
	rng      *Rand

	directed         bool
	randomlyDirected bool

	nodeLabels bool
	edgeLabels bool

	nodeAttrs attributeRegistry
	edgeAttrs attributeRegistry

	// internal is non-nil exactly while internal-graph usage is enabled.
	internal *graph.Graph
}

// NewBase creates an engine pushing events into sink. A nil sink discards
// all events, which still exercises the internal bookkeeping.
//
// The source identifier is assigned from a process-wide counter and is
// unique for the lifetime of the process. Edges are undirected, no labels
// or attributes are emitted, and the internal graph is off until enabled.
func NewBase(sink stream.Sink) *Base {
	if sink == nil {
		sink = stream.Discard{}
	}
	return &Base{
		sink:     sink,
		sourceID: nextSourceID(),
		rng:      NewRand(1),
	}
}

// SourceID returns the generator's source identifier, fixed at construction.
func (b *Base) SourceID() string { return b.sourceID }

// SetRandomSeed reseeds the random source, discarding prior draw state.
func (b *Base) SetRandomSeed(seed int64) {
	b.rng.Seed(seed)
}

// Rand exposes the generator's random source so concrete generators make
// all their stochastic decisions from the same deterministic stream.
func (b *Base) Rand() *Rand { return b.rng }

// SetDirectedEdges configures edge orientation for subsequently generated
// edges. When randomly is also set, each directed edge's endpoints are
// swapped with probability one half, consuming one extra draw per edge.
//
// randomly is only applied while directed is true. Disabling directed edges
// does not clear a previously set random orientation; re-enabling directed
// edges reactivates it. Callers porting generators rely on this toggle
// behavior.
func (b *Base) SetDirectedEdges(directed, randomly bool) {
	b.directed = directed
	if directed && randomly {
		b.randomlyDirected = randomly
	}
}

// AddNodeLabels controls whether each generated node gets a "label"
// attribute equal to its identifier.
func (b *Base) AddNodeLabels(on bool) { b.nodeLabels = on }

// AddEdgeLabels controls whether each generated edge gets a "label"
// attribute equal to its identifier.
func (b *Base) AddEdgeLabels(on bool) { b.edgeLabels = on }

// =============================================================================
// Attribute Registration
// =============================================================================

// AddNodeAttribute registers a factory invoked for every generated node.
// Registering an existing name overwrites its factory but keeps its position
// in the application order.
func (b *Base) AddNodeAttribute(name string, factory AttributeFactory) {
	b.nodeAttrs.set(name, factory)
}

// AddNodeAttributeRange registers a node attribute with values uniformly
// drawn from [min, max).
func (b *Base) AddNodeAttributeRange(name string, min, max float64) {
	b.nodeAttrs.set(name, UniformRange(min, max))
}

// AddNodeAttributeUnit registers a node attribute with values uniformly
// drawn from [0, 1).
func (b *Base) AddNodeAttributeUnit(name string) {
	b.AddNodeAttributeRange(name, 0, 1)
}

// RemoveNodeAttribute deregisters a node attribute. Unknown names are
// tolerated.
func (b *Base) RemoveNodeAttribute(name string) {
	b.nodeAttrs.remove(name)
}

// AddEdgeAttribute registers a factory invoked for every generated edge.
func (b *Base) AddEdgeAttribute(name string, factory AttributeFactory) {
	b.edgeAttrs.set(name, factory)
}

// AddEdgeAttributeRange registers an edge attribute with values uniformly
// drawn from [min, max).
func (b *Base) AddEdgeAttributeRange(name string, min, max float64) {
	b.edgeAttrs.set(name, UniformRange(min, max))
}

// AddEdgeAttributeUnit registers an edge attribute with values uniformly
// drawn from [0, 1).
func (b *Base) AddEdgeAttributeUnit(name string) {
	b.AddEdgeAttributeRange(name, 0, 1)
}

// RemoveEdgeAttribute deregisters an edge attribute. Unknown names are
// tolerated.
func (b *Base) RemoveEdgeAttribute(name string) {
	b.edgeAttrs.remove(name)
}

// =============================================================================
// Internal Graph
// =============================================================================

// SetUseInternalGraph enables or disables the internal mirror graph.
//
// Enabling allocates a fresh non-strict graph owned exclusively by this
// generator; disabling clears and releases it. Toggling to the current state
// is a no-op, so an already populated mirror survives redundant enables.
func (b *Base) SetUseInternalGraph(on bool) {
	if !on && b.internal != nil {
		b.internal.Clear()
		b.internal = nil
	}
	if on && b.internal == nil {
		b.internal = graph.New(b.sourceID + "-internal")
	}
}

// IsUsingInternalGraph reports whether the internal mirror graph is enabled.
func (b *Base) IsUsingInternalGraph() bool { return b.internal != nil }

// Internal returns the internal mirror graph, or nil when disabled.
// Concrete generators use it to query previously generated structure; they
// must not mutate it directly or the mirror drifts from the emitted events.
func (b *Base) Internal() *graph.Graph { return b.internal }

// =============================================================================
// Event Emission
// =============================================================================

// AddNode emits a node with the given identifier: the structural event
// first, then the label attribute if enabled, then one attribute event per
// registered node attribute in registration order.
func (b *Base) AddNode(id string) {
	b.sink.OnNodeAdded(b.sourceID, id)

	if b.nodeLabels {
		b.sink.OnNodeAttributeAdded(b.sourceID, id, "label", id)
	}

	if b.internal != nil {
		b.internal.AddNode(id)
	}

	b.nodeAttrs.each(func(name string, factory AttributeFactory) {
		value := factory(b.rng)
		b.sink.OnNodeAttributeAdded(b.sourceID, id, name, value)
		if b.internal != nil {
			b.internal.SetNodeAttribute(id, name, value)
		}
	})
}

// AddNodeAt is AddNode followed by one extra "xy" attribute event carrying
// the node's position as a two-element slice. The position bypasses the
// attribute registry and consumes no draw.
func (b *Base) AddNodeAt(id string, x, y float64) {
	b.AddNode(id)

	xy := []float64{x, y}
	b.sink.OnNodeAttributeAdded(b.sourceID, id, "xy", xy)

	if b.internal != nil {
		b.internal.SetNodeAttribute(id, "xy", xy)
	}
}

// DelNode removes a node: the mirror is updated first, then the removal
// event is emitted. No existence check is performed; the concrete generator
// is responsible for not re-referencing a removed identifier.
func (b *Base) DelNode(id string) {
	if b.internal != nil {
		b.internal.RemoveNode(id)
	}
	b.sink.OnNodeRemoved(b.sourceID, id)
}

// AddEdge emits an edge between from and to and returns its identifier.
//
// When edges are directed with random orientation, one draw decides whether
// the endpoints are swapped before anything else happens. An empty id is
// synthesized as "<from>_<to>" from the effective endpoints. The structural
// event comes first, then the label attribute if enabled, then one attribute
// event per registered edge attribute in registration order.
func (b *Base) AddEdge(id, from, to string) string {
	if b.directed && b.randomlyDirected && b.rng.Bool() {
		from, to = to, from
	}

	if id == "" {
		id = from + "_" + to
	}

	b.sink.OnEdgeAdded(b.sourceID, id, from, to, b.directed)

	if b.internal != nil {
		b.internal.AddEdge(id, from, to, b.directed)
	}

	if b.edgeLabels {
		b.sink.OnEdgeAttributeAdded(b.sourceID, id, "label", id)
		if b.internal != nil {
			b.internal.SetEdgeAttribute(id, "label", id)
		}
	}

	b.edgeAttrs.each(func(name string, factory AttributeFactory) {
		value := factory(b.rng)
		b.sink.OnEdgeAttributeAdded(b.sourceID, id, name, value)
		if b.internal != nil {
			b.internal.SetEdgeAttribute(id, name, value)
		}
	})

	return id
}

// DelEdge removes an edge: the removal event is emitted first, then the
// mirror is updated. The ordering is deliberately the reverse of DelNode and
// kept for compatibility with existing consumers.
func (b *Base) DelEdge(id string) {
	b.sink.OnEdgeRemoved(b.sourceID, id)
	if b.internal != nil {
		b.internal.RemoveEdge(id)
	}
}

// End clears kept data so the generator can be restarted cleanly. The
// internal graph (if enabled) is emptied but stays enabled; configuration
// and the random source are untouched, and no event is emitted. End is
// idempotent.
func (b *Base) End() {
	b.clearKeptData()
}

// clearKeptData empties the internal mirror graph when enabled.
func (b *Base) clearKeptData() {
	if b.internal != nil {
		b.internal.Clear()
	}
}
