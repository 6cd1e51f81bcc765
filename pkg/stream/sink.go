package stream

// Sink receives graph events pushed by a generator.
//
// Calls are synchronous: the generator blocks until the sink returns, and
// events arrive in the exact order the generator produced them. A sink must
// not call back into the generator that is feeding it.
//
// Implementations are not required to be safe for concurrent use; generators
// are single-threaded and drive their sink from one goroutine.
type Sink interface {
	// OnNodeAdded is called after a node with the given ID was created.
	OnNodeAdded(sourceID, nodeID string)

	// OnNodeRemoved is called after the node with the given ID was removed.
	OnNodeRemoved(sourceID, nodeID string)

	// OnEdgeAdded is called after an edge was created between fromID and toID.
	// The directed flag reports whether the edge orientation is significant.
	OnEdgeAdded(sourceID, edgeID, fromID, toID string, directed bool)

	// OnEdgeRemoved is called after the edge with the given ID was removed.
	OnEdgeRemoved(sourceID, edgeID string)

	// OnNodeAttributeAdded is called after an attribute was set on a node.
	OnNodeAttributeAdded(sourceID, nodeID, name string, value any)

	// OnEdgeAttributeAdded is called after an attribute was set on an edge.
	OnEdgeAttributeAdded(sourceID, edgeID, name string, value any)
}

// =============================================================================
// Recorder - In-Memory Event Capture
// =============================================================================

// Recorder is a Sink that appends every event to an in-memory slice.
// It is the standard way to assert on generator output in tests and to
// replay a generation run into another sink later.
type Recorder struct {
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Events returns the recorded events in arrival order.
// The returned slice is the recorder's backing store; callers that mutate it
// should copy it first.
func (r *Recorder) Events() []Event { return r.events }

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Reset discards all recorded events.
func (r *Recorder) Reset() { r.events = r.events[:0] }

// Replay pushes the recorded events into another sink in arrival order.
func (r *Recorder) Replay(s Sink) {
	for _, e := range r.events {
		Dispatch(e, s)
	}
}

// Dispatch delivers one event to a sink through the callback matching its
// type. Events with an unknown type are dropped.
func Dispatch(e Event, s Sink) {
	switch e.Type {
	case NodeAdded:
		s.OnNodeAdded(e.SourceID, e.ElementID)
	case NodeRemoved:
		s.OnNodeRemoved(e.SourceID, e.ElementID)
	case EdgeAdded:
		s.OnEdgeAdded(e.SourceID, e.ElementID, e.From, e.To, e.Directed)
	case EdgeRemoved:
		s.OnEdgeRemoved(e.SourceID, e.ElementID)
	case NodeAttributeAdded:
		s.OnNodeAttributeAdded(e.SourceID, e.ElementID, e.Name, e.Value)
	case EdgeAttributeAdded:
		s.OnEdgeAttributeAdded(e.SourceID, e.ElementID, e.Name, e.Value)
	}
}

func (r *Recorder) OnNodeAdded(sourceID, nodeID string) {
	r.events = append(r.events, Event{Type: NodeAdded, SourceID: sourceID, ElementID: nodeID})
}

func (r *Recorder) OnNodeRemoved(sourceID, nodeID string) {
	r.events = append(r.events, Event{Type: NodeRemoved, SourceID: sourceID, ElementID: nodeID})
}

func (r *Recorder) OnEdgeAdded(sourceID, edgeID, fromID, toID string, directed bool) {
	r.events = append(r.events, Event{Type: EdgeAdded, SourceID: sourceID, ElementID: edgeID, From: fromID, To: toID, Directed: directed})
}

func (r *Recorder) OnEdgeRemoved(sourceID, edgeID string) {
	r.events = append(r.events, Event{Type: EdgeRemoved, SourceID: sourceID, ElementID: edgeID})
}

func (r *Recorder) OnNodeAttributeAdded(sourceID, nodeID, name string, value any) {
	r.events = append(r.events, Event{Type: NodeAttributeAdded, SourceID: sourceID, ElementID: nodeID, Name: name, Value: value})
}

func (r *Recorder) OnEdgeAttributeAdded(sourceID, edgeID, name string, value any) {
	r.events = append(r.events, Event{Type: EdgeAttributeAdded, SourceID: sourceID, ElementID: edgeID, Name: name, Value: value})
}

// =============================================================================
// Multi - Fan-Out
// =============================================================================

// Multi fans every event out to several sinks in registration order.
// A nil or empty Multi drops all events.
type Multi []Sink

// NewMulti creates a fan-out sink over the given sinks. Nil entries are skipped.
func NewMulti(sinks ...Sink) Multi {
	out := make(Multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m Multi) OnNodeAdded(sourceID, nodeID string) {
	for _, s := range m {
		s.OnNodeAdded(sourceID, nodeID)
	}
}

func (m Multi) OnNodeRemoved(sourceID, nodeID string) {
	for _, s := range m {
		s.OnNodeRemoved(sourceID, nodeID)
	}
}

func (m Multi) OnEdgeAdded(sourceID, edgeID, fromID, toID string, directed bool) {
	for _, s := range m {
		s.OnEdgeAdded(sourceID, edgeID, fromID, toID, directed)
	}
}

func (m Multi) OnEdgeRemoved(sourceID, edgeID string) {
	for _, s := range m {
		s.OnEdgeRemoved(sourceID, edgeID)
	}
}

func (m Multi) OnNodeAttributeAdded(sourceID, nodeID, name string, value any) {
	for _, s := range m {
		s.OnNodeAttributeAdded(sourceID, nodeID, name, value)
	}
}

func (m Multi) OnEdgeAttributeAdded(sourceID, edgeID, name string, value any) {
	for _, s := range m {
		s.OnEdgeAttributeAdded(sourceID, edgeID, name, value)
	}
}

// =============================================================================
// Discard - No-Op Sink
// =============================================================================

// Discard is a Sink that drops every event. Useful when only the generator's
// internal bookkeeping matters (e.g. benchmarks).
type Discard struct{}

func (Discard) OnNodeAdded(string, string)                       {}
func (Discard) OnNodeRemoved(string, string)                     {}
func (Discard) OnEdgeAdded(string, string, string, string, bool) {}
func (Discard) OnEdgeRemoved(string, string)                     {}
func (Discard) OnNodeAttributeAdded(string, string, string, any) {}
func (Discard) OnEdgeAttributeAdded(string, string, string, any) {}
