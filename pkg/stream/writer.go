package stream

import (
	"encoding/json"
	"io"
)

// WriterSink encodes events as JSON Lines to an io.Writer, one event per line.
// The format is the JSON encoding of [Event], so a recorded stream can be
// re-read with [ReadEvents].
//
// Encoding errors are retained rather than propagated mid-stream: the sink
// stops writing after the first failure and Err reports it. This matches the
// synchronous sink contract, which has no error return path.
type WriterSink struct {
	enc *json.Encoder
	err error
}

// NewWriterSink creates a sink writing JSON Lines to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{enc: json.NewEncoder(w)}
}

// Err returns the first write error encountered, or nil.
// Callers should check it once the generation run is finished.
func (w *WriterSink) Err() error { return w.err }

func (w *WriterSink) write(e Event) {
	if w.err != nil {
		return
	}
	w.err = w.enc.Encode(e)
}

func (w *WriterSink) OnNodeAdded(sourceID, nodeID string) {
	w.write(Event{Type: NodeAdded, SourceID: sourceID, ElementID: nodeID})
}

func (w *WriterSink) OnNodeRemoved(sourceID, nodeID string) {
	w.write(Event{Type: NodeRemoved, SourceID: sourceID, ElementID: nodeID})
}

func (w *WriterSink) OnEdgeAdded(sourceID, edgeID, fromID, toID string, directed bool) {
	w.write(Event{Type: EdgeAdded, SourceID: sourceID, ElementID: edgeID, From: fromID, To: toID, Directed: directed})
}

func (w *WriterSink) OnEdgeRemoved(sourceID, edgeID string) {
	w.write(Event{Type: EdgeRemoved, SourceID: sourceID, ElementID: edgeID})
}

func (w *WriterSink) OnNodeAttributeAdded(sourceID, nodeID, name string, value any) {
	w.write(Event{Type: NodeAttributeAdded, SourceID: sourceID, ElementID: nodeID, Name: name, Value: value})
}

func (w *WriterSink) OnEdgeAttributeAdded(sourceID, edgeID, name string, value any) {
	w.write(Event{Type: EdgeAttributeAdded, SourceID: sourceID, ElementID: edgeID, Name: name, Value: value})
}

// ReadEvents decodes a JSON Lines event stream produced by WriterSink.
// It reads until EOF and returns the decoded events in order.
func ReadEvents(r io.Reader) ([]Event, error) {
	dec := json.NewDecoder(r)
	var events []Event
	for {
		var e Event
		if err := dec.Decode(&e); err != nil {
			if err == io.EOF {
				return events, nil
			}
			return events, err
		}
		events = append(events, e)
	}
}
