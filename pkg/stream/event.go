package stream

import (
	"encoding/json"
	"fmt"
)

// Type identifies the kind of a graph event.
type Type int

const (
	// NodeAdded signals that a node entered the graph.
	NodeAdded Type = iota
	// NodeRemoved signals that a node left the graph.
	NodeRemoved
	// EdgeAdded signals that an edge entered the graph.
	EdgeAdded
	// EdgeRemoved signals that an edge left the graph.
	EdgeRemoved
	// NodeAttributeAdded signals that an attribute was set on a node.
	NodeAttributeAdded
	// EdgeAttributeAdded signals that an attribute was set on an edge.
	EdgeAttributeAdded
)

// String returns the event type name as used in serialized output.
func (t Type) String() string {
	switch t {
	case NodeAdded:
		return "node_added"
	case NodeRemoved:
		return "node_removed"
	case EdgeAdded:
		return "edge_added"
	case EdgeRemoved:
		return "edge_removed"
	case NodeAttributeAdded:
		return "node_attribute_added"
	case EdgeAttributeAdded:
		return "edge_attribute_added"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the type as its string name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a type from its string name.
// Unknown names are rejected so corrupted streams fail loudly.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "node_added":
		*t = NodeAdded
	case "node_removed":
		*t = NodeRemoved
	case "edge_added":
		*t = EdgeAdded
	case "edge_removed":
		*t = EdgeRemoved
	case "node_attribute_added":
		*t = NodeAttributeAdded
	case "edge_attribute_added":
		*t = EdgeAttributeAdded
	default:
		return fmt.Errorf("unknown event type %q", s)
	}
	return nil
}

// Event is the reified form of one sink callback. Sinks that buffer, record,
// or serialize events use this struct; live consumers usually implement the
// callback interface directly and never allocate one.
//
// The populated fields depend on Type: attribute events carry Name and Value,
// edge events carry From/To/Directed, and removals carry only the element ID.
type Event struct {
	Type     Type   `json:"type"`
	SourceID string `json:"source_id"`
	// ElementID is the node ID for node events and the edge ID for edge events.
	ElementID string `json:"element_id"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Directed  bool   `json:"directed,omitempty"`
	Name      string `json:"name,omitempty"`
	Value     any    `json:"value,omitempty"`
}

// String returns a compact human-readable form of the event.
func (e Event) String() string {
	switch e.Type {
	case EdgeAdded:
		arrow := "--"
		if e.Directed {
			arrow = "->"
		}
		return fmt.Sprintf("%s(%s: %s %s %s)", e.Type, e.ElementID, e.From, arrow, e.To)
	case NodeAttributeAdded, EdgeAttributeAdded:
		return fmt.Sprintf("%s(%s: %s=%v)", e.Type, e.ElementID, e.Name, e.Value)
	default:
		return fmt.Sprintf("%s(%s)", e.Type, e.ElementID)
	}
}
