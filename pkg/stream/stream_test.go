package stream

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRecorderOrder(t *testing.T) {
	r := NewRecorder()
	r.OnNodeAdded("src", "a")
	r.OnNodeAttributeAdded("src", "a", "label", "a")
	r.OnEdgeAdded("src", "a_b", "a", "b", true)
	r.OnEdgeRemoved("src", "a_b")
	r.OnNodeRemoved("src", "a")

	want := []Type{NodeAdded, NodeAttributeAdded, EdgeAdded, EdgeRemoved, NodeRemoved}
	events := r.Events()
	if len(events) != len(want) {
		t.Fatalf("recorded %d events, want %d", len(events), len(want))
	}
	for i, ty := range want {
		if events[i].Type != ty {
			t.Errorf("event %d: type = %v, want %v", i, events[i].Type, ty)
		}
	}
	if events[2].From != "a" || events[2].To != "b" || !events[2].Directed {
		t.Errorf("edge event endpoints = %+v", events[2])
	}
}

func TestRecorderReplay(t *testing.T) {
	first := NewRecorder()
	first.OnNodeAdded("src", "n1")
	first.OnNodeAdded("src", "n2")
	first.OnEdgeAdded("src", "n1_n2", "n1", "n2", false)
	first.OnEdgeAttributeAdded("src", "n1_n2", "weight", 0.5)

	second := NewRecorder()
	first.Replay(second)

	if second.Len() != first.Len() {
		t.Fatalf("replayed %d events, want %d", second.Len(), first.Len())
	}
	for i := range first.Events() {
		if first.Events()[i] != second.Events()[i] {
			t.Errorf("event %d differs after replay: %v vs %v", i, first.Events()[i], second.Events()[i])
		}
	}
}

func TestMultiFanOut(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	m := NewMulti(a, nil, b)

	m.OnNodeAdded("src", "x")
	m.OnNodeRemoved("src", "x")

	if a.Len() != 2 || b.Len() != 2 {
		t.Errorf("fan-out counts = %d, %d, want 2, 2", a.Len(), b.Len())
	}
}

func TestWriterSinkRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterSink(&buf)

	w.OnNodeAdded("src", "a")
	w.OnNodeAttributeAdded("src", "a", "value", 0.25)
	w.OnEdgeAdded("src", "a_b", "a", "b", true)
	w.OnEdgeRemoved("src", "a_b")
	if err := w.Err(); err != nil {
		t.Fatalf("writer error: %v", err)
	}

	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("wrote %d lines, want 4", got)
	}
	if !strings.Contains(buf.String(), `"type":"edge_added"`) {
		t.Errorf("expected string-encoded event type, got: %s", buf.String())
	}

	events, err := ReadEvents(&buf)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("read %d events, want 4", len(events))
	}
	if events[2].Type != EdgeAdded || events[2].From != "a" || !events[2].Directed {
		t.Errorf("edge event did not round-trip: %+v", events[2])
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		ty   Type
		want string
	}{
		{NodeAdded, "node_added"},
		{NodeRemoved, "node_removed"},
		{EdgeAdded, "edge_added"},
		{EdgeRemoved, "edge_removed"},
		{NodeAttributeAdded, "node_attribute_added"},
		{EdgeAttributeAdded, "edge_attribute_added"},
		{Type(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.ty, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	e := Event{Type: EdgeAdded, ElementID: "a_b", From: "a", To: "b", Directed: true}
	if got := e.String(); got != "edge_added(a_b: a -> b)" {
		t.Errorf("String() = %q", got)
	}
	attr := Event{Type: NodeAttributeAdded, ElementID: "n", Name: "weight", Value: 1.5}
	if got := attr.String(); got != "node_attribute_added(n: weight=1.5)" {
		t.Errorf("String() = %q", got)
	}
}

func TestLogSinkWritesEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	s := NewLogSink(logger)
	s.OnNodeAdded("src", "n1")
	s.OnEdgeAdded("src", "n1_n2", "n1", "n2", false)

	out := buf.String()
	if !strings.Contains(out, "node added") || !strings.Contains(out, "n1") {
		t.Errorf("missing node event in log output: %q", out)
	}
	if !strings.Contains(out, "edge added") || !strings.Contains(out, "n1_n2") {
		t.Errorf("missing edge event in log output: %q", out)
	}
}
