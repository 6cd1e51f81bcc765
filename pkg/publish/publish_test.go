package publish

import (
	"testing"

	"github.com/matzehuels/graphgen/pkg/stream"
)

func TestNewRecord(t *testing.T) {
	e := stream.Event{
		Type:      stream.EdgeAdded,
		SourceID:  "generator-00000001",
		ElementID: "a_b",
		From:      "a",
		To:        "b",
		Directed:  true,
	}
	rec := newRecord("run-1", 7, e)

	if rec.RunID != "run-1" || rec.Seq != 7 {
		t.Errorf("run metadata = %s/%d", rec.RunID, rec.Seq)
	}
	if rec.Type != "edge_added" {
		t.Errorf("type = %q, want edge_added", rec.Type)
	}
	if rec.From != "a" || rec.To != "b" || !rec.Directed {
		t.Errorf("endpoints = %+v", rec)
	}
}

func TestNewRecordAttribute(t *testing.T) {
	e := stream.Event{
		Type:      stream.NodeAttributeAdded,
		SourceID:  "generator-00000001",
		ElementID: "n",
		Name:      "weight",
		Value:     0.25,
	}
	rec := newRecord("run-1", 0, e)

	if rec.Name != "weight" || rec.Value != 0.25 {
		t.Errorf("attribute = %s=%v", rec.Name, rec.Value)
	}
	if rec.From != "" || rec.Directed {
		t.Errorf("node attribute record should not carry edge fields: %+v", rec)
	}
}
