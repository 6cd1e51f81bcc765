// Package publish provides sinks that deliver generation events to external
// stores.
//
// Two backends are supported:
//
//   - [RedisSink] appends events to a Redis stream (XADD), one entry per
//     event, for live consumers
//   - [MongoSink] inserts events as documents into a MongoDB collection,
//     for later querying and replay
//
// Every sink is created with a fresh run identifier (UUID) stamped onto each
// delivered event, so multiple generation runs can share one stream or
// collection.
//
// The stream.Sink contract is synchronous with no error return, so delivery
// failures are retained instead of propagated mid-stream: deliveries retry
// with backoff, then the sink stops publishing after the first hard failure
// and Err reports it. Callers check Err once the run is finished.
package publish

import (
	"github.com/matzehuels/graphgen/pkg/stream"
)

// record is the wire form of one published event, shared by both backends.
type record struct {
	RunID    string `json:"run_id" bson:"run_id"`
	Seq      int64  `json:"seq" bson:"seq"`
	Type     string `json:"type" bson:"type"`
	SourceID string `json:"source_id" bson:"source_id"`
	Element  string `json:"element_id" bson:"element_id"`
	From     string `json:"from,omitempty" bson:"from,omitempty"`
	To       string `json:"to,omitempty" bson:"to,omitempty"`
	Directed bool   `json:"directed,omitempty" bson:"directed,omitempty"`
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Value    any    `json:"value,omitempty" bson:"value,omitempty"`
}

func newRecord(runID string, seq int64, e stream.Event) record {
	return record{
		RunID:    runID,
		Seq:      seq,
		Type:     e.Type.String(),
		SourceID: e.SourceID,
		Element:  e.ElementID,
		From:     e.From,
		To:       e.To,
		Directed: e.Directed,
		Name:     e.Name,
		Value:    e.Value,
	}
}
