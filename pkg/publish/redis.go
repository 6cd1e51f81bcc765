package publish

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/graphgen/pkg/observability"
	"github.com/matzehuels/graphgen/pkg/stream"
)

// RedisSink appends generation events to a Redis stream via XADD.
// Entries carry flat string fields (run_id, seq, type, ids, ...) so stream
// consumers can filter without JSON decoding.
type RedisSink struct {
	client redis.Cmdable
	stream string
	runID  string
	seq    int64
	ctx    context.Context
	err    error
}

// NewRedisSink creates a sink publishing to the named Redis stream.
// The context bounds every delivery; cancel it to stop publishing.
func NewRedisSink(ctx context.Context, client redis.Cmdable, streamName string) *RedisSink {
	return &RedisSink{
		client: client,
		stream: streamName,
		runID:  uuid.NewString(),
		ctx:    ctx,
	}
}

// RunID returns the identifier stamped onto every published event.
func (s *RedisSink) RunID() string { return s.runID }

// Err returns the first delivery error encountered, or nil.
func (s *RedisSink) Err() error { return s.err }

func (s *RedisSink) publish(e stream.Event) {
	if s.err != nil {
		return
	}
	rec := newRecord(s.runID, s.seq, e)
	s.seq++

	values := map[string]any{
		"run_id":     rec.RunID,
		"seq":        rec.Seq,
		"type":       rec.Type,
		"source_id":  rec.SourceID,
		"element_id": rec.Element,
	}
	if rec.From != "" {
		values["from"] = rec.From
		values["to"] = rec.To
		values["directed"] = rec.Directed
	}
	if rec.Name != "" {
		values["name"] = rec.Name
		values["value"] = rec.Value
	}

	// Transient broker failures retry with backoff before poisoning the sink.
	s.err = RetryWithBackoff(s.ctx, func() error {
		return Retryable(s.client.XAdd(s.ctx, &redis.XAddArgs{
			Stream: s.stream,
			Values: values,
		}).Err())
	})
	if s.err != nil {
		observability.Publish().OnPublishError(s.ctx, "redis", s.runID, s.err)
		return
	}
	observability.Publish().OnPublish(s.ctx, "redis", s.runID)
}

func (s *RedisSink) OnNodeAdded(sourceID, nodeID string) {
	s.publish(stream.Event{Type: stream.NodeAdded, SourceID: sourceID, ElementID: nodeID})
}

func (s *RedisSink) OnNodeRemoved(sourceID, nodeID string) {
	s.publish(stream.Event{Type: stream.NodeRemoved, SourceID: sourceID, ElementID: nodeID})
}

func (s *RedisSink) OnEdgeAdded(sourceID, edgeID, fromID, toID string, directed bool) {
	s.publish(stream.Event{Type: stream.EdgeAdded, SourceID: sourceID, ElementID: edgeID, From: fromID, To: toID, Directed: directed})
}

func (s *RedisSink) OnEdgeRemoved(sourceID, edgeID string) {
	s.publish(stream.Event{Type: stream.EdgeRemoved, SourceID: sourceID, ElementID: edgeID})
}

func (s *RedisSink) OnNodeAttributeAdded(sourceID, nodeID, name string, value any) {
	s.publish(stream.Event{Type: stream.NodeAttributeAdded, SourceID: sourceID, ElementID: nodeID, Name: name, Value: value})
}

func (s *RedisSink) OnEdgeAttributeAdded(sourceID, edgeID, name string, value any) {
	s.publish(stream.Event{Type: stream.EdgeAttributeAdded, SourceID: sourceID, ElementID: edgeID, Name: name, Value: value})
}
