package publish

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matzehuels/graphgen/pkg/observability"
	"github.com/matzehuels/graphgen/pkg/stream"
)

// MongoSink inserts generation events as documents into a MongoDB
// collection. Documents carry the run identifier and a per-run sequence
// number, so a stored run can be replayed in emission order with a sorted
// query on (run_id, seq).
type MongoSink struct {
	coll  *mongo.Collection
	runID string
	seq   int64
	ctx   context.Context
	err   error
}

// NewMongoSink creates a sink inserting into the given collection.
// The context bounds every insert; cancel it to stop publishing.
func NewMongoSink(ctx context.Context, coll *mongo.Collection) *MongoSink {
	return &MongoSink{
		coll:  coll,
		runID: uuid.NewString(),
		ctx:   ctx,
	}
}

// RunID returns the identifier stamped onto every stored event.
func (s *MongoSink) RunID() string { return s.runID }

// Err returns the first insert error encountered, or nil.
func (s *MongoSink) Err() error { return s.err }

func (s *MongoSink) publish(e stream.Event) {
	if s.err != nil {
		return
	}
	rec := newRecord(s.runID, s.seq, e)
	s.seq++

	// Transient insert failures retry with backoff before poisoning the sink.
	s.err = RetryWithBackoff(s.ctx, func() error {
		_, err := s.coll.InsertOne(s.ctx, rec)
		return Retryable(err)
	})
	if s.err != nil {
		observability.Publish().OnPublishError(s.ctx, "mongo", s.runID, s.err)
		return
	}
	observability.Publish().OnPublish(s.ctx, "mongo", s.runID)
}

func (s *MongoSink) OnNodeAdded(sourceID, nodeID string) {
	s.publish(stream.Event{Type: stream.NodeAdded, SourceID: sourceID, ElementID: nodeID})
}

func (s *MongoSink) OnNodeRemoved(sourceID, nodeID string) {
	s.publish(stream.Event{Type: stream.NodeRemoved, SourceID: sourceID, ElementID: nodeID})
}

func (s *MongoSink) OnEdgeAdded(sourceID, edgeID, fromID, toID string, directed bool) {
	s.publish(stream.Event{Type: stream.EdgeAdded, SourceID: sourceID, ElementID: edgeID, From: fromID, To: toID, Directed: directed})
}

func (s *MongoSink) OnEdgeRemoved(sourceID, edgeID string) {
	s.publish(stream.Event{Type: stream.EdgeRemoved, SourceID: sourceID, ElementID: edgeID})
}

func (s *MongoSink) OnNodeAttributeAdded(sourceID, nodeID, name string, value any) {
	s.publish(stream.Event{Type: stream.NodeAttributeAdded, SourceID: sourceID, ElementID: nodeID, Name: name, Value: value})
}

func (s *MongoSink) OnEdgeAttributeAdded(sourceID, edgeID, name string, value any) {
	s.publish(stream.Event{Type: stream.EdgeAttributeAdded, SourceID: sourceID, ElementID: edgeID, Name: name, Value: value})
}
