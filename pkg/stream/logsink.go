package stream

import "github.com/charmbracelet/log"

// LogSink logs every event at debug level. It is meant to be combined with
// another sink via [Multi] when tracing a generation run.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that writes events to the given logger.
// A nil logger falls back to the package-level default.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

func (l *LogSink) OnNodeAdded(sourceID, nodeID string) {
	l.logger.Debug("node added", "source", sourceID, "node", nodeID)
}

func (l *LogSink) OnNodeRemoved(sourceID, nodeID string) {
	l.logger.Debug("node removed", "source", sourceID, "node", nodeID)
}

func (l *LogSink) OnEdgeAdded(sourceID, edgeID, fromID, toID string, directed bool) {
	l.logger.Debug("edge added", "source", sourceID, "edge", edgeID, "from", fromID, "to", toID, "directed", directed)
}

func (l *LogSink) OnEdgeRemoved(sourceID, edgeID string) {
	l.logger.Debug("edge removed", "source", sourceID, "edge", edgeID)
}

func (l *LogSink) OnNodeAttributeAdded(sourceID, nodeID, name string, value any) {
	l.logger.Debug("node attribute", "source", sourceID, "node", nodeID, name, value)
}

func (l *LogSink) OnEdgeAttributeAdded(sourceID, edgeID, name string, value any) {
	l.logger.Debug("edge attribute", "source", sourceID, "edge", edgeID, name, value)
}
