package graph

// Sink interface implementation. Attaching a Graph to a generator rebuilds
// the emitted structure as events arrive; the sourceID is ignored because a
// collected graph does not distinguish producers.

func (g *Graph) OnNodeAdded(_, nodeID string) {
	g.AddNode(nodeID)
}

func (g *Graph) OnNodeRemoved(_, nodeID string) {
	g.RemoveNode(nodeID)
}

func (g *Graph) OnEdgeAdded(_, edgeID, fromID, toID string, directed bool) {
	g.AddEdge(edgeID, fromID, toID, directed)
}

func (g *Graph) OnEdgeRemoved(_, edgeID string) {
	g.RemoveEdge(edgeID)
}

func (g *Graph) OnNodeAttributeAdded(_, nodeID, name string, value any) {
	g.SetNodeAttribute(nodeID, name, value)
}

func (g *Graph) OnEdgeAttributeAdded(_, edgeID, name string, value any) {
	g.SetEdgeAttribute(edgeID, name, value)
}
