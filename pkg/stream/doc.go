// Package stream defines the event protocol between graph generators and
// their consumers.
//
// # Overview
//
// A generator never mutates a consumer's graph directly. Instead it pushes a
// sequence of discrete events (node added, edge removed, attribute set, ...)
// into a [Sink]. Consumers decide what to do with those events: build a graph,
// write them to disk, forward them over the network, or just count them.
//
// All delivery is synchronous and ordered: a sink method returns before the
// generator produces the next event. Sinks that need asynchrony must buffer
// internally.
//
// # Sinks
//
// The package ships a few general-purpose sinks:
//
//   - [Recorder] appends every event to an in-memory slice (tests, replay)
//   - [Multi] fans events out to several sinks in registration order
//   - [LogSink] logs events at debug level via charmbracelet/log
//   - [WriterSink] encodes events as JSON Lines to an io.Writer
//
// Graph-building consumers live elsewhere: graph.Graph implements Sink and
// reconstructs the emitted structure.
//
// # Usage
//
// Attach a sink when constructing a generator:
//
//	rec := stream.NewRecorder()
//	g := gen.NewRandomGenerator(rec, 2.0)
//	g.Begin()
//	for g.NextEvents() {
//	}
//	g.End()
//	for _, ev := range rec.Events() {
//	    fmt.Println(ev)
//	}
package stream
