// Package gen implements incremental, event-driven graph generation.
//
// # Overview
//
// A generator produces a growing (or shrinking) graph as a sequence of
// events pushed into a [stream.Sink]. The package centers on [Base], the
// engine every concrete generator builds on: it turns AddNode/AddEdge calls
// into ordered sink events, draws attribute values and edge orientations
// from an owned seedable random source, and optionally mirrors everything
// into an internal graph so algorithms can query what they generated so far.
//
// Concrete models ([FullGenerator], [RandomGenerator], [GridGenerator])
// implement the [Generator] interface on top of Base. Callers drive them
// with the begin/next/end loop:
//
//	rec := stream.NewRecorder()
//	g := gen.NewRandomGenerator(rec, 2.0)
//	g.SetRandomSeed(42)
//	g.Begin()
//	for i := 0; i < 100 && g.NextEvents(); i++ {
//	}
//	g.End()
//
// # Determinism
//
// All stochastic decisions draw from one random source owned by the
// generator, in a fixed order: orientation first (when edges are directed
// with random orientation), then one factory application per registered
// attribute in registration order. For a fixed seed and call sequence the
// emitted events are therefore byte-for-byte reproducible. Reseeding with
// SetRandomSeed resets that boundary; End does not touch the random source.
//
// # Concurrency
//
// Generators are single-threaded. All state except the process-wide source
// ID counter is exclusively owned by one instance; callers sharing an
// instance across goroutines must serialize access themselves.
package gen
