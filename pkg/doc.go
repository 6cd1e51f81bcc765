// Package pkg provides the core libraries for Graphgen event-driven graph
// generation.
//
// # Overview
//
// Graphgen grows graphs incrementally: a generator emits an ordered stream
// of events (node added, edge added, attribute set, ...) into one or more
// sinks, and consumers either react to individual events or collect them
// into a concrete graph. The pkg directory is organized into these areas:
//
//  1. [gen] - Generator models and the shared generator base (seeding,
//     labels, attribute ranges, edge orientation)
//  2. [stream] - Event types, the Sink interface, and sink plumbing
//     (fan-out, recording, JSON-lines writing)
//  3. [graph] - Non-strict in-memory graph used as the event mirror
//  4. [export] - Snapshot serialization (JSON node-link format)
//  5. [dot] - Graphviz DOT output and SVG/PNG rendering
//  6. [pipeline] - Orchestration (generate, collect, export, cache)
//  7. [publish] - Redis and MongoDB event publishing
//  8. [cache] - Content-addressed artifact cache
//  9. [observability] - Pluggable pipeline, cache, and publish hooks
//
// # Architecture
//
// The typical data flow through Graphgen:
//
//	Generator model (full, random, grid)
//	         ↓
//	    [stream] events, in emission order
//	         ↓
//	    [graph] mirror  +  [stream] recorder
//	         ↓
//	    [export] snapshot → [dot] DOT/SVG/PNG → files or [publish] brokers
//
// # Quick Start
//
// Grow a random graph and collect it:
//
//	import (
//	    "github.com/matzehuels/graphgen/pkg/gen"
//	    "github.com/matzehuels/graphgen/pkg/graph"
//	)
//
//	g := graph.New("demo")
//	r := gen.NewRandomGenerator(g, 4.0)
//	r.SetRandomSeed(42)
//	r.Begin()
//	for i := 0; i < 100; i++ {
//	    if !r.NextEvents() {
//	        break
//	    }
//	}
//	r.End()
//
// Or run the whole pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(ctx, pipeline.Options{
//	    Model:   pipeline.ModelRandom,
//	    Steps:   100,
//	    Seed:    42,
//	    Formats: []string{pipeline.FormatJSON, pipeline.FormatSVG},
//	})
//
// # Determinism
//
// Every model draws from a single seeded random source in a fixed order.
// The same model, seed, and options always produce the same event stream,
// the same snapshot, and the same snapshot hash, which is what makes the
// content-addressed render cache safe.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/gen/...      # Specific package
//	go test -run Example       # Examples only
//
// [gen]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/gen
// [stream]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/stream
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/graph
// [export]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/export
// [dot]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/dot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/pipeline
// [publish]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/publish
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/observability
package pkg
