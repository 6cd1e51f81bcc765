package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/dot"
	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/export"
	"github.com/matzehuels/graphgen/pkg/gen"
	"github.com/matzehuels/graphgen/pkg/graph"
	"github.com/matzehuels/graphgen/pkg/observability"
	"github.com/matzehuels/graphgen/pkg/stream"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and published streams.
	RunID string

	// Graph is the generated graph snapshot.
	Graph *graph.Graph

	// Events is the complete ordered event stream of the run.
	Events []stream.Event

	// SnapshotHash is the content hash of the exported graph.
	SnapshotHash string

	// Artifacts contains exported outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which renders hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	EventCount   int
	GenerateTime time.Duration
	ExportTime   time.Duration
}

// CacheInfo tracks cache hits during export.
type CacheInfo struct {
	RenderHits []string // Formats whose artifacts came from cache
}

// Execute runs the complete generate → collect → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1+2: Generate and collect
	genStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, opts.Model, opts.Steps)
	g, events, err := r.Generate(ctx, opts)
	observability.Pipeline().OnGenerateComplete(ctx, opts.Model, nodeCount(g), time.Since(genStart), err)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Events = events
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.EventCount = len(events)

	opts.Logger.Info("generated graph",
		"run", result.RunID,
		"model", opts.Model,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"events", result.Stats.EventCount,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Export
	exportStart := time.Now()
	observability.Pipeline().OnExportStart(ctx, opts.Formats)
	err = r.Export(ctx, result, opts)
	observability.Pipeline().OnExportComplete(ctx, opts.Formats, time.Since(exportStart), err)
	if err != nil {
		return nil, err
	}
	result.Stats.ExportTime = time.Since(exportStart)

	opts.Logger.Info("exported artifacts",
		"formats", opts.Formats,
		"cached", result.CacheInfo.RenderHits,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Generate drives the configured model for opts.Steps growth steps and
// returns the collected graph along with the full event stream.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Graph, []stream.Event, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	recorder := stream.NewRecorder()
	collector := graph.New("run")
	sinks := []stream.Sink{recorder, collector}
	if opts.Logger.GetLevel() <= log.DebugLevel {
		sinks = append(sinks, stream.NewLogSink(opts.Logger))
	}
	sink := stream.NewMulti(sinks...)

	generator, base := newGenerator(sink, opts)
	configure(base, opts)

	generator.Begin()
	for i := 0; i < opts.Steps; i++ {
		select {
		case <-ctx.Done():
			generator.End()
			return nil, nil, errors.Wrap(errors.ErrCodeInternal, ctx.Err(), "generation interrupted")
		default:
		}
		if !generator.NextEvents() {
			break
		}
	}
	generator.End()

	return collector, recorder.Events(), nil
}

// Export fills result.Artifacts for every requested format, consulting the
// artifact cache for the expensive Graphviz renders.
func (r *Runner) Export(ctx context.Context, result *Result, opts Options) error {
	snapshot, err := export.Marshal(result.Graph)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "marshal snapshot")
	}
	result.SnapshotHash = cache.Hash(snapshot)

	// Pin coordinates whenever the graph carries them (grid model runs).
	usePositions := false
	for _, n := range result.Graph.Nodes() {
		if _, ok := n.Attrs["xy"]; ok {
			usePositions = true
			break
		}
	}
	dotOpts := dot.Options{Labels: opts.Labels, UsePositions: usePositions}
	var dotSrc string

	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			result.Artifacts[FormatJSON] = snapshot

		case FormatEvents:
			var buf bytes.Buffer
			w := stream.NewWriterSink(&buf)
			for _, e := range result.Events {
				stream.Dispatch(e, w)
			}
			if err := w.Err(); err != nil {
				return errors.Wrap(errors.ErrCodeExportFailed, err, "encode events")
			}
			result.Artifacts[FormatEvents] = buf.Bytes()

		case FormatDOT:
			if dotSrc == "" {
				dotSrc = dot.ToDOT(result.Graph, dotOpts)
			}
			result.Artifacts[FormatDOT] = []byte(dotSrc)

		case FormatSVG, FormatPNG:
			key := r.Keyer.ArtifactKey(result.SnapshotHash, cache.ArtifactKeyOpts{
				Format:       format,
				Labels:       dotOpts.Labels,
				UsePositions: dotOpts.UsePositions,
			})
			if !opts.Refresh {
				if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
					observability.Cache().OnCacheHit(ctx, format)
					result.Artifacts[format] = data
					result.CacheInfo.RenderHits = append(result.CacheInfo.RenderHits, format)
					continue
				}
				observability.Cache().OnCacheMiss(ctx, format)
			}

			if dotSrc == "" {
				dotSrc = dot.ToDOT(result.Graph, dotOpts)
			}
			var data []byte
			var renderErr error
			if format == FormatSVG {
				data, renderErr = dot.RenderSVG(ctx, dotSrc)
			} else {
				data, renderErr = dot.RenderPNG(ctx, dotSrc)
			}
			if renderErr != nil {
				return errors.Wrap(errors.ErrCodeRenderFailed, renderErr, "render %s", format)
			}
			result.Artifacts[format] = data
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(ctx, format, len(data))
			}
		}
	}

	return nil
}

// Publish replays a result's event stream into the given sink, preserving
// emission order. The sink is typically a publish.RedisSink or MongoSink.
func (r *Runner) Publish(result *Result, sink stream.Sink) {
	for _, e := range result.Events {
		stream.Dispatch(e, sink)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// nodeCount tolerates the nil graph returned on generation failure.
func nodeCount(g *graph.Graph) int {
	if g == nil {
		return 0
	}
	return g.NodeCount()
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// newGenerator constructs the model named by opts.
// opts.Model has been validated, so unknown names cannot reach here.
func newGenerator(sink stream.Sink, opts Options) (gen.Generator, *gen.Base) {
	switch opts.Model {
	case ModelFull:
		g := gen.NewFullGenerator(sink)
		return g, g.Base
	case ModelGrid:
		g := gen.NewGridGenerator(sink)
		g.SetTorus(opts.Torus)
		return g, g.Base
	default:
		g := gen.NewRandomGenerator(sink, opts.AverageDegree)
		return g, g.Base
	}
}

// configure applies the shared generator settings from opts.
func configure(base *gen.Base, opts Options) {
	base.SetRandomSeed(opts.Seed)
	base.SetDirectedEdges(opts.Directed, opts.RandomlyDirected)
	base.AddNodeLabels(opts.NodeLabels)
	base.AddEdgeLabels(opts.EdgeLabels)
	for _, a := range opts.NodeAttrs {
		base.AddNodeAttributeRange(a.Name, a.Min, a.Max)
	}
	for _, a := range opts.EdgeAttrs {
		base.AddEdgeAttributeRange(a.Name, a.Min, a.Max)
	}
}
