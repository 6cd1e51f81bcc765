package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// generateCommand creates the generate command, the main entry point of the
// CLI: run a generator model and export the grown graph.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		configPath string
		nodeAttrs  []string
		edgeAttrs  []string
		noCache    bool
	)
	opts := pipeline.Options{
		Model: pipeline.DefaultModel,
		Steps: pipeline.DefaultSteps,
		Seed:  pipeline.DefaultSeed,
	}
	pub := publishOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph with a generator model",
		Long: `Generate a graph by driving a generator model step by step.

Each run is deterministic: the same model, seed and options always produce
the same graph and the same event sequence. Output formats:

  json    graph snapshot (nodes, edges, attributes)
  dot     Graphviz DOT source
  svg     rendered image (Graphviz)
  png     rendered image (Graphviz)
  events  the raw event stream, one JSON object per line

Rendered images are cached locally, keyed by the snapshot content, so
re-running with the same options is fast.

Options can also be loaded from a TOML file with --config; flags set on the
command line take precedence over the file.`,
		Example: `  graphgen generate -m random -n 500 --seed 7 -f svg -o out/graph
  graphgen generate -m grid -n 10 -f dot,png
  graphgen generate --config run.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := applyConfig(configPath, cmd, &opts, &pub); err != nil {
					return err
				}
			}
			if len(opts.Formats) == 0 || cmd.Flags().Changed("format") {
				opts.Formats = parseFormats(formatsStr)
			}
			if len(opts.NodeAttrs) == 0 || cmd.Flags().Changed("node-attr") {
				var err error
				if opts.NodeAttrs, err = parseAttrRanges(nodeAttrs); err != nil {
					return err
				}
			}
			if len(opts.EdgeAttrs) == 0 || cmd.Flags().Changed("edge-attr") {
				var err error
				if opts.EdgeAttrs, err = parseAttrRanges(edgeAttrs); err != nil {
					return err
				}
			}
			if output != "" {
				if err := errors.ValidateOutputPath(output); err != nil {
					return err
				}
			}
			return c.runGenerate(cmd.Context(), opts, pub, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "load options from a TOML file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	// Generator flags
	cmd.Flags().StringVarP(&opts.Model, "model", "m", opts.Model, "generator model: random (default), full, grid")
	cmd.Flags().IntVarP(&opts.Steps, "steps", "n", opts.Steps, "number of growth steps")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible runs")
	cmd.Flags().BoolVar(&opts.Directed, "directed", false, "generate directed edges")
	cmd.Flags().BoolVar(&opts.RandomlyDirected, "randomly-directed", false, "flip each directed edge's orientation at random")
	cmd.Flags().Float64Var(&opts.AverageDegree, "avg-degree", pipeline.DefaultAverageDegree, "target mean degree (random model)")
	cmd.Flags().BoolVar(&opts.Torus, "torus", false, "wrap the grid's borders onto each other (grid model)")
	cmd.Flags().BoolVar(&opts.NodeLabels, "node-labels", false, "attach a label attribute to every node")
	cmd.Flags().BoolVar(&opts.EdgeLabels, "edge-labels", false, "attach a label attribute to every edge")
	cmd.Flags().StringArrayVar(&nodeAttrs, "node-attr", nil, "random node attribute as name:min:max (repeatable)")
	cmd.Flags().StringArrayVar(&edgeAttrs, "edge-attr", nil, "random edge attribute as name:min:max (repeatable)")

	// Export flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg, png, events (comma-separated)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "render label attributes in DOT output")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the artifact cache")

	// Publish flags
	cmd.Flags().StringVar(&pub.RedisAddr, "redis", "", "publish events to a Redis stream at this address")
	cmd.Flags().StringVar(&pub.RedisStream, "redis-stream", defaultRedisStream, "Redis stream name")
	cmd.Flags().StringVar(&pub.MongoURI, "mongo", "", "publish events to MongoDB at this connection URI")
	cmd.Flags().StringVar(&pub.MongoDatabase, "mongo-db", defaultMongoDatabase, "MongoDB database name")
	cmd.Flags().StringVar(&pub.MongoCollection, "mongo-coll", defaultMongoCollection, "MongoDB collection name")

	return cmd
}

// runGenerate executes the pipeline and writes the requested artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, pub publishOpts, output string, noCache bool) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Growing %s graph...", opts.Model))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, output)
	if err != nil {
		return err
	}

	printSuccess("Generated %s graph", opts.Model)
	for _, format := range opts.Formats {
		if p, ok := paths[format]; ok {
			printFile(p)
		}
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, len(result.CacheInfo.RenderHits) > 0)

	if err := c.publish(ctx, runner, result, pub); err != nil {
		return err
	}

	if jsonPath, ok := paths[pipeline.FormatJSON]; ok {
		printNewline()
		printNextStep("Render", "graphgen render "+jsonPath+" -f svg")
	}

	return nil
}

// writeArtifacts writes each format's artifact next to the base output path
// and returns the written file paths keyed by format.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) (map[string]string, error) {
	base := basePath(output)
	paths := make(map[string]string)
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + extension(format)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths[format] = path
	}
	return paths, nil
}

// basePath derives the base output path, stripping a known format extension
// so "-o graph.svg -f svg,png" produces graph.svg and graph.png.
func basePath(output string) string {
	if output == "" {
		return "graph"
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] || ext == "jsonl" {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// extension maps a format to its file extension.
func extension(format string) string {
	if format == pipeline.FormatEvents {
		return "jsonl"
	}
	return format
}

// parseAttrRanges parses repeated name:min:max flags into attribute ranges.
func parseAttrRanges(specs []string) ([]pipeline.AttributeRange, error) {
	var out []pipeline.AttributeRange
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, errors.New(errors.ErrCodeInvalidAttribute,
				"invalid attribute spec %q (expected name:min:max)", spec)
		}
		min, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidAttribute,
				"invalid attribute minimum in %q: %v", spec, err)
		}
		max, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidAttribute,
				"invalid attribute maximum in %q: %v", spec, err)
		}
		out = append(out, pipeline.AttributeRange{Name: parts[0], Min: min, Max: max})
	}
	return out, nil
}
