package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/export"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// renderCommand creates the render command for exporting a stored graph.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a stored graph snapshot",
		Long: `Render a stored graph snapshot to DOT, SVG or PNG.

The render command takes a graph.json file (produced by 'generate') and
exports it without re-running the generator. Rendered images are cached
locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			for _, f := range opts.Formats {
				if f == pipeline.FormatEvents {
					return errors.New(errors.ErrCodeInvalidFormat,
						"the events format needs a generation run; use 'generate -f events'")
				}
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): dot, svg, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "render label attributes in DOT output")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the artifact cache")

	return cmd
}

// runRender loads the snapshot and exports it in the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := export.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	result := &pipeline.Result{Graph: g, Artifacts: make(map[string][]byte)}

	spinner := newSpinnerWithContext(ctx, "Rendering graph...")
	spinner.Start()

	if err := runner.Export(ctx, result, opts); err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".json")
	}
	paths, err := writeArtifacts(result.Artifacts, opts.Formats, output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	for _, format := range opts.Formats {
		if p, ok := paths[format]; ok {
			printFile(p)
		}
	}
	printStats(g.NodeCount(), g.EdgeCount(), len(result.CacheInfo.RenderHits) > 0)

	return nil
}
