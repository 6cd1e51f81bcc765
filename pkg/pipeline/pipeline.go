// Package pipeline provides the generate → collect → export pipeline for
// Graphgen.
//
// This package implements the complete run that the CLI exposes: drive a
// generator for a number of steps, collect the emitted events and the
// resulting graph, and export artifacts in the requested formats. By
// centralizing this logic, every entry point behaves the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: drive a generator model step by step, recording its events
//  2. Collect: accumulate the event stream into a graph snapshot
//  3. Export: produce output in various formats (JSON, DOT, SVG, PNG, events)
//
// Generation and collection always run together (the collector is just
// another event sink); export can be run independently on a collected graph.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Model:   "random",
//	    Steps:   200,
//	    Seed:    42,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphgen/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultModel is the generator model used when none is given.
	DefaultModel = ModelRandom

	// DefaultSteps is the number of growth steps per run.
	DefaultSteps = 100

	// DefaultSeed matches the seed a freshly constructed generator uses, so
	// a pipeline run and a hand-driven generator produce the same stream.
	DefaultSeed = int64(1)

	// DefaultAverageDegree is the target mean degree for the random model.
	DefaultAverageDegree = 4.0

	// MaxSteps bounds a single run to keep artifact sizes sane.
	MaxSteps = 1_000_000
)

// Generator model names.
const (
	ModelFull   = "full"
	ModelRandom = "random"
	ModelGrid   = "grid"
)

// ValidModels is the set of supported generator models.
var ValidModels = map[string]bool{
	ModelFull:   true,
	ModelRandom: true,
	ModelGrid:   true,
}

// Format constants for output formats.
const (
	FormatJSON   = "json"
	FormatDOT    = "dot"
	FormatSVG    = "svg"
	FormatPNG    = "png"
	FormatEvents = "events"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:   true,
	FormatDOT:    true,
	FormatSVG:    true,
	FormatPNG:    true,
	FormatEvents: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// AttributeRange declares a random numeric attribute attached to every
// generated node or edge, drawn uniformly from [Min, Max).
type AttributeRange struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Options contains all configuration for a generation run.
// This struct supports JSON serialization so runs can be described in files.
type Options struct {
	// Generate options
	Model            string  `json:"model"`
	Steps            int     `json:"steps,omitempty"`
	Seed             int64   `json:"seed,omitempty"`
	Directed         bool    `json:"directed,omitempty"`
	RandomlyDirected bool    `json:"randomly_directed,omitempty"`
	AverageDegree    float64 `json:"average_degree,omitempty"` // random model only
	Torus            bool    `json:"torus,omitempty"`          // grid model only

	// Element decoration
	NodeLabels bool             `json:"node_labels,omitempty"`
	EdgeLabels bool             `json:"edge_labels,omitempty"`
	NodeAttrs  []AttributeRange `json:"node_attrs,omitempty"`
	EdgeAttrs  []AttributeRange `json:"edge_attrs,omitempty"`

	// Export options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"`  // render node labels in DOT output
	Refresh bool     `json:"refresh,omitempty"` // bypass the artifact cache

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateModel checks that a generator model name is valid.
func ValidateModel(model string) error {
	if !ValidModels[model] {
		return errors.New(errors.ErrCodeInvalidModel,
			"invalid model: %q (must be one of: full, random, grid)", model)
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, dot, svg, png, events)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if err := ValidateModel(o.Model); err != nil {
		return err
	}

	if o.Steps == 0 {
		o.Steps = DefaultSteps
	}
	if o.Steps < 0 || o.Steps > MaxSteps {
		return errors.New(errors.ErrCodeInvalidSteps,
			"steps must be between 0 and %d, got %d", MaxSteps, o.Steps)
	}

	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.AverageDegree == 0 {
		o.AverageDegree = DefaultAverageDegree
	}
	if o.AverageDegree < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"average degree cannot be negative: %v", o.AverageDegree)
	}

	for _, a := range append(append([]AttributeRange{}, o.NodeAttrs...), o.EdgeAttrs...) {
		if err := errors.ValidateAttributeName(a.Name); err != nil {
			return err
		}
		if a.Max < a.Min {
			return errors.New(errors.ErrCodeInvalidAttribute,
				"attribute %q has empty range [%v, %v)", a.Name, a.Min, a.Max)
		}
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}
