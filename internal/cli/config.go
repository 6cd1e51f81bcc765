package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// fileConfig mirrors the generate command's flags for TOML run files.
//
// Example:
//
//	model = "random"
//	steps = 500
//	seed = 7
//	formats = ["json", "svg"]
//
//	[[node_attr]]
//	name = "weight"
//	min = 0.0
//	max = 1.0
type fileConfig struct {
	Model            string           `toml:"model"`
	Steps            int              `toml:"steps"`
	Seed             int64            `toml:"seed"`
	Directed         bool             `toml:"directed"`
	RandomlyDirected bool             `toml:"randomly_directed"`
	AverageDegree    float64          `toml:"avg_degree"`
	Torus            bool             `toml:"torus"`
	NodeLabels       bool             `toml:"node_labels"`
	EdgeLabels       bool             `toml:"edge_labels"`
	NodeAttrs        []fileAttrConfig `toml:"node_attr"`
	EdgeAttrs        []fileAttrConfig `toml:"edge_attr"`
	Formats          []string         `toml:"formats"`
	Labels           bool             `toml:"labels"`

	Redis           string `toml:"redis"`
	RedisStream     string `toml:"redis_stream"`
	Mongo           string `toml:"mongo"`
	MongoDatabase   string `toml:"mongo_db"`
	MongoCollection string `toml:"mongo_coll"`
}

type fileAttrConfig struct {
	Name string  `toml:"name"`
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
}

// applyConfig loads a TOML run file and applies it to opts and pub.
// Flags set explicitly on the command line win over file values.
func applyConfig(path string, cmd *cobra.Command, opts *pipeline.Options, pub *publishOpts) error {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	changed := cmd.Flags().Changed

	if cfg.Model != "" && !changed("model") {
		opts.Model = cfg.Model
	}
	if cfg.Steps != 0 && !changed("steps") {
		opts.Steps = cfg.Steps
	}
	if cfg.Seed != 0 && !changed("seed") {
		opts.Seed = cfg.Seed
	}
	if !changed("directed") {
		opts.Directed = cfg.Directed
	}
	if !changed("randomly-directed") {
		opts.RandomlyDirected = cfg.RandomlyDirected
	}
	if cfg.AverageDegree != 0 && !changed("avg-degree") {
		opts.AverageDegree = cfg.AverageDegree
	}
	if !changed("torus") {
		opts.Torus = cfg.Torus
	}
	if !changed("node-labels") {
		opts.NodeLabels = cfg.NodeLabels
	}
	if !changed("edge-labels") {
		opts.EdgeLabels = cfg.EdgeLabels
	}
	if !changed("labels") {
		opts.Labels = cfg.Labels
	}
	if len(cfg.NodeAttrs) > 0 && !changed("node-attr") {
		opts.NodeAttrs = attrRanges(cfg.NodeAttrs)
	}
	if len(cfg.EdgeAttrs) > 0 && !changed("edge-attr") {
		opts.EdgeAttrs = attrRanges(cfg.EdgeAttrs)
	}
	if len(cfg.Formats) > 0 && !changed("format") {
		opts.Formats = cfg.Formats
	}

	if cfg.Redis != "" && !changed("redis") {
		pub.RedisAddr = cfg.Redis
	}
	if cfg.RedisStream != "" && !changed("redis-stream") {
		pub.RedisStream = cfg.RedisStream
	}
	if cfg.Mongo != "" && !changed("mongo") {
		pub.MongoURI = cfg.Mongo
	}
	if cfg.MongoDatabase != "" && !changed("mongo-db") {
		pub.MongoDatabase = cfg.MongoDatabase
	}
	if cfg.MongoCollection != "" && !changed("mongo-coll") {
		pub.MongoCollection = cfg.MongoCollection
	}

	return nil
}

func attrRanges(attrs []fileAttrConfig) []pipeline.AttributeRange {
	out := make([]pipeline.AttributeRange, len(attrs))
	for i, a := range attrs {
		out[i] = pipeline.AttributeRange{Name: a.Name, Min: a.Min, Max: a.Max}
	}
	return out
}
