package segmenter

import (
	"github.com/tkoide/segbench/normalize"
	"github.com/tkoide/segbench/pipeline"
)

type ruleConfig struct {
	normalize bool
}

// RuleOption configures the rule pipeline. This follows the functional
// options pattern for clean and flexible configuration.
type RuleOption func(*ruleConfig)

// WithNormalize prepends a width/NFKC normalization stage.
func WithNormalize() RuleOption {
	return func(c *ruleConfig) {
		c.normalize = true
	}
}

// Rules builds the simple rule pipeline: split on newlines, then split
// after sentence-ending punctuation.
func Rules(opts ...RuleOption) (*pipeline.Pipeline, error) {
	var cfg ruleConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	stages := make([]pipeline.Stage, 0, 3)
	if cfg.normalize {
		stages = append(stages, normalize.NewStage())
	}
	stages = append(stages, pipeline.SplitNewline(), pipeline.SplitPunctuation())
	return pipeline.New(stages...)
}

func init() {
	register("rules", func() (Segmenter, error) { return Rules() })
	register("rules-norm", func() (Segmenter, error) { return Rules(WithNormalize()) })
}
