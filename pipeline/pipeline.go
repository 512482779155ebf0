// Package pipeline composes ordered text-transformation stages into a lazy
// sentence pipeline.
package pipeline

import (
	"errors"
	"iter"
)

// Stage transforms a sequence of text units into another sequence of text
// units. A Stage must be stateless and pure; its output is produced on
// demand while the input is consumed.
type Stage func(iter.Seq[string]) iter.Seq[string]

// ErrNoStages is returned by New when no stages are supplied.
var ErrNoStages = errors.New("pipeline: at least one stage is required")

// Pipeline is an ordered composition of Stages. Immutable once built; it
// owns no external resources.
type Pipeline struct {
	stages []Stage
}

// New builds a Pipeline applying stages in the given order.
func New(stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	p := &Pipeline{stages: make([]Stage, len(stages))}
	copy(p.stages, stages)
	return p, nil
}

// Segment seeds the first stage with text as a one-element sequence and
// threads each stage's output into the next. The returned sequence is
// finite, lazy and meant for a single pass; nothing is materialized unless
// the caller drains it. A fault raised by a stage propagates to the
// ranging caller.
func (p *Pipeline) Segment(text string) iter.Seq[string] {
	seq := unit(text)
	for _, stage := range p.stages {
		seq = stage(seq)
	}
	return seq
}

func unit(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(text)
	}
}
