package harness

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tkoide/segbench/segmenter"
)

// Suite declares an ordered list of benchmarks:
//
//	repetitions: 100
//	benchmarks:
//	  - label: rule-pipeline
//	    segmenter: rules
//	  - label: uax29
//	    segmenter: uax29
//	    repetitions: 10
type Suite struct {
	// Repetitions is the default for entries that set none.
	Repetitions int     `yaml:"repetitions" validate:"omitempty,gte=1"`
	Benchmarks  []Bench `yaml:"benchmarks" validate:"required,min=1,dive"`
}

// Bench is one suite entry.
type Bench struct {
	Label       string `yaml:"label" validate:"required"`
	Segmenter   string `yaml:"segmenter" validate:"required"`
	Repetitions int    `yaml:"repetitions" validate:"omitempty,gte=1"`
}

// LoadSuite parses and validates a YAML suite document.
func LoadSuite(r io.Reader) (*Suite, error) {
	var s Suite
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("harness: parse suite: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("harness: invalid suite: %w", err)
	}
	return &s, nil
}

// Run benchmarks every entry over text, in declaration order. The first
// failure aborts the suite; there is no partial reporting.
func (s *Suite) Run(text string) ([]*Report, error) {
	reports := make([]*Report, 0, len(s.Benchmarks))
	for _, b := range s.Benchmarks {
		factory, err := segmenter.Resolve(b.Segmenter)
		if err != nil {
			return nil, err
		}
		reps := b.Repetitions
		if reps == 0 {
			reps = s.Repetitions
		}
		if reps == 0 {
			reps = DefaultRepetitions
		}
		report, err := Run(factory, text, WithLabel(b.Label), WithRepetitions(reps))
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
