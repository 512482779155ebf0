// Package harness times repeated segmentation runs over a fixed input and
// reports averaged results.
//
// Execution is strictly sequential: one goroutine, no timeouts, no
// retries. Each iteration constructs a fresh segmenter, applies it to the
// input text and drains the resulting sequence to completion before the
// next iteration starts, so wall-clock elapsed time and sentence counts
// never interleave.
package harness

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/xid"

	"github.com/tkoide/segbench/segmenter"
)

// DefaultRepetitions is the iteration count used when none is configured.
const DefaultRepetitions = 100

// Config controls one benchmark run.
type Config struct {
	Label       string `validate:"required"`
	Repetitions int    `validate:"gte=1"`
}

// Option configures Run. This follows the functional options pattern for
// clean and flexible configuration.
type Option func(*Config)

// WithLabel names the library or pipeline under test in the report line.
func WithLabel(label string) Option {
	return func(c *Config) {
		c.Label = label
	}
}

// WithRepetitions sets how many timed iterations Run performs.
func WithRepetitions(n int) Option {
	return func(c *Config) {
		c.Repetitions = n
	}
}

var validate = validator.New()

// Report is the averaged outcome of one benchmark run.
type Report struct {
	ID          string
	Label       string
	Repetitions int
	// Elapsed is the wall-clock duration of an average iteration.
	Elapsed time.Duration
	// Sentences is the per-iteration sentence count, floor-averaged.
	Sentences int
}

// String renders the result line: "<label>: <elapsed_ms> ms, <count> sentences".
func (r *Report) String() string {
	ms := float64(r.Elapsed.Nanoseconds()) / 1e6
	return fmt.Sprintf("%s: %v ms, %d sentences", r.Label, ms, r.Sentences)
}

// Run benchmarks factory over text and returns the averaged report.
//
// The clock starts once before the loop and stops once after it; each of
// the configured repetitions constructs a segmenter via factory inside the
// timed region, applies it to text and fully drains the output. Faults
// from the factory or from draining abort the run unmodified. An invalid
// config (blank label, repetitions < 1) fails before any timing happens.
func Run(factory segmenter.Factory, text string, opts ...Option) (*Report, error) {
	cfg := Config{Repetitions: DefaultRepetitions}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("harness: invalid config: %w", err)
	}

	var total int
	start := time.Now()
	for i := 0; i < cfg.Repetitions; i++ {
		seg, err := factory()
		if err != nil {
			return nil, err
		}
		for range seg.Segment(text) {
			total++
		}
	}
	elapsed := time.Since(start)

	return &Report{
		ID:          xid.New().String(),
		Label:       cfg.Label,
		Repetitions: cfg.Repetitions,
		Elapsed:     elapsed / time.Duration(cfg.Repetitions),
		Sentences:   total / cfg.Repetitions,
	}, nil
}
