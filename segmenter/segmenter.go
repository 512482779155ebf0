// Package segmenter adapts third-party sentence-segmentation libraries to
// one interface consumed by the timing harness and the CLI tools. Each
// library stays an opaque collaborator: construct, call with text, iterate
// to exhaustion.
package segmenter

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Segmenter produces a lazy sequence of sentences from raw text. The
// sequence is single-pass.
type Segmenter interface {
	Segment(text string) iter.Seq[string]
}

// Factory constructs a fresh Segmenter. The harness invokes it once per
// timed iteration so every measurement pays the full construction cost and
// no state leaks between repetitions.
type Factory func() (Segmenter, error)

var registry = map[string]Factory{}

func register(name string, f Factory) {
	registry[name] = f
}

// Resolve returns the factory registered under name.
func Resolve(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("segmenter: unknown segmenter %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the registered segmenters in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
