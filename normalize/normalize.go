// Package normalize is a thin wrapper around the x/text normalization
// machinery: East-Asian width folding followed by NFKC composition,
// applied line by line. No normalization rules live here.
package normalize

import (
	"iter"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/tkoide/segbench/pipeline"
)

// Fold canonicalizes text: full-width ASCII narrows, half-width katakana
// widens with voiced marks composed, then NFKC resolves the remaining
// compatibility forms.
func Fold(text string) string {
	return norm.NFKC.String(width.Fold.String(text))
}

// NewStage lifts Fold into a pipeline Stage applied to each unit.
func NewStage() pipeline.Stage {
	return func(in iter.Seq[string]) iter.Seq[string] {
		return func(yield func(string) bool) {
			for s := range in {
				if !yield(Fold(s)) {
					return
				}
			}
		}
	}
}

var textPipe = func() *pipeline.Pipeline {
	p, err := pipeline.New(pipeline.SplitNewline(), NewStage())
	if err != nil {
		panic(err)
	}
	return p
}()

// Text lazily yields one folded fragment per non-blank line of text.
func Text(text string) iter.Seq[string] {
	return textPipe.Segment(text)
}
