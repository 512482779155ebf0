package segmenter

import (
	"iter"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Punkt wraps the neurosnap Punkt tokenizer. The bundled training data
// targets English, so it serves as a Latin-script comparison baseline
// rather than a Japanese segmenter.
type Punkt struct {
	tok *sentences.DefaultSentenceTokenizer
}

var _ Segmenter = (*Punkt)(nil)

func NewPunkt() (*Punkt, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Punkt{tok: tok}, nil
}

// Segment yields the tokenizer's sentences lazily. The library itself
// materializes its result; that cost is part of what gets measured.
func (p *Punkt) Segment(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range p.tok.Tokenize(text) {
			t := strings.TrimSpace(s.Text)
			if t == "" {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

func init() {
	register("punkt", func() (Segmenter, error) { return NewPunkt() })
}
