package segmenter

import (
	"iter"
	"strings"

	"github.com/clipperhouse/uax29/sentences"
)

// UAX29 segments text with the Unicode UAX #29 sentence rules from
// clipperhouse/uax29, the all-in-one segmenter callable directly on text.
// Surrounding whitespace is trimmed from each segment and whitespace-only
// segments are dropped, so counts and dump output stay comparable across
// libraries.
type UAX29 struct{}

var _ Segmenter = (*UAX29)(nil)

func NewUAX29() *UAX29 {
	return new(UAX29)
}

func (u *UAX29) Segment(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seg := sentences.NewSegmenter([]byte(text))
		for seg.Next() {
			s := strings.TrimSpace(seg.Text())
			if s == "" {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

func init() {
	register("uax29", func() (Segmenter, error) { return NewUAX29(), nil })
}
