package segmenter

import (
	"iter"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/words"
)

// Stats summarizes a drained segmentation.
type Stats struct {
	Sentences int
	Words     int
	Graphemes int
}

// Measure drains seq and totals the uax29 word and grapheme counts of each
// sentence. It reads every element; keep it outside any timed region.
func Measure(seq iter.Seq[string]) Stats {
	var st Stats
	for s := range seq {
		bs := []byte(s)
		st.Sentences++
		st.Words += len(words.SegmentAll(bs))
		st.Graphemes += len(graphemes.SegmentAll(bs))
	}
	return st
}
