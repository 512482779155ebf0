// Command segdump prints each sentence a segmenter produces on its own
// line, for diffing segmenter behavior over the same corpus.
//
// Usage:
//
//	segdump < corpus.txt
//	segdump -f corpus.txt -seg uax29 -stats
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tkoide/segbench/segmenter"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	name := flag.String("seg", "rules", "segmenter name")
	stats := flag.Bool("stats", false, "print sentence/word/grapheme totals to stderr")
	flag.Parse()

	text := readText(*file)

	factory, err := segmenter.Resolve(*name)
	must(err)
	seg, err := factory()
	must(err)

	for sent := range seg.Segment(text) {
		fmt.Println(sent)
	}

	if *stats {
		st := segmenter.Measure(seg.Segment(text))
		fmt.Fprintf(os.Stderr, "%s: %d sentences, %d words, %d graphemes\n",
			*name, st.Sentences, st.Words, st.Graphemes)
	}
}

func readText(file string) string {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		must(err)
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	must(err)
	return string(data)
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "segdump:", err)
		os.Exit(1)
	}
}
