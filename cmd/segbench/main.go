// Command segbench times sentence-segmentation libraries over a fixed text
// and prints one averaged result line per benchmark.
//
// Usage:
//
//	segbench < corpus.txt
//	segbench -f corpus.txt -n 10 -seg rules,uax29
//	segbench -suite bench.yaml < corpus.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tkoide/segbench/harness"
	"github.com/tkoide/segbench/segmenter"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	reps := flag.Int("n", harness.DefaultRepetitions, "iterations per benchmark")
	segs := flag.String("seg", "", "comma-separated segmenter names (default: all registered)")
	suitePath := flag.String("suite", "", "YAML suite file to run instead of -seg/-n")
	flag.Parse()

	// Read the whole input once, before any timing.
	text := readText(*file)

	if *suitePath != "" {
		f, err := os.Open(*suitePath)
		must(err)
		suite, err := harness.LoadSuite(f)
		f.Close()
		must(err)
		reports, err := suite.Run(text)
		must(err)
		for _, r := range reports {
			fmt.Println(r)
		}
		return
	}

	names := segmenter.Names()
	if *segs != "" {
		names = strings.Split(*segs, ",")
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		factory, err := segmenter.Resolve(name)
		must(err)
		report, err := harness.Run(factory, text,
			harness.WithLabel(name),
			harness.WithRepetitions(*reps))
		must(err)
		fmt.Println(report)
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
		fmt.Fprintln(os.Stderr, "segbench:", err)
		os.Exit(1)
	}
}
