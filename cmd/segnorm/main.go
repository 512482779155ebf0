// Command segnorm prints the normalized fragments of its input, one per
// line.
//
// Usage:
//
//	segnorm < corpus.txt
//	segnorm -f corpus.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tkoide/segbench/normalize"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	flag.Parse()

	text := readText(*file)

	for frag := range normalize.Text(text) {
		fmt.Println(frag)
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
		fmt.Fprintln(os.Stderr, "segnorm:", err)
		os.Exit(1)
	}
}
