package harness

import (
	"iter"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/tkoide/segbench/segmenter"
)

// fixed yields a predetermined sentence list.
type fixed struct {
	sents []string
}

func (f *fixed) Segment(string) iter.Seq[string] {
	return slices.Values(f.sents)
}

func fixedFactory(sents ...string) segmenter.Factory {
	return func() (segmenter.Segmenter, error) {
		return &fixed{sents: sents}, nil
	}
}

func TestRunSingleRepetition(t *testing.T) {
	report, err := Run(fixedFactory("a", "b", "c"), "ignored",
		WithLabel("fixed"), WithRepetitions(1))
	if err != nil {
		t.Fatal(err)
	}
	if report.Sentences != 3 {
		t.Errorf("Sentences = %d, want 3", report.Sentences)
	}
	if report.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", report.Repetitions)
	}
	if report.Label != "fixed" {
		t.Errorf("Label = %q, want fixed", report.Label)
	}
	if report.ID == "" {
		t.Error("report has no ID")
	}
}

func TestRunFloorAveragesCount(t *testing.T) {
	// Iteration i yields i+1 sentences: totals 1+2+3+4 = 10, 10/4 = 2.
	var built int
	factory := segmenter.Factory(func() (segmenter.Segmenter, error) {
		built++
		sents := make([]string, built)
		for i := range sents {
			sents[i] = "s"
		}
		return &fixed{sents: sents}, nil
	})
	report, err := Run(factory, "", WithLabel("growing"), WithRepetitions(4))
	if err != nil {
		t.Fatal(err)
	}
	if built != 4 {
		t.Errorf("factory invoked %d times, want one per repetition (4)", built)
	}
	if report.Sentences != 2 {
		t.Errorf("Sentences = %d, want floor(10/4) = 2", report.Sentences)
	}
}

func TestRunCountsAreIdempotent(t *testing.T) {
	factory, err := segmenter.Resolve("rules")
	if err != nil {
		t.Fatal(err)
	}
	text := "これは文です。これも文です。\n"
	var counts []int
	for i := 0; i < 3; i++ {
		report, err := Run(factory, text, WithLabel("rules"), WithRepetitions(5))
		if err != nil {
			t.Fatal(err)
		}
		counts = append(counts, report.Sentences)
	}
	for _, c := range counts {
		if c != 2 {
			t.Errorf("counts across runs = %v, want all 2", counts)
			break
		}
	}
}

func TestRunEmptyText(t *testing.T) {
	factory, err := segmenter.Resolve("rules")
	if err != nil {
		t.Fatal(err)
	}
	report, err := Run(factory, "", WithLabel("rules"), WithRepetitions(2))
	if err != nil {
		t.Fatal(err)
	}
	if report.Sentences != 0 {
		t.Errorf("Sentences = %d, want 0 for empty input", report.Sentences)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"zero repetitions", []Option{WithLabel("x"), WithRepetitions(0)}},
		{"negative repetitions", []Option{WithLabel("x"), WithRepetitions(-1)}},
		{"missing label", []Option{WithRepetitions(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var built int
			factory := segmenter.Factory(func() (segmenter.Segmenter, error) {
				built++
				return &fixed{}, nil
			})
			if _, err := Run(factory, "text", tt.opts...); err == nil {
				t.Error("Run succeeded, want invalid config error")
			}
			if built != 0 {
				t.Errorf("factory invoked %d times before validation failed", built)
			}
		})
	}
}

func TestReportString(t *testing.T) {
	r := &Report{Label: "rules", Elapsed: 1500 * time.Microsecond, Sentences: 3}
	got := r.String()
	want := "rules: 1.5 ms, 3 sentences"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestReportStringGrammar(t *testing.T) {
	report, err := Run(fixedFactory("a"), "", WithLabel("lbl"), WithRepetitions(1))
	if err != nil {
		t.Fatal(err)
	}
	s := report.String()
	if !strings.HasPrefix(s, "lbl: ") || !strings.HasSuffix(s, " ms, 1 sentences") {
		t.Errorf("String() = %q, want \"lbl: <ms> ms, 1 sentences\"", s)
	}
}
