package pipeline

import (
	"errors"
	"iter"
	"slices"
	"testing"
)

// appendStage suffixes every unit with tag; used to observe composition
// order.
func appendStage(tag string) Stage {
	return func(in iter.Seq[string]) iter.Seq[string] {
		return func(yield func(string) bool) {
			for s := range in {
				if !yield(s + tag) {
					return
				}
			}
		}
	}
}

func TestNewRequiresStages(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrNoStages) {
		t.Errorf("New() error = %v, want ErrNoStages", err)
	}
}

func TestSegmentComposesInOrder(t *testing.T) {
	p, err := New(appendStage("1"), appendStage("2"), appendStage("3"))
	if err != nil {
		t.Fatal(err)
	}
	got := slices.Collect(p.Segment("x"))

	// Manual composition of the same stages.
	seq := appendStage("3")(appendStage("2")(appendStage("1")(func(yield func(string) bool) {
		yield("x")
	})))
	want := slices.Collect(seq)

	if !slices.Equal(got, want) {
		t.Errorf("pipeline = %q, manual composition = %q", got, want)
	}
	if len(got) != 1 || got[0] != "x123" {
		t.Errorf("got %q, want [x123]", got)
	}
}

func TestSegmentIsLazy(t *testing.T) {
	var produced int
	fanOut := func(in iter.Seq[string]) iter.Seq[string] {
		return func(yield func(string) bool) {
			for range in {
				for _, s := range []string{"a", "b", "c"} {
					produced++
					if !yield(s) {
						return
					}
				}
			}
		}
	}
	p, err := New(fanOut, appendStage(""))
	if err != nil {
		t.Fatal(err)
	}
	for range p.Segment("seed") {
		break
	}
	if produced != 1 {
		t.Errorf("produced %d units before the consumer stopped, want 1", produced)
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	p, err := New(SplitNewline(), SplitPunctuation())
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(p.Segment("")); len(got) != 0 {
		t.Errorf("empty input yielded %q, want none", got)
	}
}
