package pipeline

import (
	"iter"
	"strings"
)

// SplitNewline emits every non-blank line of each input unit, trimmed of
// surrounding whitespace. \n, \r\n and \r all terminate a line.
func SplitNewline() Stage {
	return func(in iter.Seq[string]) iter.Seq[string] {
		return func(yield func(string) bool) {
			for s := range in {
				start := 0
				for i := 0; i < len(s); i++ {
					switch s[i] {
					case '\n':
						if !emit(yield, s[start:i]) {
							return
						}
						start = i + 1
					case '\r':
						if !emit(yield, s[start:i]) {
							return
						}
						if i+1 < len(s) && s[i+1] == '\n' {
							i++
						}
						start = i + 1
					}
				}
				if start < len(s) {
					if !emit(yield, s[start:]) {
						return
					}
				}
			}
		}
	}
}

// SplitPunctuation splits each input unit after runs of sentence-ending
// punctuation (。！？ and their ASCII forms), keeping the punctuation with
// the preceding sentence. Text after the last terminator is emitted as-is.
func SplitPunctuation() Stage {
	return func(in iter.Seq[string]) iter.Seq[string] {
		return func(yield func(string) bool) {
			for s := range in {
				start := 0
				inRun := false
				for i, r := range s {
					if isTerminator(r) {
						inRun = true
						continue
					}
					if inRun {
						if !emit(yield, s[start:i]) {
							return
						}
						start = i
						inRun = false
					}
				}
				if start < len(s) {
					if !emit(yield, s[start:]) {
						return
					}
				}
			}
		}
	}
}

func isTerminator(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?':
		return true
	}
	return false
}

// emit trims the unit and skips blanks, so empty input never produces
// sentences.
func emit(yield func(string) bool, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return yield(s)
}
