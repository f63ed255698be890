package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default highlight markers, matching the markup the original web client
// produced. CLI printers substitute ANSI styling via Spans instead.
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

// Span is a half-open byte range [Start, End) of highlighted text.
type Span struct {
	Start int
	End   int
}

// Spans locates every case-insensitive occurrence of each query term in
// text and merges overlapping or adjacent matches into single spans, so
// each region is highlighted exactly once no matter how many terms touch
// it. Case is folded rune by rune with a byte-offset map back to the
// original text, so span offsets stay valid even when lowering a rune
// changes its encoded length. Longer terms are matched first; the merge
// makes the order immaterial to the result.
func Spans(text, query string) []Span {
	terms := uniqueTermsByLength(query)
	if len(terms) == 0 {
		return nil
	}

	lower, offsets := foldCase(text)
	var spans []Span
	for _, term := range terms {
		for from := 0; ; {
			i := strings.Index(lower[from:], term)
			if i < 0 {
				break
			}
			at := from + i
			end := at + len(term)
			// Widen a match that stops mid-rune to the rune's edge.
			for end < len(lower) && offsets[end] == offsets[end-1] {
				end++
			}
			spans = append(spans, Span{Start: offsets[at], End: offsets[end]})
			from = end
			if from >= len(lower) {
				break
			}
		}
	}
	return mergeSpans(spans)
}

// foldCase lowers text one rune at a time, recording for each byte of the
// lowered string the starting offset of the original rune it came from.
// The returned slice has one extra element mapping one past the end.
func foldCase(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(text))
	return b.String(), offsets
}

// Highlight wraps matched regions of text with the default markers.
func Highlight(text, query string) string {
	return HighlightWith(text, query, MarkOpen, MarkClose)
}

// HighlightWith wraps matched regions with custom open/close markers.
func HighlightWith(text, query, open, close string) string {
	spans := Spans(text, query)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(open)+len(close)))
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s.Start])
		b.WriteString(open)
		b.WriteString(text[s.Start:s.End])
		b.WriteString(close)
		prev = s.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

func uniqueTermsByLength(query string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, t := range Terms(query) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})
	return terms
}

func mergeSpans(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start == spans[j].Start {
			return spans[i].End > spans[j].End
		}
		return spans[i].Start < spans[j].Start
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
