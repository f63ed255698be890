// Package search filters diary entries by structured criteria and ranks
// them by free-text relevance.
//
// The relevance formula is a fixed heuristic carried over from the original
// application, not a principled ranking scheme: per lowercase query term,
// substring occurrences score 10 each, word-start occurrences another 5
// each, plus a flat 2 when the term appears at all; the sum is divided by
// ln(content length + 1) to soften long entries.
package search

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
)

// SortKey selects the result ordering.
type SortKey int

const (
	SortByDate SortKey = iota
	SortByRelevance
)

// Order selects the sort direction. Descending is the zero value: newest
// (or most relevant) first.
type Order int

const (
	OrderDescending Order = iota
	OrderAscending
)

// Options describes one search invocation. The engine is stateless and
// side-effect free; callers are expected to debounce rapid re-invocation.
type Options struct {
	Query string
	// Mood filters by exact mood; empty means no mood filter.
	Mood mood.Mood
	// StartDate and EndDate bound entry dates inclusively. Canonical date
	// strings compare lexicographically, so no parsing is needed.
	StartDate string
	EndDate   string
	SortBy    SortKey
	SortOrder Order
}

func (o Options) filtersActive() bool {
	return o.Mood != "" || o.StartDate != "" || o.EndDate != ""
}

// Result pairs an entry with its computed relevance.
type Result struct {
	Entry              *entry.Entry
	Relevance          float64
	MatchedTerms       []string
	HighlightedContent string
}

// Search filters entries, scores them against the query, and returns a
// sorted result list. An empty query with no active filters returns
// nothing; an empty query with filters returns every filtered entry at
// relevance zero.
func Search(entries []*entry.Entry, opts Options) []Result {
	filtered := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if opts.StartDate != "" && e.Date < opts.StartDate {
			continue
		}
		if opts.EndDate != "" && e.Date > opts.EndDate {
			continue
		}
		if opts.Mood != "" && e.Mood != opts.Mood {
			continue
		}
		filtered = append(filtered, e)
	}

	results := make([]Result, 0, len(filtered))
	query := strings.TrimSpace(opts.Query)

	if query != "" {
		terms := Terms(query)
		for _, e := range filtered {
			relevance := Relevance(e, query)
			if relevance <= 0 {
				continue
			}
			content := strings.ToLower(e.Content)
			matched := make([]string, 0, len(terms))
			for _, term := range terms {
				if strings.Contains(content, term) {
					matched = append(matched, term)
				}
			}
			results = append(results, Result{
				Entry:              e,
				Relevance:          relevance,
				MatchedTerms:       matched,
				HighlightedContent: Highlight(e.Content, query),
			})
		}
	} else {
		if !opts.filtersActive() {
			return results
		}
		for _, e := range filtered {
			results = append(results, Result{
				Entry:              e,
				HighlightedContent: e.Content,
			})
		}
	}

	sortResults(results, opts)
	return results
}

func sortResults(results []Result, opts Options) {
	sort.SliceStable(results, func(i, j int) bool {
		if opts.SortBy == SortByRelevance {
			if opts.SortOrder == OrderAscending {
				return results[i].Relevance < results[j].Relevance
			}
			return results[i].Relevance > results[j].Relevance
		}
		if opts.SortOrder == OrderAscending {
			return results[i].Entry.Date < results[j].Entry.Date
		}
		return results[i].Entry.Date > results[j].Entry.Date
	})
}

// Terms splits a query on whitespace into lowercase terms, discarding
// empty tokens.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Relevance scores how well the entry content matches the query. Scores
// are non-negative; zero means no term matched or the content is empty.
func Relevance(e *entry.Entry, query string) float64 {
	content := strings.ToLower(e.Content)
	length := utf8.RuneCountInString(content)
	if length == 0 {
		return 0
	}

	score := 0
	for _, term := range Terms(query) {
		if n := strings.Count(content, term); n > 0 {
			score += n * 10
			score += wordStartCount(content, term) * 5
			score += 2
		}
	}
	if score == 0 {
		return 0
	}
	return float64(score) / math.Log(float64(length)+1)
}

// wordStartCount counts occurrences of term that begin at a word boundary.
func wordStartCount(content, term string) int {
	count := 0
	for from := 0; ; {
		i := strings.Index(content[from:], term)
		if i < 0 {
			break
		}
		at := from + i
		if at == 0 {
			count++
		} else {
			r, _ := utf8.DecodeLastRuneInString(content[:at])
			if !isWordRune(r) {
				count++
			}
		}
		from = at + len(term)
		if from >= len(content) {
			break
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
