package search

import (
	"strings"
	"unicode/utf8"

	"tableflip.dev/daybook/pkg/entry"
)

// MaxSuggestions caps the suggestion list.
const MaxSuggestions = 10

// Suggestions scans all entry content for distinct words longer than two
// characters that start with the query prefix, in first-seen order, capped
// at MaxSuggestions.
func Suggestions(entries []*entry.Entry, query string) []string {
	prefix := strings.ToLower(strings.TrimSpace(query))
	if prefix == "" {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []string
	for _, e := range entries {
		if e == nil {
			continue
		}
		for _, word := range strings.Fields(strings.ToLower(e.Content)) {
			if utf8.RuneCountInString(word) <= 2 || !strings.HasPrefix(word, prefix) {
				continue
			}
			if seen[word] {
				continue
			}
			seen[word] = true
			suggestions = append(suggestions, word)
			if len(suggestions) == MaxSuggestions {
				return suggestions
			}
		}
	}
	return suggestions
}
