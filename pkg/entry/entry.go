// Package entry defines the diary entry model: one record per calendar
// date with free-text content and a mood tag.
package entry

import (
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Entry is one diary record. Date is the canonical YYYY-MM-DD key; there is
// at most one entry per date, enforced by the persistence layer keying on it.
type Entry struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty" bson:"id,omitempty"`
	Date      string    `json:"date" yaml:"date" bson:"date"`
	Content   string    `json:"content" yaml:"content" bson:"content"`
	Mood      mood.Mood `json:"mood" yaml:"mood" bson:"mood"`
	WordCount int       `json:"wordCount,omitempty" yaml:"wordCount,omitempty" bson:"word_count,omitempty"`
	Created   Timestamp `json:"created" yaml:"created" bson:"created"`
	Updated   Timestamp `json:"updated" yaml:"updated" bson:"updated"`
}

// New creates an entry for the given date. The mood is normalized so an
// unknown value never ends up persisted.
func New(date, content string, m mood.Mood) *Entry {
	now := time.Now()
	return &Entry{
		Date:      date,
		Content:   content,
		Mood:      m.Normalize(),
		WordCount: CountWords(content),
		Created:   Timestamp{Time: now},
		Updated:   Timestamp{Time: now},
	}
}

// Touch refreshes the update timestamp and derived fields after an edit.
// The creation timestamp is left alone.
func (e *Entry) Touch() {
	e.Updated = Timestamp{Time: time.Now()}
	e.WordCount = CountWords(e.Content)
	e.Mood = e.Mood.Normalize()
}

// Title returns the long display form of the entry's date.
func (e *Entry) Title() string {
	return timeutil.DisplayDate(e.Date)
}

func (e *Entry) String() string {
	g := e.Mood.Glyph()
	return g.Symbol + " " + e.Date + "  " + Excerpt(e.Content, 60)
}

// CountWords counts whitespace-separated words in content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// Excerpt truncates content to at most n runes on a single line.
func Excerpt(content string, n int) string {
	flat := strings.Join(strings.Fields(content), " ")
	runes := []rune(flat)
	if len(runes) <= n {
		return flat
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
