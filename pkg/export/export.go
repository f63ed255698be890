// Package export serializes diary entries for backup and sharing, and
// reads those serializations back in.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Format names a supported export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

// ParseFormat maps a user-supplied format name (or file extension) to a
// Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "txt", "text":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// FormatNames lists the supported format names.
func FormatNames() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatCSV),
		string(FormatText),
		string(FormatHTML),
	}
}

// Range bounds an export by date, inclusive on both ends. Zero values
// leave that end unbounded.
type Range struct {
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}

// Contains reports whether date falls inside the range. Canonical
// YYYY-MM-DD strings order lexicographically, so plain comparison works.
func (r Range) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// Options controls what an export contains.
type Options struct {
	Format          Format
	Range           Range
	IncludeMood     bool
	IncludeMetadata bool
}

// Record is one entry as it appears in a JSON or YAML export.
type Record struct {
	Date    string     `json:"date" yaml:"date"`
	Content string     `json:"content" yaml:"content"`
	Mood    mood.Mood  `json:"mood,omitempty" yaml:"mood,omitempty"`
	Created *time.Time `json:"created,omitempty" yaml:"created,omitempty"`
	Updated *time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// Document is the envelope for JSON and YAML exports.
type Document struct {
	ExportedAt   time.Time `json:"exportedAt" yaml:"exportedAt"`
	Range        Range     `json:"range,omitempty" yaml:"range,omitempty"`
	TotalEntries int       `json:"totalEntries" yaml:"totalEntries"`
	Entries      []Record  `json:"entries" yaml:"entries"`
}

// Export renders entries per opts. Entries outside the range are
// dropped; the rest keep their given order.
func Export(entries []*entry.Entry, opts Options) ([]byte, error) {
	kept := filter(entries, opts.Range)
	switch opts.Format {
	case FormatJSON:
		return toJSON(kept, opts)
	case FormatYAML:
		return toYAML(kept, opts)
	case FormatCSV:
		return toCSV(kept, opts)
	case FormatText:
		return toText(kept, opts), nil
	case FormatHTML:
		return toHTML(kept, opts)
	}
	return nil, fmt.Errorf("export: unknown format %q", opts.Format)
}

// Filename suggests an output name like daybook-export-2024-03-01.json.
func Filename(format Format) string {
	return fmt.Sprintf("daybook-export-%s.%s", timeutil.Today(), format)
}

func filter(entries []*entry.Entry, r Range) []*entry.Entry {
	kept := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil || !r.Contains(e.Date) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func document(entries []*entry.Entry, opts Options) *Document {
	doc := &Document{
		ExportedAt:   time.Now(),
		Range:        opts.Range,
		TotalEntries: len(entries),
		Entries:      make([]Record, 0, len(entries)),
	}
	for _, e := range entries {
		rec := Record{Date: e.Date, Content: e.Content}
		if opts.IncludeMood {
			rec.Mood = e.Mood
		}
		if opts.IncludeMetadata {
			created := e.Created.Time
			updated := e.Updated.Time
			rec.Created = &created
			rec.Updated = &updated
		}
		doc.Entries = append(doc.Entries, rec)
	}
	return doc
}

func toJSON(entries []*entry.Entry, opts Options) ([]byte, error) {
	return json.MarshalIndent(document(entries, opts), "", "  ")
}

func toYAML(entries []*entry.Entry, opts Options) ([]byte, error) {
	return yaml.Marshal(document(entries, opts))
}

func toCSV(entries []*entry.Entry, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Date", "Content"}
	if opts.IncludeMood {
		header = append(header, "Mood")
	}
	if opts.IncludeMetadata {
		header = append(header, "Created", "Updated")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, e := range entries {
		row := []string{timeutil.DisplayDate(e.Date), e.Content}
		if opts.IncludeMood {
			g := e.Mood.Glyph()
			row = append(row, fmt.Sprintf("%s %s", g.Symbol, g.Label))
		}
		if opts.IncludeMetadata {
			row = append(row,
				e.Created.Time.Format(time.RFC3339),
				e.Updated.Time.Format(time.RFC3339))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func toText(entries []*entry.Entry, opts Options) []byte {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	b.WriteString(rule + "\n")
	b.WriteString("Daybook export\n")
	b.WriteString(fmt.Sprintf("Exported: %s\n", time.Now().Format(time.RFC1123)))
	if opts.Range.Start != "" || opts.Range.End != "" {
		b.WriteString(fmt.Sprintf("Period: %s ~ %s\n",
			displayBound(opts.Range.Start), displayBound(opts.Range.End)))
	}
	b.WriteString(fmt.Sprintf("%d entries\n", len(entries)))
	b.WriteString(rule + "\n\n")

	for i, e := range entries {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, timeutil.DisplayDate(e.Date)))
		if opts.IncludeMood {
			g := e.Mood.Glyph()
			b.WriteString(fmt.Sprintf("Mood: %s %s\n", g.Symbol, g.Label))
		}
		b.WriteString("\n")
		b.WriteString(e.Content)
		b.WriteString("\n\n")
		if opts.IncludeMetadata {
			b.WriteString(fmt.Sprintf("Created: %s\n", e.Created.Time.Format(time.RFC1123)))
			b.WriteString(fmt.Sprintf("Updated: %s\n", e.Updated.Time.Format(time.RFC1123)))
		}
		b.WriteString(strings.Repeat("-", 30) + "\n\n")
	}

	return []byte(b.String())
}

func displayBound(date string) string {
	if date == "" {
		return "…"
	}
	return timeutil.DisplayDate(date)
}
