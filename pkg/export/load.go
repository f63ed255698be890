package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/entry"
)

// Expand resolves glob patterns (doublestar ** included) against the
// filesystem, returning the matched paths sorted and deduplicated.
// A pattern with no metacharacters passes through as a literal path.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	for _, pattern := range patterns {
		base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
		matches, err := doublestar.Glob(os.DirFS(base), rest)
		if err != nil {
			return nil, fmt.Errorf("export: glob %q: %w", pattern, err)
		}
		if len(matches) == 0 && !hasMeta(pattern) {
			matches = []string{rest}
		}
		for _, m := range matches {
			full := filepath.Join(base, filepath.FromSlash(m))
			if _, dup := seen[full]; dup {
				continue
			}
			seen[full] = struct{}{}
			paths = append(paths, full)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// Decode parses an exported document. Only JSON and YAML round-trip;
// the other formats are presentation-only.
func Decode(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("export: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("export: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("export: format %q cannot be imported", format)
	}
	return doc, nil
}

// ReadFile loads an exported document, inferring the format from the
// file extension.
func ReadFile(path string) (*Document, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("export: read %s: %w", path, err)
	}
	return Decode(data, format)
}

// Entries converts a decoded document back into diary entries. Records
// without a mood fall back to the default, and metadata timestamps are
// restored when present.
func (d *Document) ToEntries() ([]*entry.Entry, error) {
	entries := make([]*entry.Entry, 0, len(d.Entries))
	for _, rec := range d.Entries {
		if err := entry.ValidateDate(rec.Date); err != nil {
			return nil, err
		}
		e := entry.New(rec.Date, rec.Content, rec.Mood)
		if rec.Created != nil {
			e.Created = entry.Timestamp{Time: *rec.Created}
		}
		if rec.Updated != nil {
			e.Updated = entry.Timestamp{Time: *rec.Updated}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
