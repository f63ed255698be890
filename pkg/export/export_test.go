package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
)

func sample() []*entry.Entry {
	return []*entry.Entry{
		entry.New("2024-03-01", "went hiking", mood.Happy),
		entry.New("2024-03-05", "rainy day, stayed in", mood.Tired),
		entry.New("2024-04-02", "april begins", mood.Normal),
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: "2024-03-01", End: "2024-03-31"}
	for date, want := range map[string]bool{
		"2024-02-29": false,
		"2024-03-01": true,
		"2024-03-31": true,
		"2024-04-01": false,
	} {
		if got := r.Contains(date); got != want {
			t.Errorf("Contains(%s) = %t, want %t", date, got, want)
		}
	}
	if !(Range{}).Contains("1999-01-01") {
		t.Error("empty range should contain every date")
	}
}

func TestExportJSONFiltersAndCounts(t *testing.T) {
	data, err := Export(sample(), Options{
		Format:      FormatJSON,
		Range:       Range{Start: "2024-03-01", End: "2024-03-31"},
		IncludeMood: true,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.TotalEntries != 2 || len(doc.Entries) != 2 {
		t.Fatalf("expected 2 march entries, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Mood != mood.Happy {
		t.Errorf("expected mood kept, got %q", doc.Entries[0].Mood)
	}
	if doc.Entries[0].Created != nil {
		t.Error("metadata should be omitted unless requested")
	}
}

func TestExportJSONOmitsMood(t *testing.T) {
	data, err := Export(sample(), Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Entries[0].Mood != "" {
		t.Errorf("expected mood dropped, got %q", doc.Entries[0].Mood)
	}
}

func TestExportCSVHeaders(t *testing.T) {
	data, err := Export(sample(), Options{
		Format:          FormatCSV,
		IncludeMood:     true,
		IncludeMetadata: true,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "Date,Content,Mood,Created,Updated" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
}

func TestExportTextMentionsEntries(t *testing.T) {
	data, err := Export(sample(), Options{Format: FormatText, IncludeMood: true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "3 entries") {
		t.Errorf("expected entry count in header, got:\n%s", text)
	}
	if !strings.Contains(text, "1. March 1, 2024") {
		t.Errorf("expected numbered display dates, got:\n%s", text)
	}
	if !strings.Contains(text, "went hiking") {
		t.Error("expected entry content in text export")
	}
}

func TestExportHTMLEscapes(t *testing.T) {
	entries := []*entry.Entry{
		entry.New("2024-03-01", "a <b>bold</b> claim, but **markdown** works", mood.Happy),
	}
	data, err := Export(entries, Options{Format: FormatHTML})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "<h2>March 1, 2024</h2>") {
		t.Errorf("expected date heading, got:\n%s", page)
	}
	if !strings.Contains(page, "&lt;b&gt;") {
		t.Error("expected raw html in content to be escaped")
	}
	if strings.Contains(page, "<b>bold</b>") {
		t.Error("expected raw html in content to stay inert")
	}
	if !strings.Contains(page, "<strong>markdown</strong>") {
		t.Errorf("expected markdown emphasis to render, got:\n%s", page)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := Export(sample(), Options{Format: Format("pdf")}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json": FormatJSON,
		".yml": FormatYAML,
		"YAML": FormatYAML,
		"txt":  FormatText,
		".htm": FormatHTML,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRoundTripJSON(t *testing.T) {
	data, err := Export(sample(), Options{
		Format:          FormatJSON,
		IncludeMood:     true,
		IncludeMetadata: true,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	doc, err := Decode(data, FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	entries, err := doc.ToEntries()
	if err != nil {
		t.Fatalf("to entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Mood != mood.Happy {
		t.Errorf("expected mood restored, got %q", entries[0].Mood)
	}
	if entries[0].Created.IsZero() {
		t.Error("expected creation time restored from metadata")
	}
}

func TestRoundTripYAMLDefaultsMood(t *testing.T) {
	data, err := Export(sample(), Options{Format: FormatYAML})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	doc, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	entries, err := doc.ToEntries()
	if err != nil {
		t.Fatalf("to entries: %v", err)
	}
	if entries[0].Mood != mood.Default {
		t.Errorf("mood-less record should default, got %q", entries[0].Mood)
	}
}

func TestDecodeRejectsPresentationFormats(t *testing.T) {
	if _, err := Decode([]byte("whatever"), FormatText); err == nil {
		t.Fatal("expected error importing a txt export")
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "backups", "2024")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(nested, "b.json"),
		filepath.Join(nested, "c.yaml"),
	} {
		if err := os.WriteFile(name, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := Expand([]string{filepath.Join(dir, "**", "*.json")})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 json files, got %v", paths)
	}
}

func TestReadFileInfersFormat(t *testing.T) {
	dir := t.TempDir()
	data, err := Export(sample(), Options{Format: FormatJSON, IncludeMood: true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if doc.TotalEntries != 3 {
		t.Fatalf("expected 3 entries, got %d", doc.TotalEntries)
	}
}
