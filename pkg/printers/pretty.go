package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/search"
	"tableflip.dev/daybook/pkg/timeutil"
)

const contentWidth = 72

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entry prints one diary entry in full: date title, mood line, and the
// wrapped content.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	if e == nil {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	m := color.New(color.Faint)
	p := color.New()

	pp.Title(e.Title())
	if pp.ShowID && e.ID != "" {
		_, _ = y.Println(e.ID)
	}
	g := e.Mood.Glyph()
	_, _ = m.Printf("%s %s · %d words\n\n", g.Symbol, g.Label, e.WordCount)
	_, _ = p.Println(wordwrap.String(e.Content, contentWidth))
}

// Collection prints entries one per line, newest last.
func (pp *PrettyPrint) Collection(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(e.ID)))
		}
		g := e.Mood.Glyph()
		_, _ = t.Printf("%s %s  %s\n", g.Symbol, e.Date, entry.Excerpt(e.Content, 60))
	}
	_, _ = t.Println("")
}

// SearchResults prints ranked matches with the query terms emphasized.
func (pp *PrettyPrint) SearchResults(query string, results []*search.Result) {
	pp.TitleWithCount("Search", len(results))
	if len(results) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Bold)
	f := color.New(color.Faint)

	for _, r := range results {
		g := r.Entry.Mood.Glyph()
		_, _ = d.Printf("%s %s", g.Symbol, r.Entry.Title())
		if r.Relevance > 0 {
			_, _ = f.Printf("  (%.1f)", r.Relevance)
		}
		_, _ = t.Println("")
		excerpt := entry.Excerpt(r.Entry.Content, 120)
		_, _ = t.Printf("  %s\n", emphasize(excerpt, query))
	}
	_, _ = t.Println("")
}

// Suggestions prints completion candidates for a word prefix.
func (pp *PrettyPrint) Suggestions(words []string) {
	f := color.New(color.Faint, color.Italic)
	t := color.New()
	if len(words) == 0 {
		_, _ = f.Print(" none\n\n")
		return
	}
	_, _ = t.Println(strings.Join(words, "  "))
}

// Stats prints a month summary as a two-column table.
func (pp *PrettyPrint) Stats(s calendar.Stats) {
	pp.Title(fmt.Sprintf("%s %d", s.Month, s.Year))

	table := uitable.New()
	table.AddRow("entries:", fmt.Sprintf("%d of %d days", s.DaysWithEntries, s.TotalDays))
	table.AddRow("completion:", fmt.Sprintf("%d%%", s.CompletionRate))
	table.AddRow("streak:", fmt.Sprintf("%d (longest %d)", s.Streak, s.LongestStreak))
	table.AddRow("words:", fmt.Sprintf("%d (avg %d)", s.TotalWords, s.AverageWords))
	if s.DaysWithEntries > 0 {
		table.AddRow("avg mood:", fmt.Sprintf("%.1f / 5", s.AverageMoodScore))
	}
	fmt.Println(table)

	if len(s.MoodDistribution) > 0 {
		pp.NewLine()
		moods := uitable.New()
		for _, m := range mood.All() {
			n := s.MoodDistribution[m]
			if n == 0 {
				continue
			}
			g := m.Glyph()
			moods.AddRow(fmt.Sprintf("%s %s:", g.Symbol, g.Label), strings.Repeat("▪", n))
		}
		fmt.Println(moods)
	}
	pp.NewLine()
}

// Moods lists the supported moods with their aliases and swatch color.
func (pp *PrettyPrint) Moods() {
	pp.Title("Moods")

	table := uitable.New()
	table.AddRow("", "MOOD", "ALIASES", "COLOR")
	for _, g := range mood.DefaultGlyphs() {
		table.AddRow(g.Symbol, g.Label, strings.Join(g.Aliases, ", "), g.ID.Swatch())
	}
	fmt.Println(table)
	pp.NewLine()
}

// Exported announces where an export landed.
func (pp *PrettyPrint) Exported(path string, n int) {
	c := color.New(color.Faint)
	_, _ = c.Printf("wrote %d entries to %s\n", n, path)
}

// Imported announces an import result.
func (pp *PrettyPrint) Imported(path string, n int) {
	c := color.New(color.Faint)
	_, _ = c.Printf("read %d entries from %s\n", n, path)
}

// Deleted confirms a removal.
func (pp *PrettyPrint) Deleted(date string) {
	c := color.New(color.Faint)
	_, _ = c.Printf("deleted entry for %s\n", timeutil.DisplayDate(date))
}

// emphasize bolds each query-term occurrence in text for terminal output.
func emphasize(text, query string) string {
	spans := search.Spans(text, query)
	if len(spans) == 0 {
		return text
	}
	hl := color.New(color.Bold, color.FgHiYellow)
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])
		b.WriteString(hl.Sprint(text[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(text[last:])
	return b.String()
}
