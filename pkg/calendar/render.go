package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// RenderOptions controls calendar styling.
type RenderOptions struct {
	HeaderStyle   lipgloss.Style
	AdjacentStyle lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	FutureStyle   lipgloss.Style
	ShowHeader    bool
	ShowAdjacent  bool
	// SelectedDate is the canonical date string of the highlighted cell.
	SelectedDate string
	WeekStart    time.Weekday
}

// Render produces a multi-line month view from a full 42-cell grid.
func Render(days []Day, opts RenderOptions) string {
	if len(days) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		labels := WeekdayLabels(opts.WeekStart)
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(labels, " ")))
	}

	for _, week := range GroupByWeek(days) {
		var cells []string
		for _, day := range week {
			cells = append(cells, renderDay(day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(day Day, opts RenderOptions) string {
	text := fmt.Sprintf("%2d", day.DayNumber)

	if !day.CurrentMonth {
		if !opts.ShowAdjacent {
			return opts.EmptyStyle.Render("  ")
		}
		return opts.AdjacentStyle.Render(text)
	}

	style := opts.EmptyStyle
	if day.HasEntry {
		style = opts.EntryStyle
	}
	if !day.Selectable {
		style = style.Inherit(opts.FutureStyle)
	}
	if day.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if opts.SelectedDate != "" && day.DateString == opts.SelectedDate {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
