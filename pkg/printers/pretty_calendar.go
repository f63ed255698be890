package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/calendar"
)

const calWidth = len("Su Mo Tu We Th Fr Sa")

// Calendar prints the month grid. Days with entries are bold, today is
// underlined, and the lead/trail days of adjacent months are faint.
func (pp *PrettyPrint) Calendar(year int, month time.Month, days []calendar.Day, weekStart time.Weekday) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", month, year)
	mid := (calWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	h := color.New(color.Faint)
	_, _ = h.Println(strings.Join(calendar.WeekdayLabels(weekStart), " "))

	adjacent := color.New(color.Faint, color.FgWhite)
	plain := color.New(color.FgWhite)
	entry := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiCyan)

	for i, d := range days {
		printer := plain
		switch {
		case d.Today:
			printer = today
		case d.HasEntry && d.CurrentMonth:
			printer = entry
		case !d.CurrentMonth:
			printer = adjacent
		}
		_, _ = printer.Printf("%2d", d.DayNumber)
		if (i+1)%7 == 0 {
			fmt.Print("\n")
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Print("\n")
}

// CalendarWithMoods lays out the grid and follows it with a mood strip
// for the month's entry days.
func (pp *PrettyPrint) CalendarWithMoods(year int, month time.Month, days []calendar.Day, weekStart time.Weekday) {
	pp.Calendar(year, month, days, weekStart)

	f := color.New(color.Faint)
	var strip strings.Builder
	for _, d := range days {
		if !d.CurrentMonth || d.Entry == nil {
			continue
		}
		strip.WriteString(d.Entry.Mood.Glyph().Symbol)
	}
	if strip.Len() > 0 {
		_, _ = f.Printf("%s\n", strip.String())
	}
	fmt.Print("\n")
}
