// Package calendar turns a month plus a date-keyed entry snapshot into a
// display-ready grid of days and monthly statistics.
package calendar

import (
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/timeutil"
)

// GridCells is the fixed grid size: six full weeks, regardless of month
// length or starting weekday.
const GridCells = 42

// DefaultWeekStart is the week convention used unless configured otherwise.
// The grid and the weekday labels always agree on it.
const DefaultWeekStart = time.Sunday

// Day is one cell of the calendar grid. It is a derived, read-only
// projection; the grid is recomputed in full on every input change.
type Day struct {
	Date         time.Time
	DateString   string
	DayNumber    int
	CurrentMonth bool
	Today        bool
	HasEntry     bool
	PrevMonth    bool
	NextMonth    bool
	Selectable   bool
	Weekend      bool
	Entry        *entry.Entry
}

// Option adjusts grid generation.
type Option func(*config)

type config struct {
	today     time.Time
	weekStart time.Weekday
}

// WithToday pins the "current date" used for the today and selectable
// flags. Callers that keep a grid across a day boundary must regenerate it.
func WithToday(t time.Time) Option {
	return func(c *config) { c.today = t }
}

// WithWeekStart sets the first weekday of each grid row. Sunday is the
// default; Monday is the common alternative.
func WithWeekStart(w time.Weekday) Option {
	return func(c *config) { c.weekStart = w }
}

func newConfig(opts []Option) config {
	c := config{today: time.Now(), weekStart: DefaultWeekStart}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// MonthGrid produces exactly GridCells day descriptors for the given month:
// the trailing days of the previous month needed to reach the configured
// week start, every day of the target month in order, then leading days of
// the next month. Out-of-range months roll the year over (time.Date
// semantics), so the function is total over all inputs.
func MonthGrid(year int, month time.Month, entries map[string]*entry.Entry, opts ...Option) []Day {
	cfg := newConfig(opts)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := int(first.Weekday()) - int(cfg.weekStart)
	if offset < 0 {
		offset += 7
	}
	start := first.AddDate(0, 0, -offset)
	todayString := timeutil.FormatDate(cfg.today)

	days := make([]Day, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		d := start.AddDate(0, 0, i)
		ds := timeutil.FormatDate(d)
		current := d.Month() == first.Month() && d.Year() == first.Year()
		e := entries[ds]

		days = append(days, Day{
			Date:         d,
			DateString:   ds,
			DayNumber:    d.Day(),
			CurrentMonth: current,
			Today:        ds == todayString,
			HasEntry:     e != nil,
			PrevMonth:    !current && d.Before(first),
			NextMonth:    !current && !d.Before(first),
			Selectable:   Selectable(ds, todayString),
			Weekend:      d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
			Entry:        e,
		})
	}
	return days
}

// Selectable reports whether a date may be picked: anything not strictly
// after today. Canonical date strings compare lexicographically.
func Selectable(dateString, today string) bool {
	return dateString <= today
}

// DaysIn returns the number of calendar days in the given month.
func DaysIn(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}

// GroupByWeek splits a grid into rows of seven days.
func GroupByWeek(days []Day) [][]Day {
	weeks := make([][]Day, 0, len(days)/7+1)
	for i := 0; i < len(days); i += 7 {
		end := i + 7
		if end > len(days) {
			end = len(days)
		}
		weeks = append(weeks, days[i:end])
	}
	return weeks
}

// NextMonth steps the reference date one calendar month forward. Day-of-month
// overflow rolls into the following month per time.AddDate: stepping from
// January 31 lands on March 2 (March 3 in leap years).
func NextMonth(ref time.Time) time.Time {
	return ref.AddDate(0, 1, 0)
}

// PreviousMonth steps the reference date one calendar month back, with the
// same overflow rule as NextMonth.
func PreviousMonth(ref time.Time) time.Time {
	return ref.AddDate(0, -1, 0)
}

// GoToDate resolves a canonical date string to a reference date.
func GoToDate(date string) (time.Time, error) {
	return timeutil.ParseDate(date)
}

var weekdayShort = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// WeekdayLabels returns the two-letter day headers rotated to the given
// week start, matching the column order MonthGrid produces.
func WeekdayLabels(start time.Weekday) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		labels[i] = weekdayShort[(int(start)+i)%7]
	}
	return labels
}
