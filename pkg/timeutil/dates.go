// Package timeutil holds date and duration helpers shared across daybook.
package timeutil

import (
	"fmt"
	"time"
)

// LayoutISO is the canonical date format used as the join key between
// entries and calendar cells.
const LayoutISO = "2006-01-02"

// LayoutDisplay is the long human-readable form used in exports and titles.
const LayoutDisplay = "January 2, 2006"

// FormatDate renders t as a canonical YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseDate parses a canonical date string in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ValidDate reports whether s is a well-formed canonical date string.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Today returns the current local date as a canonical string.
func Today() string {
	return FormatDate(time.Now())
}

// DisplayDate renders a canonical date string in long form. Malformed input
// is returned unchanged rather than failing; display code has nothing
// better to show.
func DisplayDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(LayoutDisplay)
}

// DaysBetween returns the absolute number of calendar days between two
// canonical date strings.
func DaysBetween(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	d := int(e.Sub(s).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d, nil
}
