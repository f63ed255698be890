// Package app provides the high-level diary operations shared by the
// CLI, the TUI, and the MCP server.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/export"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/search"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/timeutil"
)

// ErrNoPersistence is returned when a Service is used before a store is
// attached.
var ErrNoPersistence = errors.New("app: no persistence configured")

// ErrFutureDate is returned when writing to a date after today.
var ErrFutureDate = errors.New("app: cannot write an entry for a future date")

// Service wraps persistence with the entry, calendar, and search logic
// so every surface shares one behavior.
type Service struct {
	Persistence store.Persistence

	// WeekStart controls which weekday heads calendar rows. The zero
	// value is time.Sunday.
	WeekStart time.Weekday
}

// SaveEntry writes the entry for date, creating it or replacing its
// content and mood. The creation timestamp survives updates.
func (s *Service) SaveEntry(ctx context.Context, date, content string, m string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if err := entry.ValidateDate(date); err != nil {
		return nil, err
	}
	if err := entry.ValidateContent(content); err != nil {
		return nil, err
	}
	if date > timeutil.Today() {
		return nil, ErrFutureDate
	}
	md, err := resolveMood(m)
	if err != nil {
		return nil, err
	}

	e, err := s.Persistence.Get(ctx, date)
	if errors.Is(err, store.ErrNotFound) {
		e = entry.New(date, content, md)
	} else if err != nil {
		return nil, err
	} else {
		e.Content = content
		e.Mood = md
		e.Touch()
	}

	if err := s.Persistence.Store(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEntry returns the entry for date, or store.ErrNotFound.
func (s *Service) GetEntry(ctx context.Context, date string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if err := entry.ValidateDate(date); err != nil {
		return nil, err
	}
	return s.Persistence.Get(ctx, date)
}

// DeleteEntry removes the entry for date.
func (s *Service) DeleteEntry(ctx context.Context, date string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := entry.ValidateDate(date); err != nil {
		return err
	}
	return s.Persistence.Delete(date)
}

// Entries lists every entry, oldest first.
func (s *Service) Entries(ctx context.Context) ([]*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.List(ctx), nil
}

// EntryMap returns all entries keyed by date, the shape the calendar
// grid wants.
func (s *Service) EntryMap(ctx context.Context) (map[string]*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.MapAll(ctx), nil
}

// Search runs a relevance-ranked query over all entries.
func (s *Service) Search(ctx context.Context, opts search.Options) ([]*search.Result, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	results := search.Search(s.Persistence.List(ctx), opts)
	out := make([]*search.Result, 0, len(results))
	for i := range results {
		out = append(out, &results[i])
	}
	return out, nil
}

// Suggestions completes a word prefix from entry contents.
func (s *Service) Suggestions(ctx context.Context, prefix string) ([]string, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return search.Suggestions(s.Persistence.List(ctx), prefix), nil
}

// Grid builds the 42-cell calendar for the given month.
func (s *Service) Grid(ctx context.Context, year int, month time.Month) ([]calendar.Day, error) {
	entries, err := s.EntryMap(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.MonthGrid(year, month, entries,
		calendar.WithWeekStart(s.weekStart())), nil
}

// Stats summarizes the given month.
func (s *Service) Stats(ctx context.Context, year int, month time.Month) (calendar.Stats, error) {
	entries, err := s.EntryMap(ctx)
	if err != nil {
		return calendar.Stats{}, err
	}
	return calendar.MonthlyStats(year, month, entries), nil
}

// Export renders entries per the export options.
func (s *Service) Export(ctx context.Context, opts export.Options) ([]byte, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return export.Export(entries, opts)
}

// Import stores entries decoded from an export document. Existing dates
// are skipped unless overwrite is set; the count of written entries is
// returned.
func (s *Service) Import(ctx context.Context, doc *export.Document, overwrite bool) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	entries, err := doc.ToEntries()
	if err != nil {
		return 0, err
	}

	written := 0
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return written, err
		}
		if !overwrite {
			if _, err := s.Persistence.Get(ctx, e.Date); err == nil {
				continue
			} else if !errors.Is(err, store.ErrNotFound) {
				return written, err
			}
		}
		if err := s.Persistence.Store(e); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Today returns the current date in the canonical format.
func (s *Service) Today() string {
	return timeutil.Today()
}

func (s *Service) weekStart() time.Weekday {
	if s.WeekStart >= time.Sunday && s.WeekStart <= time.Saturday {
		return s.WeekStart
	}
	return calendar.DefaultWeekStart
}

func resolveMood(alias string) (mood.Mood, error) {
	return mood.ForAlias(alias)
}
