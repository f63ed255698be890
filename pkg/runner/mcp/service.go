// Package mcp provides the Model Context Protocol server integration
// for daybook.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/search"
	"tableflip.dev/daybook/pkg/store"
)

// Service coordinates the diary operations shared by the MCP server.
type Service struct {
	App *app.Service
}

// ErrEntryNotFound is returned when no entry exists for a date.
var ErrEntryNotFound = errors.New("entry not found")

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	Content     string `json:"content"`
	Mood        string `json:"mood"`
	MoodSymbol  string `json:"moodSymbol"`
	MoodLabel   string `json:"moodLabel"`
	WordCount   int    `json:"wordCount"`
	CreatedISO  string `json:"created,omitempty"`
	UpdatedISO  string `json:"updated,omitempty"`
	CreatedUnix int64  `json:"createdUnix,omitempty"`
}

// SearchResultDTO pairs an entry with its relevance score and
// highlighted content.
type SearchResultDTO struct {
	Entry       EntryDTO `json:"entry"`
	Relevance   float64  `json:"relevance"`
	Matched     []string `json:"matchedTerms,omitempty"`
	Highlighted string   `json:"highlightedContent,omitempty"`
}

// DayDTO is one calendar grid cell.
type DayDTO struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	CurrentMonth bool   `json:"currentMonth"`
	Today        bool   `json:"today"`
	HasEntry     bool   `json:"hasEntry"`
	Selectable   bool   `json:"selectable"`
	Mood         string `json:"mood,omitempty"`
}

// CalendarDTO carries a month grid plus its summary statistics.
type CalendarDTO struct {
	Year  int            `json:"year"`
	Month string         `json:"month"`
	Days  []DayDTO       `json:"days"`
	Stats calendar.Stats `json:"stats"`
}

// MoodDTO describes one selectable mood.
type MoodDTO struct {
	ID      string   `json:"id"`
	Symbol  string   `json:"symbol"`
	Label   string   `json:"label"`
	Aliases []string `json:"aliases"`
	Swatch  string   `json:"swatch"`
}

// NewService builds a service wrapper over the shared app facade.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// SaveEntry creates or replaces the entry for a date.
func (s *Service) SaveEntry(ctx context.Context, date, content, moodAlias string) (*EntryDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	if date == "" {
		date = s.App.Today()
	}
	e, err := s.App.SaveEntry(ctx, date, content, moodAlias)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// EntryByDate fetches the entry for a single date.
func (s *Service) EntryByDate(ctx context.Context, date string) (*EntryDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	e, err := s.App.GetEntry(ctx, date)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, date)
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// DeleteEntry removes the entry for a date.
func (s *Service) DeleteEntry(ctx context.Context, date string) error {
	if s.App == nil {
		return errors.New("service is not configured")
	}
	err := s.App.DeleteEntry(ctx, date)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, date)
	}
	return err
}

// ListEntries returns every entry, oldest first.
func (s *Service) ListEntries(ctx context.Context) ([]EntryDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	entries, err := s.App.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(entries), nil
}

// SearchEntries runs a ranked query with optional filters.
func (s *Service) SearchEntries(ctx context.Context, opts search.Options, limit int) ([]SearchResultDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	if limit <= 0 {
		limit = 20
	}
	results, err := s.App.Search(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]SearchResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResultDTO{
			Entry:       toDTO(r.Entry),
			Relevance:   r.Relevance,
			Matched:     r.MatchedTerms,
			Highlighted: r.HighlightedContent,
		})
	}
	return out, nil
}

// Calendar returns the 42-cell grid and stats for a month.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) (*CalendarDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}

	// Normalize out-of-range months the way time.Date does.
	ref := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	year, month = ref.Year(), ref.Month()

	days, err := s.App.Grid(ctx, year, month)
	if err != nil {
		return nil, err
	}
	stats, err := s.App.Stats(ctx, year, month)
	if err != nil {
		return nil, err
	}

	dto := &CalendarDTO{
		Year:  year,
		Month: month.String(),
		Days:  make([]DayDTO, 0, len(days)),
		Stats: stats,
	}
	for _, d := range days {
		cell := DayDTO{
			Date:         d.DateString,
			Day:          d.DayNumber,
			CurrentMonth: d.CurrentMonth,
			Today:        d.Today,
			HasEntry:     d.HasEntry,
			Selectable:   d.Selectable,
		}
		if d.Entry != nil {
			cell.Mood = string(d.Entry.Mood)
		}
		dto.Days = append(dto.Days, cell)
	}
	return dto, nil
}

// Moods lists the supported moods.
func (s *Service) Moods() []MoodDTO {
	glyphs := mood.DefaultGlyphs()
	out := make([]MoodDTO, 0, len(glyphs))
	for _, g := range glyphs {
		out = append(out, MoodDTO{
			ID:      string(g.ID),
			Symbol:  g.Symbol,
			Label:   g.Label,
			Aliases: g.Aliases,
			Swatch:  g.ID.Swatch(),
		})
	}
	return out
}

// Suggestions completes a word prefix from entry contents.
func (s *Service) Suggestions(ctx context.Context, prefix string) ([]string, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	return s.App.Suggestions(ctx, prefix)
}

func toDTOs(entries []*entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e *entry.Entry) EntryDTO {
	g := e.Mood.Glyph()
	dto := EntryDTO{
		ID:          e.ID,
		Date:        e.Date,
		DisplayDate: e.Title(),
		Content:     e.Content,
		Mood:        string(e.Mood),
		MoodSymbol:  g.Symbol,
		MoodLabel:   g.Label,
		WordCount:   e.WordCount,
	}
	if !e.Created.IsZero() {
		dto.CreatedISO = entry.FormatTime(e.Created.Time)
		dto.CreatedUnix = e.Created.Unix()
	}
	if !e.Updated.IsZero() {
		dto.UpdatedISO = entry.FormatTime(e.Updated.Time)
	}
	return dto
}
