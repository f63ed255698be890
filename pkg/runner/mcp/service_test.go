package mcp

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/search"
	"tableflip.dev/daybook/pkg/store"
)

type memoryStore struct {
	entries map[string]*entry.Entry
	counter int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]*entry.Entry),
	}
}

func (m *memoryStore) MapAll(ctx context.Context) map[string]*entry.Entry {
	out := make(map[string]*entry.Entry, len(m.entries))
	for date, e := range m.entries {
		out[date] = e
	}
	return out
}

func (m *memoryStore) List(ctx context.Context) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (m *memoryStore) Get(ctx context.Context, date string) (*entry.Entry, error) {
	e, ok := m.entries[date]
	if !ok {
		return nil, store.ErrNotFound
	}
	return e, nil
}

func (m *memoryStore) Store(e *entry.Entry) error {
	if e.ID == "" {
		m.counter++
		e.ID = "mcp-" + strconv.Itoa(m.counter)
	}
	m.entries[e.Date] = e
	return nil
}

func (m *memoryStore) Delete(date string) error {
	if _, ok := m.entries[date]; !ok {
		return store.ErrNotFound
	}
	delete(m.entries, date)
	return nil
}

func (m *memoryStore) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func newTestService() *Service {
	return NewService(&app.Service{Persistence: newMemoryStore()})
}

func TestServiceSaveEntryDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.SaveEntry(ctx, "", "a default day", "")
	if err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if dto.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("expected today, got %s", dto.Date)
	}
	if dto.Mood != string(mood.Default) {
		t.Fatalf("expected default mood, got %s", dto.Mood)
	}
	if dto.ID == "" {
		t.Fatalf("expected generated id")
	}
	if dto.WordCount != 3 {
		t.Fatalf("expected word count 3, got %d", dto.WordCount)
	}
}

func TestServiceEntryByDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.SaveEntry(ctx, "2024-03-01", "first of march", "happy"); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	dto, err := svc.EntryByDate(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("EntryByDate failed: %v", err)
	}
	if dto.MoodSymbol == "" || dto.MoodLabel != "happy" {
		t.Fatalf("expected mood glyph in DTO, got %+v", dto)
	}

	if _, err := svc.EntryByDate(ctx, "1999-01-01"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestServiceDeleteEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.SaveEntry(ctx, "2024-03-01", "gone soon", ""); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if err := svc.DeleteEntry(ctx, "2024-03-01"); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if err := svc.DeleteEntry(ctx, "2024-03-01"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestServiceSearchEntriesLimit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for day := 1; day <= 5; day++ {
		date := "2024-03-0" + strconv.Itoa(day)
		if _, err := svc.SaveEntry(ctx, date, "coffee again", ""); err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	}

	results, err := svc.SearchEntries(ctx, search.Options{Query: "coffee"}, 3)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(results))
	}
	if results[0].Relevance <= 0 {
		t.Fatalf("expected a positive relevance score, got %f", results[0].Relevance)
	}
	if results[0].Highlighted == "" {
		t.Fatal("expected highlighted content")
	}
}

func TestServiceCalendar(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.SaveEntry(ctx, "2024-03-15", "ides of march", "sad"); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	dto, err := svc.Calendar(ctx, 2024, time.March)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if len(dto.Days) != 42 {
		t.Fatalf("expected 42 grid cells, got %d", len(dto.Days))
	}
	if dto.Stats.DaysWithEntries != 1 {
		t.Fatalf("expected one entry day, got %d", dto.Stats.DaysWithEntries)
	}
	for _, d := range dto.Days {
		if d.Date == "2024-03-15" {
			if !d.HasEntry || d.Mood != string(mood.Sad) {
				t.Fatalf("expected entry cell with mood, got %+v", d)
			}
		}
	}
}

func TestServiceCalendarRollsOver(t *testing.T) {
	svc := newTestService()

	dto, err := svc.Calendar(context.Background(), 2024, time.Month(13))
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if dto.Year != 2025 || dto.Month != "January" {
		t.Fatalf("expected January 2025, got %s %d", dto.Month, dto.Year)
	}
}

func TestServiceMoods(t *testing.T) {
	svc := newTestService()
	moods := svc.Moods()
	if len(moods) != 8 {
		t.Fatalf("expected 8 moods, got %d", len(moods))
	}
	for _, m := range moods {
		if m.Symbol == "" || m.Swatch == "" {
			t.Fatalf("incomplete mood DTO: %+v", m)
		}
	}
}
