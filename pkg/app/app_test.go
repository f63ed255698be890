package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/export"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/search"
	"tableflip.dev/daybook/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	counter int
	entries map[string]*entry.Entry
}

func newMemoryPersistence(entries ...*entry.Entry) *memoryPersistence {
	mp := &memoryPersistence{entries: make(map[string]*entry.Entry)}
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.ID == "" {
			e.ID = mp.newID()
		}
		mp.entries[e.Date] = cloneEntry(e)
	}
	return mp
}

func (m *memoryPersistence) newID() string {
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

func (m *memoryPersistence) MapAll(_ context.Context) map[string]*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*entry.Entry, len(m.entries))
	for date, e := range m.entries {
		out[date] = cloneEntry(e)
	}
	return out
}

func (m *memoryPersistence) List(_ context.Context) []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entry.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, cloneEntry(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (m *memoryPersistence) Get(_ context.Context, date string) (*entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[date]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneEntry(e), nil
}

func (m *memoryPersistence) Store(e *entry.Entry) error {
	if e == nil {
		return errors.New("nil entry")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.Date == "" {
		return errors.New("missing date")
	}
	if e.ID == "" {
		e.ID = m.newID()
	}
	m.entries[e.Date] = cloneEntry(e)
	return nil
}

func (m *memoryPersistence) Delete(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[date]; !ok {
		return store.ErrNotFound
	}
	delete(m.entries, date)
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func cloneEntry(e *entry.Entry) *entry.Entry {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func TestSaveEntryCreates(t *testing.T) {
	mp := newMemoryPersistence()
	svc := &Service{Persistence: mp}
	ctx := context.Background()

	e, err := svc.SaveEntry(ctx, "2024-03-01", "a fresh start", "happy")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if e.Mood != mood.Happy {
		t.Fatalf("expected mood happy, got %q", e.Mood)
	}
	if e.WordCount != 3 {
		t.Fatalf("expected word count 3, got %d", e.WordCount)
	}
	if _, err := mp.Get(ctx, "2024-03-01"); err != nil {
		t.Fatalf("entry not persisted: %v", err)
	}
}

func TestSaveEntryUpdatesPreservingCreated(t *testing.T) {
	existing := entry.New("2024-03-01", "first draft", mood.Normal)
	existing.Created = entry.Timestamp{Time: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
	mp := newMemoryPersistence(existing)
	svc := &Service{Persistence: mp}
	ctx := context.Background()

	e, err := svc.SaveEntry(ctx, "2024-03-01", "second thoughts", "sad")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if e.Content != "second thoughts" || e.Mood != mood.Sad {
		t.Fatalf("update not applied: %+v", e)
	}
	if !e.Created.Time.Equal(existing.Created.Time) {
		t.Fatalf("creation time changed: %v", e.Created)
	}
	if !e.Updated.After(e.Created.Time) {
		t.Fatal("expected updated to move forward")
	}

	all := mp.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one entry per date, got %d", len(all))
	}
}

func TestSaveEntryValidation(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	ctx := context.Background()

	if _, err := svc.SaveEntry(ctx, "2024-03-01", "   ", ""); err == nil {
		t.Error("expected blank content to be rejected")
	}
	if _, err := svc.SaveEntry(ctx, "not-a-date", "hello", ""); err == nil {
		t.Error("expected bad date to be rejected")
	}
	if _, err := svc.SaveEntry(ctx, "2024-03-01", strings.Repeat("x", entry.MaxContentLength+1), ""); err == nil {
		t.Error("expected oversized content to be rejected")
	}
	if _, err := svc.SaveEntry(ctx, "2024-03-01", "hello", "ecstatic"); err == nil {
		t.Error("expected unknown mood alias to be rejected")
	}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if _, err := svc.SaveEntry(ctx, tomorrow, "hello", ""); !errors.Is(err, ErrFutureDate) {
		t.Errorf("expected ErrFutureDate, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	mp := newMemoryPersistence(entry.New("2024-03-01", "bye", mood.Normal))
	svc := &Service{Persistence: mp}
	ctx := context.Background()

	if err := svc.DeleteEntry(ctx, "2024-03-01"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteEntry(ctx, "2024-03-01"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchThroughService(t *testing.T) {
	mp := newMemoryPersistence(
		entry.New("2024-03-01", "coffee with friends", mood.Happy),
		entry.New("2024-03-02", "quiet evening", mood.Tired),
	)
	svc := &Service{Persistence: mp}

	results, err := svc.Search(context.Background(), search.Options{Query: "coffee"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Entry.Date != "2024-03-01" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestGridMarksEntries(t *testing.T) {
	mp := newMemoryPersistence(entry.New("2024-03-15", "ides of march", mood.Normal))
	svc := &Service{Persistence: mp}

	days, err := svc.Grid(context.Background(), 2024, time.March)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(days))
	}
	found := false
	for _, d := range days {
		if d.DateString == "2024-03-15" {
			found = d.HasEntry
		}
	}
	if !found {
		t.Fatal("expected 2024-03-15 to be marked as having an entry")
	}
}

func TestStatsThroughService(t *testing.T) {
	mp := newMemoryPersistence(entry.New("2024-03-01", "hello march", mood.Happy))
	svc := &Service{Persistence: mp}

	stats, err := svc.Stats(context.Background(), 2024, time.March)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.DaysWithEntries != 1 || stats.CompletionRate != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestImportSkipsAndOverwrites(t *testing.T) {
	mp := newMemoryPersistence(entry.New("2024-03-01", "original", mood.Normal))
	svc := &Service{Persistence: mp}
	ctx := context.Background()

	doc := &export.Document{
		Entries: []export.Record{
			{Date: "2024-03-01", Content: "imported", Mood: mood.Happy},
			{Date: "2024-03-02", Content: "brand new", Mood: mood.Good},
		},
	}

	written, err := svc.Import(ctx, doc, false)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if written != 1 {
		t.Fatalf("expected 1 write without overwrite, got %d", written)
	}
	kept, _ := mp.Get(ctx, "2024-03-01")
	if kept.Content != "original" {
		t.Fatalf("existing entry should survive, got %q", kept.Content)
	}

	written, err = svc.Import(ctx, doc, true)
	if err != nil {
		t.Fatalf("import overwrite: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 writes with overwrite, got %d", written)
	}
	replaced, _ := mp.Get(ctx, "2024-03-01")
	if replaced.Content != "imported" {
		t.Fatalf("expected overwrite, got %q", replaced.Content)
	}
}

func TestServiceRequiresPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Entries(context.Background()); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}
