package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string          { return t.path }
func (t testConfig) Backend() Backend          { return BackendLocal }
func (t testConfig) RemoteURI() string         { return "" }
func (t testConfig) RemoteDatabase() string    { return "" }
func (t testConfig) WeekStart() time.Weekday   { return time.Sunday }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestStoreAndGet(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	e := entry.New("2024-03-01", "first entry", mood.Happy)
	if err := p.Store(e); err != nil {
		t.Fatalf("store: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}

	got, err := p.Get(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "first entry" || got.Mood != mood.Happy {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	p := load(t)
	if _, err := p.Get(context.Background(), "2024-01-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreRejectsBadDate(t *testing.T) {
	p := load(t)
	e := entry.New("March 1", "bad key", mood.Normal)
	if err := p.Store(e); err == nil {
		t.Fatalf("expected error for non-canonical date")
	}
}

func TestOneEntryPerDate(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	first := entry.New("2024-03-01", "draft", mood.Normal)
	if err := p.Store(first); err != nil {
		t.Fatalf("store: %v", err)
	}
	second := entry.New("2024-03-01", "rewrite", mood.Good)
	second.ID = first.ID
	if err := p.Store(second); err != nil {
		t.Fatalf("store: %v", err)
	}

	all := p.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected a single entry for the date, got %d", len(all))
	}
	if all[0].Content != "rewrite" {
		t.Fatalf("expected the later write to win, got %q", all[0].Content)
	}
}

func TestListSortedByDate(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	for _, d := range []string{"2024-03-10", "2024-02-01", "2024-03-01"} {
		if err := p.Store(entry.New(d, "entry", mood.Normal)); err != nil {
			t.Fatalf("store %s: %v", d, err)
		}
	}

	all := p.List(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	want := []string{"2024-02-01", "2024-03-01", "2024-03-10"}
	for i, e := range all {
		if e.Date != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, e.Date, want[i])
		}
	}
}

func TestMapAllKeysByDate(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	if err := p.Store(entry.New("2024-03-01", "hello", mood.Happy)); err != nil {
		t.Fatalf("store: %v", err)
	}
	m := p.MapAll(ctx)
	if len(m) != 1 {
		t.Fatalf("expected one entry, got %d", len(m))
	}
	if m["2024-03-01"] == nil {
		t.Fatalf("expected map keyed by canonical date, got %v", m)
	}
}

func TestDelete(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	if err := p.Store(entry.New("2024-03-01", "gone soon", mood.Sad)); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Delete("2024-03-01"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(ctx, "2024-03-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := p.Delete("2024-03-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete should report ErrNotFound, got %v", err)
	}
}

func TestWatchEmitsEntryChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Let the watcher goroutine subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Store(entry.New("2024-03-01", "hello world", mood.Happy)); err != nil {
		t.Fatalf("store entry: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventEntryChanged {
				if evt.Date != "2024-03-01" {
					t.Fatalf("expected date 2024-03-01, got %q", evt.Date)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
