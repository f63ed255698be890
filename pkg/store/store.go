// Package store persists diary entries keyed by their canonical date.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/timeutil"
)

// ErrNotFound is returned when no entry exists for the requested date.
var ErrNotFound = errors.New("store: entry not found")

// Persistence is the storage contract for diary entries. Keys are
// canonical YYYY-MM-DD date strings, which makes the one-entry-per-date
// invariant structural.
type Persistence interface {
	MapAll(ctx context.Context) map[string]*entry.Entry
	List(ctx context.Context) []*entry.Entry
	Get(ctx context.Context, date string) (*entry.Entry, error)
	Store(e *entry.Entry) error
	Delete(date string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load builds a Persistence from config, discovering config when nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	if cfg.Backend() == BackendRemote {
		return loadRemote(cfg)
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: dateToPathTransform,
		InverseTransform:  pathToDateTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.Date == "" {
		e.Date = key
	}
	return e, nil
}

func (p *persistence) MapAll(ctx context.Context) map[string]*entry.Entry {
	all := make(map[string]*entry.Entry)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all[e.Date] = e
	}
	return all
}

func (p *persistence) List(ctx context.Context) []*entry.Entry {
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEntries(all)
	return all
}

func (p *persistence) Get(_ context.Context, date string) (*entry.Entry, error) {
	if !p.d.Has(date) {
		return nil, ErrNotFound
	}
	return p.read(date)
}

func (p *persistence) Store(e *entry.Entry) error {
	if e == nil {
		return errors.New("store: nil entry")
	}
	if err := entry.ValidateDate(e.Date); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(e.Date, data)
}

func (p *persistence) Delete(date string) error {
	if !p.d.Has(date) {
		return ErrNotFound
	}
	return p.d.Erase(date)
}

func sortEntries(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

// dateToPathTransform shelves "2024-03-01" as 2024/03/01, giving the
// store a year/month directory layout.
func dateToPathTransform(key string) *diskv.PathKey {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 {
		return &diskv.PathKey{FileName: key}
	}
	return &diskv.PathKey{
		Path:     parts[:2],
		FileName: parts[2],
	}
}

func pathToDateTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// dateForPath derives the entry date from a filesystem path below base,
// used by the watcher to label change events.
func (p *persistence) dateForPath(path string) string {
	rel := strings.TrimPrefix(path, p.basePath)
	rel = strings.Trim(rel, string(os.PathSeparator))
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) != 3 {
		return ""
	}
	date := strings.Join(parts, "-")
	if !timeutil.ValidDate(date) {
		return ""
	}
	return date
}
