package knowledge

import (
	"sort"
	"sync/atomic"
	"time"
)

// ContentItem is a single named text blob from the knowledge base.
type ContentItem struct {
	Name string
	Text string
}

type snapshot struct {
	items      map[string]ContentItem
	names      []string // insertion (load) order
	lastUpdate time.Time
}

// Store holds the loaded knowledge base. Reload swaps the whole snapshot
// atomically, so a query that grabbed a snapshot never sees a half-written map.
type Store struct {
	current atomic.Pointer[snapshot]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&snapshot{
		items: map[string]ContentItem{},
		names: []string{},
	})
	return s
}

// Replace installs a new content map wholesale.
func (s *Store) Replace(content map[string]string) {
	names := make([]string, 0, len(content))
	for name := range content {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make(map[string]ContentItem, len(content))
	for name, text := range content {
		items[name] = ContentItem{Name: name, Text: text}
	}

	s.current.Store(&snapshot{
		items:      items,
		names:      names,
		lastUpdate: time.Now().UTC(),
	})
}

// Snapshot returns a stable view of the store for the duration of one query.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{inner: s.current.Load()}
}

func (s *Store) Len() int {
	return len(s.current.Load().items)
}

func (s *Store) LastUpdate() time.Time {
	return s.current.Load().lastUpdate
}

// Snapshot is a read-only view over one generation of the store.
type Snapshot struct {
	inner *snapshot
}

// Names returns document names in deterministic order.
func (v Snapshot) Names() []string {
	return v.inner.names
}

func (v Snapshot) Get(name string) (ContentItem, bool) {
	item, ok := v.inner.items[name]
	return item, ok
}

func (v Snapshot) Len() int {
	return len(v.inner.items)
}
