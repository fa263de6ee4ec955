package logic

import (
	"sync"

	"serpnav/internal/domain"
)

// ResultItem is the Item handle for one search result
type ResultItem struct {
	mu     sync.RWMutex
	result domain.Result
	tags   map[domain.VisualTag]bool
}

// NewResultItem wraps a result in an item handle
func NewResultItem(r domain.Result) *ResultItem {
	return &ResultItem{
		result: r,
		tags:   make(map[domain.VisualTag]bool),
	}
}

// Result returns the wrapped result
func (i *ResultItem) Result() domain.Result {
	return i.result
}

func (i *ResultItem) Link() (string, bool) {
	return i.result.URL, i.result.URL != ""
}

func (i *ResultItem) Label() string {
	return i.result.Title
}

func (i *ResultItem) ApplyVisualState(tag domain.VisualTag) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tags[tag] = true
}

func (i *ResultItem) RemoveVisualState(tag domain.VisualTag) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.tags, tag)
}

func (i *ResultItem) HasVisualState(tag domain.VisualTag) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tags[tag]
}

func (i *ResultItem) Height() int {
	h := 0
	if i.result.Title != "" {
		h++
	}
	if i.result.Snippet != "" {
		h++
	}
	return h
}

// MemoryResultStore is an in-memory implementation of ResultStore
type MemoryResultStore struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemoryResultStore creates an empty result store
func NewMemoryResultStore() *MemoryResultStore {
	return &MemoryResultStore{}
}

// Replace drops the previous handles and wraps results, skipping hidden ones
func (s *MemoryResultStore) Replace(results []domain.Result) int {
	items := make([]Item, 0, len(results))
	for _, r := range results {
		item := NewResultItem(r)
		if item.Height() == 0 {
			continue
		}
		items = append(items, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return len(items)
}

// ListItems returns a copy so callers never observe a later Replace
func (s *MemoryResultStore) ListItems() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Item, len(s.items))
	copy(result, s.items)
	return result
}

func (s *MemoryResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
