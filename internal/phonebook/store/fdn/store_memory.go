package fdn

import (
	"context"
	"sort"
	"sync"

	"phonebookd/internal/phonebook/models"
	"phonebookd/pkg/platform/sentinel"
)

// InMemoryFdnStore is the local copy of the SIM's FDN list, keyed by record
// index. It becomes usable for mutations only after Replace has loaded a
// successful read; the SIM stays the system of record.
type InMemoryFdnStore struct {
	mu      sync.RWMutex
	entries map[int]models.FdnEntry
	read    bool
}

func New() *InMemoryFdnStore {
	return &InMemoryFdnStore{entries: make(map[int]models.FdnEntry)}
}

// State reports whether a read has been loaded.
func (s *InMemoryFdnStore) State() models.FdnState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.read {
		return models.FdnCached
	}
	return models.FdnUnread
}

// Replace loads the result of a successful read and marks the store cached.
func (s *InMemoryFdnStore) Replace(_ context.Context, entries []models.FdnEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[int]models.FdnEntry, len(entries))
	for _, e := range entries {
		s.entries[e.Index] = e
	}
	s.read = true
	return nil
}

// List returns all entries ordered by index.
func (s *InMemoryFdnStore) List(_ context.Context) ([]models.FdnEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FdnEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func (s *InMemoryFdnStore) Get(_ context.Context, index int) (models.FdnEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[index]; ok {
		return e, nil
	}
	return models.FdnEntry{}, sentinel.ErrNotFound
}

// Put stores entry under its index, replacing any previous record.
func (s *InMemoryFdnStore) Put(_ context.Context, entry models.FdnEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Index] = entry
	return nil
}

// Update rewrites name and number of an existing record.
func (s *InMemoryFdnStore) Update(_ context.Context, entry models.FdnEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.Index]; !ok {
		return sentinel.ErrNotFound
	}
	s.entries[entry.Index] = entry
	return nil
}

func (s *InMemoryFdnStore) Delete(_ context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[index]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.entries, index)
	return nil
}

func (s *InMemoryFdnStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
