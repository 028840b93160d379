package memory

import (
	"context"
	"sync"

	audit "phonebookd/pkg/platform/audit"
)

// DefaultRetention is the number of events kept per modem when no option
// overrides it.
const DefaultRetention = 1000

// InMemoryStore keeps the most recent events per modem. Older events are
// discarded once a modem exceeds its retention.
type InMemoryStore struct {
	mu        sync.RWMutex
	events    map[string][]audit.Event
	retention int
}

type Option func(*InMemoryStore)

// WithRetention caps the events kept per modem. Non-positive values keep
// DefaultRetention.
func WithRetention(n int) Option {
	return func(s *InMemoryStore) {
		if n > 0 {
			s.retention = n
		}
	}
}

func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		events:    make(map[string][]audit.Event),
		retention: DefaultRetention,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]audit.Event)
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	events := append(s.events[event.ModemID], event)
	if over := len(events) - s.retention; over > 0 {
		// Copy down so the dropped prefix can be collected.
		events = append(events[:0:0], events[over:]...)
	}
	s.events[event.ModemID] = events
	return nil
}

// ListByModem returns events for one modem in the order they were appended.
func (s *InMemoryStore) ListByModem(_ context.Context, modemID string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[modemID]...), nil
}
