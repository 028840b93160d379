package registry

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"phonebookd/internal/phonebook/metrics"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/internal/phonebook/service"
	dErrors "phonebookd/pkg/domain-errors"
)

// Manager owns one phonebook instance per modem.
type Manager struct {
	registry       *Registry
	serviceOptions []service.Option
	logger         *slog.Logger
	metrics        *metrics.Metrics

	mu        sync.RWMutex
	instances map[string]*service.Service
}

type ManagerOption func(*Manager)

func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

func WithMetrics(mt *metrics.Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// WithServiceOptions sets the options applied to every instance created.
func WithServiceOptions(opts ...service.Option) ManagerOption {
	return func(m *Manager) {
		m.serviceOptions = append(m.serviceOptions, opts...)
	}
}

func NewManager(registry *Registry, opts ...ManagerOption) *Manager {
	m := &Manager{
		registry:  registry,
		logger:    slog.Default(),
		instances: make(map[string]*service.Service),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create probes driverName for modem and registers the resulting instance.
// A modem has at most one instance.
func (m *Manager) Create(ctx context.Context, modem ports.ModemInfo, driverName string) (*service.Service, error) {
	if modem.ID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "modem id is required")
	}

	m.mu.RLock()
	_, exists := m.instances[modem.ID]
	m.mu.RUnlock()
	if exists {
		return nil, dErrors.New(dErrors.CodeConflict, "phonebook already exists for modem "+modem.ID)
	}

	backend, err := m.registry.Probe(ctx, driverName, modem)
	if err != nil {
		return nil, err
	}

	svc := service.New(modem.ID, driverName, backend, m.serviceOptions...)

	m.mu.Lock()
	if _, exists := m.instances[modem.ID]; exists {
		m.mu.Unlock()
		_ = svc.Remove(ctx)
		return nil, dErrors.New(dErrors.CodeConflict, "phonebook already exists for modem "+modem.ID)
	}
	m.instances[modem.ID] = svc
	count := len(m.instances)
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.SetInstances(count)
	}
	m.logger.InfoContext(ctx, "phonebook instance created",
		"modem_id", modem.ID,
		"driver", driverName,
	)
	return svc, nil
}

func (m *Manager) Get(modemID string) (*service.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	svc, ok := m.instances[modemID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "no phonebook for modem "+modemID)
	}
	return svc, nil
}

// Remove tears down and forgets the instance of modemID.
func (m *Manager) Remove(ctx context.Context, modemID string) error {
	m.mu.Lock()
	svc, ok := m.instances[modemID]
	if ok {
		delete(m.instances, modemID)
	}
	count := len(m.instances)
	m.mu.Unlock()
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "no phonebook for modem "+modemID)
	}

	if m.metrics != nil {
		m.metrics.SetInstances(count)
	}
	m.logger.InfoContext(ctx, "phonebook instance removed", "modem_id", modemID)
	return svc.Remove(ctx)
}

// List returns the status of every instance ordered by modem ID.
func (m *Manager) List() []models.Status {
	m.mu.RLock()
	out := make([]models.Status, 0, len(m.instances))
	for _, svc := range m.instances {
		out = append(out, svc.Status())
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ModemID < out[j].ModemID })
	return out
}

// Close removes every instance.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.RLock()
	ids := make([]string, 0, len(m.instances))
	for id := range m.instances {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	var errs []error
	for _, id := range ids {
		if err := m.Remove(ctx, id); err != nil && !dErrors.HasCode(err, dErrors.CodeNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
