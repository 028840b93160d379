// Package registry keeps the table of phonebook drivers and the phonebook
// instance of every modem.
package registry

import (
	"context"
	"errors"
	"sync"

	"phonebookd/internal/phonebook/ports"
	dErrors "phonebookd/pkg/domain-errors"
)

// Registry is a driver table. Drivers registered later are probed first.
type Registry struct {
	mu      sync.RWMutex
	drivers []ports.Driver
}

func New() *Registry {
	return &Registry{}
}

// Register adds d to the front of the table. Several drivers may share a
// name, e.g. vendor variants that probe for different modems.
func (r *Registry) Register(d ports.Driver) error {
	if d == nil {
		return dErrors.New(dErrors.CodeBadRequest, "driver is required")
	}
	if d.Name() == "" {
		return dErrors.New(dErrors.CodeBadRequest, "driver name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers = append([]ports.Driver{d}, r.drivers...)
	return nil
}

// Unregister removes the most recently registered driver with name and
// reports whether one was present. Instances already created keep their
// backend.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.drivers {
		if d.Name() == name {
			r.drivers = append(r.drivers[:i:i], r.drivers[i+1:]...)
			return true
		}
	}
	return false
}

// Names lists registered drivers in probe order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.drivers))
	for i, d := range r.drivers {
		names[i] = d.Name()
	}
	return names
}

// Probe asks every driver named driverName, newest first, to handle modem.
// The first successful probe wins. NotImplemented is returned when no driver
// has that name or every probe failed.
func (r *Registry) Probe(ctx context.Context, driverName string, modem ports.ModemInfo) (ports.Phonebook, error) {
	if driverName == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "driver name is required")
	}

	r.mu.RLock()
	candidates := make([]ports.Driver, 0, 1)
	for _, d := range r.drivers {
		if d.Name() == driverName {
			candidates = append(candidates, d)
		}
	}
	r.mu.RUnlock()

	var probeErrs []error
	for _, d := range candidates {
		backend, err := d.Probe(ctx, modem)
		if err == nil && backend != nil {
			return backend, nil
		}
		if err != nil {
			probeErrs = append(probeErrs, err)
		}
	}
	msg := "no phonebook driver " + driverName + " for modem " + modem.ID
	if len(probeErrs) == 0 {
		return nil, dErrors.New(dErrors.CodeNotImplemented, msg)
	}
	return nil, dErrors.Wrap(errors.Join(probeErrs...), dErrors.CodeNotImplemented, msg)
}
