// Package memory is an in-process simulated SIM used for development and
// tests. It behaves like a modem: storages are enumerated in record order,
// PIN2 is verified on every FDN write and blocked after repeated mismatches.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"phonebookd/internal/phonebook/drivers/seed"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/pkg/platform/sentinel"
)

const Name = "memory"

// Driver hands out one simulated SIM per modem.
type Driver struct {
	seed    *seed.File
	blank   bool
	latency time.Duration
}

type Option func(*Driver)

// WithSeed loads SIM contents from a seed document.
func WithSeed(f *seed.File) Option {
	return func(d *Driver) {
		d.seed = f
	}
}

// WithBlankSIMs makes Probe accept modems missing from the seed and give
// them an empty SIM.
func WithBlankSIMs() Option {
	return func(d *Driver) {
		d.blank = true
	}
}

// WithLatency delays every SIM access, like a slow AT channel.
func WithLatency(latency time.Duration) Option {
	return func(d *Driver) {
		d.latency = latency
	}
}

func New(opts ...Option) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Name() string { return Name }

func (d *Driver) Probe(_ context.Context, modem ports.ModemInfo) (ports.Phonebook, error) {
	sim, ok := d.seed.Lookup(modem.ID)
	if !ok {
		if !d.blank {
			return nil, fmt.Errorf("no simulated SIM for modem %s: %w", modem.ID, sentinel.ErrNotFound)
		}
		sim = seed.Blank(modem.ID)
	}
	if sim.Vendor != "" && modem.Vendor != "" && sim.Vendor != modem.Vendor {
		return nil, fmt.Errorf("SIM seeded for vendor %s, modem is %s: %w", sim.Vendor, modem.Vendor, sentinel.ErrNotFound)
	}
	return NewSIM(sim, d.latency), nil
}

// SIM is one simulated card. It implements ports.FdnDriver and ports.Remover.
type SIM struct {
	latency time.Duration

	mu           sync.Mutex
	storages     map[string][]models.RawEntry
	failing      map[string]bool
	fdn          map[int]models.FdnEntry
	capacity     int
	pin2         string
	pin2Failures int
	removed      bool
}

func NewSIM(s seed.SIM, latency time.Duration) *SIM {
	sim := &SIM{
		latency:  latency,
		storages: make(map[string][]models.RawEntry, len(s.Storages)),
		failing:  make(map[string]bool, len(s.FailStorages)),
		fdn:      make(map[int]models.FdnEntry, len(s.Fdn)),
		capacity: s.FdnCapacity,
		pin2:     s.PIN2,
	}
	for storage, entries := range s.Storages {
		sim.storages[storage] = append([]models.RawEntry(nil), entries...)
	}
	for _, storage := range s.FailStorages {
		sim.failing[storage] = true
	}
	for _, e := range s.Fdn {
		sim.fdn[e.Index] = e
	}
	return sim
}

func (s *SIM) ExportEntries(ctx context.Context, storage string, emit func(models.RawEntry)) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	if s.removed {
		s.mu.Unlock()
		return sentinel.ErrClosed
	}
	if s.failing[storage] {
		s.mu.Unlock()
		return fmt.Errorf("storage %s: %w", storage, sentinel.ErrUnavailable)
	}
	entries, ok := s.storages[storage]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("storage %s: %w", storage, sentinel.ErrNotFound)
	}
	entries = append([]models.RawEntry(nil), entries...)
	s.mu.Unlock()

	for _, e := range entries {
		emit(e)
	}
	return nil
}

func (s *SIM) ReadFdnEntries(ctx context.Context) ([]models.FdnEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return nil, sentinel.ErrClosed
	}
	out := make([]models.FdnEntry, 0, len(s.fdn))
	for _, e := range s.fdn {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// InsertFdnEntry stores the record in the lowest free slot.
func (s *SIM) InsertFdnEntry(ctx context.Context, name, number, pin2 string) (int, error) {
	if err := s.wait(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.verifyLocked(pin2); err != nil {
		return 0, err
	}
	for index := 1; index <= s.capacity; index++ {
		if _, used := s.fdn[index]; !used {
			s.fdn[index] = models.FdnEntry{Index: index, Name: name, Number: number}
			return index, nil
		}
	}
	return 0, fmt.Errorf("FDN full (%d records): %w", s.capacity, sentinel.ErrConflict)
}

// UpdateFdnEntry writes the record at index whether or not the slot is used.
func (s *SIM) UpdateFdnEntry(ctx context.Context, index int, name, number, pin2 string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.verifyLocked(pin2); err != nil {
		return err
	}
	if err := s.checkIndexLocked(index); err != nil {
		return err
	}
	s.fdn[index] = models.FdnEntry{Index: index, Name: name, Number: number}
	return nil
}

func (s *SIM) DeleteFdnEntry(ctx context.Context, index int, pin2 string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.verifyLocked(pin2); err != nil {
		return err
	}
	if err := s.checkIndexLocked(index); err != nil {
		return err
	}
	delete(s.fdn, index)
	return nil
}

// Remove detaches the SIM. Later calls fail with sentinel.ErrClosed.
func (s *SIM) Remove(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = true
	return nil
}

func (s *SIM) verifyLocked(pin2 string) error {
	if s.removed {
		return sentinel.ErrClosed
	}
	if s.pin2Failures >= seed.MaxPIN2Attempts {
		return fmt.Errorf("PIN2 blocked: %w", sentinel.ErrRejected)
	}
	if pin2 != s.pin2 {
		s.pin2Failures++
		return fmt.Errorf("incorrect PIN2 (%d attempts left): %w",
			seed.MaxPIN2Attempts-s.pin2Failures, sentinel.ErrRejected)
	}
	s.pin2Failures = 0
	return nil
}

func (s *SIM) checkIndexLocked(index int) error {
	if index < 1 || index > s.capacity {
		return fmt.Errorf("FDN index %d outside 1..%d: %w", index, s.capacity, sentinel.ErrNotFound)
	}
	return nil
}

func (s *SIM) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
