package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"phonebookd/internal/phonebook/gate"
	"phonebookd/internal/phonebook/metrics"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	fdnstore "phonebookd/internal/phonebook/store/fdn"
	dErrors "phonebookd/pkg/domain-errors"
	"phonebookd/pkg/platform/audit"
)

// FdnStore is the local copy of the SIM's fixed dialing list.
type FdnStore interface {
	State() models.FdnState
	Replace(ctx context.Context, entries []models.FdnEntry) error
	List(ctx context.Context) ([]models.FdnEntry, error)
	Put(ctx context.Context, entry models.FdnEntry) error
	Update(ctx context.Context, entry models.FdnEntry) error
	Delete(ctx context.Context, index int) error
	Len() int
}

var errRemoved = errors.New("phonebook instance removed")

// Service is one phonebook instance bound to a single modem. All caller
// operations pass through its gate, so at most one is outstanding.
type Service struct {
	modemID    string
	driverName string
	backend    ports.Phonebook
	storages   []string
	gate       *gate.Gate
	fdn        FdnStore

	// lifetime is cancelled by Remove; dispatched driver calls observe it
	// instead of the caller's context.
	lifetime context.Context
	cancel   context.CancelCauseFunc

	mu            sync.Mutex
	exportState   models.ExportState
	exportStorage string
	vcard         string

	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher ports.AuditPublisher
	tracer         trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

// WithStorages overrides the backend enumeration order.
func WithStorages(storages []string) Option {
	return func(s *Service) {
		if len(storages) > 0 {
			s.storages = append([]string(nil), storages...)
		}
	}
}

func WithFdnStore(store FdnStore) Option {
	return func(s *Service) {
		if store != nil {
			s.fdn = store
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// New constructs the instance for modemID backed by backend.
func New(modemID, driverName string, backend ports.Phonebook, opts ...Option) *Service {
	lifetime, cancel := context.WithCancelCause(context.Background())
	s := &Service{
		modemID:     modemID,
		driverName:  driverName,
		backend:     backend,
		storages:    append([]string(nil), models.DefaultStorages...),
		gate:        gate.New(),
		fdn:         fdnstore.New(),
		lifetime:    lifetime,
		cancel:      cancel,
		exportState: models.ExportIdle,
		logger:      slog.Default(),
		tracer:      otel.Tracer("phonebookd/phonebook"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ModemID() string { return s.modemID }

// Status returns a point-in-time view of the instance.
func (s *Service) Status() models.Status {
	s.mu.Lock()
	st := models.Status{
		ModemID:       s.modemID,
		Driver:        s.driverName,
		Export:        s.exportState,
		ExportStorage: s.exportStorage,
	}
	s.mu.Unlock()

	st.Fdn = s.fdn.State()
	st.FdnEntries = s.fdn.Len()
	if kind, held := s.gate.Holder(); held {
		st.Pending = string(kind)
	}
	return st
}

// Remove tears the instance down. An operation already dispatched to the
// driver completes with Failed and every later call fails. The driver's
// Remove hook runs once.
func (s *Service) Remove(ctx context.Context) error {
	if s.lifetime.Err() != nil {
		return nil
	}
	s.cancel(errRemoved)

	s.mu.Lock()
	s.vcard = ""
	s.exportState = models.ExportIdle
	s.exportStorage = ""
	s.mu.Unlock()

	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		ModemID: s.modemID,
		Action:  string(audit.EventPhonebookRemoved),
		Subject: "driver:" + s.driverName,
	})

	if remover, ok := s.backend.(ports.Remover); ok {
		if err := remover.Remove(ctx); err != nil {
			return dErrors.Wrap(err, dErrors.CodeFailed, "driver remove hook failed")
		}
	}
	return nil
}

// Removed reports whether Remove has been called.
func (s *Service) Removed() bool {
	return s.lifetime.Err() != nil
}

func (s *Service) acquire(kind gate.Kind) (*gate.Token, error) {
	if s.Removed() {
		return nil, dErrors.New(dErrors.CodeFailed, errRemoved.Error())
	}
	tok, err := s.gate.Acquire(kind)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementGateRejections(string(kind))
		}
		s.logger.Debug("phonebook request rejected",
			"modem_id", s.modemID,
			"kind", kind,
		)
		return nil, err
	}
	return tok, nil
}

// dispatch runs a blocking driver call. The call is detached from the
// caller's cancellation and bound to the instance lifetime instead, so a
// request that has reached the modem always runs to completion unless the
// instance is removed.
func (s *Service) dispatch(ctx context.Context, op string, call func(ctx context.Context) error) error {
	dctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(s.lifetime, cancel)
	defer func() {
		stop()
		cancel()
	}()

	start := time.Now()
	err := call(dctx)
	if s.metrics != nil {
		s.metrics.ObserveDriverCall(op, start)
	}

	if s.Removed() {
		return dErrors.New(dErrors.CodeFailed, errRemoved.Error())
	}
	return err
}

func (s *Service) countFdn(op, result string) {
	if s.metrics != nil {
		s.metrics.IncrementFdnOperations(op, result)
	}
}
