// Package publisher delivers audit events to an audit.Store, either inline or
// through a bounded queue drained by a background goroutine.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	audit "phonebookd/pkg/platform/audit"
)

// ErrBufferFull is returned by Emit in async mode when the queue is full.
// The event is dropped.
var ErrBufferFull = errors.New("audit buffer full")

type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	sampler *Sampler
	metrics *Metrics

	buffer int
	queue  chan audit.Event
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with a queue of size n.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		p.buffer = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithSampler drops a share of operations events before they are queued.
func WithSampler(s *Sampler) Option {
	return func(p *Publisher) {
		p.sampler = s
	}
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer > 0 {
		p.queue = make(chan audit.Event, p.buffer)
		p.done = make(chan struct{})
		go p.drain()
	}
	return p
}

// Emit stamps and categorizes event, then persists it. In async mode it only
// enqueues and returns ErrBufferFull when the queue has no room.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	category := string(event.Category)
	if p.sampler != nil && !p.sampler.Keep(event) {
		p.metrics.incSampled(category)
		return nil
	}

	if p.queue == nil {
		return p.append(ctx, event)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return p.append(ctx, event)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.queue <- event:
		p.metrics.incTracked(category)
		return nil
	default:
		p.metrics.incBufferDropped(category)
		return ErrBufferFull
	}
}

func (p *Publisher) append(ctx context.Context, event audit.Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		p.metrics.incPersistFailures(string(event.Category))
		return err
	}
	p.metrics.incTracked(string(event.Category))
	return nil
}

// List returns the events recorded for a modem.
func (p *Publisher) List(ctx context.Context, modemID string) ([]audit.Event, error) {
	return p.store.ListByModem(ctx, modemID)
}

// Close stops accepting queued events and blocks until the queue is drained.
// Emit keeps working after Close by writing synchronously.
func (p *Publisher) Close() {
	if p.queue == nil {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()
	<-p.done
}

func (p *Publisher) drain() {
	defer close(p.done)
	// Queued events outlive the request that produced them.
	ctx := context.Background()
	for event := range p.queue {
		if err := p.store.Append(ctx, event); err != nil {
			p.metrics.incPersistFailures(string(event.Category))
			if p.logger == nil {
				continue
			}
			p.logger.Error("failed to persist audit event",
				"action", event.Action,
				"modem_id", event.ModemID,
				"error", err,
			)
		}
	}
}
