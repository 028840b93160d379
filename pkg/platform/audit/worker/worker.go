// Package worker relays committed outbox rows to Kafka.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"phonebookd/internal/platform/kafka"
	"phonebookd/pkg/platform/audit/store/postgres"
	"phonebookd/pkg/platform/circuit"
)

// Outbox is the subset of the postgres audit store the relay needs.
type Outbox interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	FetchUnpublished(ctx context.Context, limit int) ([]postgres.Entry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}

// Producer publishes a batch of messages.
type Producer interface {
	Produce(ctx context.Context, msgs []kafka.Message) error
}

// Worker polls the outbox and publishes unpublished rows in creation order.
// A batch is marked published only after Kafka acknowledges it, so delivery
// is at-least-once.
type Worker struct {
	outbox    Outbox
	producer  Producer
	breaker   *circuit.Breaker
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
}

type Option func(*Worker)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithInterval(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.batchSize = n
		}
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(w *Worker) {
		if b != nil {
			w.breaker = b
		}
	}
}

func NewWorker(outbox Outbox, producer Producer, opts ...Option) *Worker {
	w := &Worker{
		outbox:    outbox,
		producer:  producer,
		breaker:   circuit.New("audit-kafka", circuit.WithFailureThreshold(3)),
		logger:    slog.Default(),
		interval:  time.Second,
		batchSize: 100,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !w.breaker.Allow() {
				continue
			}
			if _, err := w.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				w.logger.Warn("outbox relay failed", "error", err)
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many rows were marked.
func (w *Worker) RelayOnce(ctx context.Context) (int, error) {
	var relayed int
	err := w.outbox.WithinTx(ctx, func(ctx context.Context) error {
		entries, err := w.outbox.FetchUnpublished(ctx, w.batchSize)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, len(entries))
		ids := make([]uuid.UUID, len(entries))
		for i, e := range entries {
			msgs[i] = kafka.Message{
				Key:     []byte(e.AggregateID),
				Value:   e.Payload,
				Headers: map[string]string{"event_type": e.EventType},
			}
			ids[i] = e.ID
		}

		if err := w.producer.Produce(ctx, msgs); err != nil {
			if _, change := w.breaker.RecordFailure(); change.Opened {
				w.logger.Error("audit relay circuit opened", "breaker", w.breaker.Name(), "error", err)
			}
			return err
		}
		if _, change := w.breaker.RecordSuccess(); change.Closed {
			w.logger.Info("audit relay circuit closed", "breaker", w.breaker.Name())
		}

		if err := w.outbox.MarkPublished(ctx, ids); err != nil {
			return err
		}
		relayed = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return relayed, nil
}
