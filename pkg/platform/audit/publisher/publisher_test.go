package publisher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "phonebookd/pkg/platform/audit"
	"phonebookd/pkg/platform/audit/store/memory"
)

const testModem = "/modem0"

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), audit.Event{
		ModemID: testModem,
		Action:  string(audit.EventFdnInserted),
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), testModem)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventFdnInserted), events[0].Action)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for range 10 {
		require.NoError(t, pub.Emit(context.Background(), audit.Event{
			ModemID: testModem,
			Action:  string(audit.EventFdnRead),
		}))
	}
	pub.Close()

	events, err := store.ListByModem(context.Background(), testModem)
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_EmitAfterCloseWritesInline(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(4))
	pub.Close()
	pub.Close()

	require.NoError(t, pub.Emit(context.Background(), audit.Event{
		ModemID: testModem,
		Action:  string(audit.EventFdnDeleted),
	}))
	events, err := store.ListByModem(context.Background(), testModem)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPublisher_ConcurrentEmitIsSafe(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(1))

	var wg sync.WaitGroup
	var accepted, dropped sync.Map
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{
				ModemID: testModem,
				Action:  string(audit.EventFdnRead),
			})
			switch {
			case err == nil:
				accepted.Store(i, true)
			case errors.Is(err, ErrBufferFull):
				dropped.Store(i, true)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	pub.Close()

	n := 0
	accepted.Range(func(_, _ any) bool { n++; return true })
	events, err := store.ListByModem(context.Background(), testModem)
	require.NoError(t, err)
	assert.Len(t, events, n, "every accepted event is persisted")
}

func TestPublisher_Timestamps(t *testing.T) {
	t.Run("sets a missing timestamp", func(t *testing.T) {
		pub := NewPublisher(memory.NewInMemoryStore())
		before := time.Now()
		require.NoError(t, pub.Emit(context.Background(), audit.Event{ModemID: testModem, Action: "x"}))
		after := time.Now()

		events, err := pub.List(context.Background(), testModem)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.False(t, events[0].Timestamp.Before(before))
		assert.False(t, events[0].Timestamp.After(after))
	})

	t.Run("preserves an existing timestamp", func(t *testing.T) {
		pub := NewPublisher(memory.NewInMemoryStore())
		custom := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, pub.Emit(context.Background(), audit.Event{ModemID: testModem, Action: "x", Timestamp: custom}))

		events, err := pub.List(context.Background(), testModem)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, custom, events[0].Timestamp)
		assert.Equal(t, audit.CategoryOperations, events[0].Category, "unknown actions default to operations")
	})
}

func TestPublisher_CancelledContextInAsyncMode(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore(), WithAsyncBuffer(1))
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pub.Emit(ctx, audit.Event{ModemID: testModem, Action: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublisher_Sampling(t *testing.T) {
	sampler := NewSampler(0)
	sampler.SetRate(audit.EventFdnRead, 1)
	metrics := NewMetricsWith(prometheus.NewRegistry())
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithSampler(sampler), WithMetrics(metrics))

	for _, action := range []audit.AuditEvent{
		audit.EventPhonebookExported,
		audit.EventFdnRead,
		audit.EventFdnRejected,
		audit.EventFdnInserted,
	} {
		require.NoError(t, pub.Emit(context.Background(), audit.Event{ModemID: testModem, Action: string(action)}))
	}

	events, err := store.ListByModem(context.Background(), testModem)
	require.NoError(t, err)
	var actions []string
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []string{"fdn_read", "fdn_rejected", "fdn_inserted"}, actions,
		"only the unsampled export is dropped; security and compliance are never sampled")
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Sampled.WithLabelValues("operations")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Tracked.WithLabelValues("compliance")))
}

func TestSampler_PartialRate(t *testing.T) {
	sampler := NewSampler(1.7)
	assert.Equal(t, 1.0, sampler.rateFor("anything"), "rates are clamped")

	sampler.SetRate(audit.EventPhonebookExported, 0.25)
	rolls := []float64{0.1, 0.5}
	sampler.roll = func() float64 {
		r := rolls[0]
		rolls = rolls[1:]
		return r
	}
	export := audit.Event{Category: audit.CategoryOperations, Action: string(audit.EventPhonebookExported)}
	assert.True(t, sampler.Keep(export))
	assert.False(t, sampler.Keep(export))
}

func TestPublisher_BufferFullIsCounted(t *testing.T) {
	metrics := NewMetricsWith(prometheus.NewRegistry())
	blocking := &blockingStore{release: make(chan struct{}), entered: make(chan struct{}, 1)}
	pub := NewPublisher(blocking, WithAsyncBuffer(1), WithMetrics(metrics))

	event := audit.Event{ModemID: testModem, Action: string(audit.EventFdnUpdated)}
	require.NoError(t, pub.Emit(context.Background(), event))
	<-blocking.entered
	require.NoError(t, pub.Emit(context.Background(), event))
	assert.ErrorIs(t, pub.Emit(context.Background(), event), ErrBufferFull)

	close(blocking.release)
	pub.Close()
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.BufferDropped.WithLabelValues("compliance")))
}

// blockingStore holds the drain goroutine inside Append until release closes.
type blockingStore struct {
	release chan struct{}
	entered chan struct{}
}

func (b *blockingStore) Append(context.Context, audit.Event) error {
	select {
	case b.entered <- struct{}{}:
	default:
	}
	<-b.release
	return nil
}

func (b *blockingStore) ListByModem(context.Context, string) ([]audit.Event, error) {
	return nil, nil
}
