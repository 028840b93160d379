//go:build integration

package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"phonebookd/internal/platform/kafka"
	"phonebookd/pkg/platform/audit"
	"phonebookd/pkg/platform/audit/store/postgres"
	"phonebookd/pkg/platform/audit/worker"
	"phonebookd/pkg/testutil/containers"
)

const topic = "phonebookd.audit.test"

type RelaySuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	redpanda *containers.RedpandaContainer
	store    *postgres.Store
	producer *kafka.Producer
}

func TestRelaySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) SetupSuite() {
	ctx := context.Background()
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.redpanda = mgr.GetRedpanda(s.T())

	s.store = postgres.New(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(ctx))

	producer, err := kafka.NewProducer(ctx, s.redpanda.Brokers, topic)
	s.Require().NoError(err)
	s.Require().NoError(producer.EnsureTopic(ctx, 1, 1))
	s.producer = producer
}

func (s *RelaySuite) TearDownSuite() {
	if s.producer != nil {
		s.producer.Close()
	}
}

func (s *RelaySuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "outbox"))
}

func (s *RelaySuite) TestRelayOncePublishesInOrder() {
	ctx := context.Background()
	for _, action := range []audit.AuditEvent{audit.EventFdnRead, audit.EventFdnInserted} {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Timestamp: time.Now().UTC(),
			ModemID:   "/modem0",
			Action:    string(action),
		}))
	}

	w := worker.NewWorker(s.store, s.producer)
	n, err := w.RelayOnce(ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	n, err = w.RelayOnce(ctx)
	s.Require().NoError(err)
	s.Zero(n)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	pollCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	var got []*kgo.Record
	for len(got) < 2 && pollCtx.Err() == nil {
		fetches := consumer.PollFetches(pollCtx)
		fetches.EachRecord(func(r *kgo.Record) { got = append(got, r) })
	}
	s.Require().Len(got, 2)
	s.Equal("/modem0", string(got[0].Key))
	s.Contains(string(got[0].Value), string(audit.EventFdnRead))
	s.Contains(string(got[1].Value), string(audit.EventFdnInserted))
}
