//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"phonebookd/pkg/platform/audit"
	"phonebookd/pkg/platform/audit/store/postgres"
	"phonebookd/pkg/testutil/containers"
)

type OutboxStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestOutboxStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OutboxStoreSuite))
}

func (s *OutboxStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = postgres.New(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *OutboxStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "outbox"))
}

func (s *OutboxStoreSuite) appendEvent(action audit.AuditEvent, subject string) {
	s.Require().NoError(s.store.Append(context.Background(), audit.Event{
		Timestamp: time.Now().UTC(),
		ModemID:   "/modem0",
		Subject:   subject,
		Action:    string(action),
		ActorID:   "ops",
	}))
}

func (s *OutboxStoreSuite) TestAppendAndListByModem() {
	s.appendEvent(audit.EventFdnInserted, "fdn:1")
	s.appendEvent(audit.EventFdnDeleted, "fdn:1")

	events, err := s.store.ListByModem(context.Background(), "/modem0")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventFdnInserted), events[0].Action)
	s.Equal(audit.CategoryCompliance, events[0].Category)
	s.Equal("ops", events[0].ActorID)
	s.Equal("fdn:1", events[1].Subject)

	none, err := s.store.ListByModem(context.Background(), "/other")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *OutboxStoreSuite) TestFetchAndMarkPublished() {
	ctx := context.Background()
	s.appendEvent(audit.EventFdnInserted, "fdn:1")
	s.appendEvent(audit.EventFdnUpdated, "fdn:1")

	var ids []uuid.UUID
	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		entries, err := s.store.FetchUnpublished(ctx, 10)
		if err != nil {
			return err
		}
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		return s.store.MarkPublished(ctx, ids)
	})
	s.Require().NoError(err)
	s.Len(ids, 2)

	err = s.store.WithinTx(ctx, func(ctx context.Context) error {
		entries, err := s.store.FetchUnpublished(ctx, 10)
		s.Empty(entries)
		return err
	})
	s.Require().NoError(err)
}

// TestSkipLockedPartitionsConcurrentRelays verifies that two relays fetching
// at the same time never receive the same row.
func (s *OutboxStoreSuite) TestSkipLockedPartitionsConcurrentRelays() {
	ctx := context.Background()
	for range 4 {
		s.appendEvent(audit.EventFdnRead, "fdn")
	}

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.store.WithinTx(ctx, func(ctx context.Context) error {
			entries, err := s.store.FetchUnpublished(ctx, 2)
			if err != nil {
				return err
			}
			if len(entries) != 2 {
				s.Failf("first relay", "got %d rows", len(entries))
			}
			close(locked)
			<-release
			return nil
		})
	}()

	<-locked
	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		entries, err := s.store.FetchUnpublished(ctx, 10)
		s.Len(entries, 2)
		return err
	})
	close(release)
	s.Require().NoError(err)
	s.Require().NoError(<-done)
}

func (s *OutboxStoreSuite) TestWithinTxRollsBackOnError() {
	ctx := context.Background()
	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Timestamp: time.Now().UTC(),
			ModemID:   "/modem0",
			Action:    string(audit.EventFdnInserted),
		}))
		return errors.New("relay failed")
	})
	s.ErrorContains(err, "relay failed")

	events, err := s.store.ListByModem(ctx, "/modem0")
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *OutboxStoreSuite) TestWithinTxJoinsOuterTransaction() {
	ctx := context.Background()
	err := s.store.WithinTx(ctx, func(outer context.Context) error {
		return s.store.WithinTx(outer, func(inner context.Context) error {
			return s.store.Append(inner, audit.Event{
				Timestamp: time.Now().UTC(),
				ModemID:   "/modem0",
				Action:    string(audit.EventFdnInserted),
			})
		})
	})
	s.Require().NoError(err)

	events, err := s.store.ListByModem(ctx, "/modem0")
	s.Require().NoError(err)
	s.Len(events, 1)
}
