package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"phonebookd/internal/phonebook/drivers/seed"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/pkg/platform/sentinel"
)

// =============================================================================
// Simulated SIM Test Suite
// =============================================================================

type SIMSuite struct {
	suite.Suite
	sim *SIM
}

func TestSIMSuite(t *testing.T) {
	suite.Run(t, new(SIMSuite))
}

func (s *SIMSuite) SetupTest() {
	s.sim = NewSIM(seed.SIM{
		ID:          "/modem0",
		PIN2:        "4321",
		FdnCapacity: 3,
		Storages: map[string][]models.RawEntry{
			"SM": {
				{Index: 1, Number: "+4912345", Type: 145, Text: "Bob/h"},
				{Index: 2, Number: "017612345", Type: 129, Text: "Bob/m"},
			},
			"ME": {},
		},
		FailStorages: []string{"ON"},
		Fdn:          []models.FdnEntry{{Index: 2, Name: "Police", Number: "110"}},
	}, 0)
}

func (s *SIMSuite) collect(storage string) ([]models.RawEntry, error) {
	var got []models.RawEntry
	err := s.sim.ExportEntries(context.Background(), storage, func(e models.RawEntry) {
		got = append(got, e)
	})
	return got, err
}

// ===== Enumeration =====

func (s *SIMSuite) TestExportEntries() {
	s.Run("emits records in storage order", func() {
		got, err := s.collect("SM")
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal("Bob/h", got[0].Text)
		s.Equal("Bob/m", got[1].Text)
	})

	s.Run("empty storage emits nothing", func() {
		got, err := s.collect("ME")
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("unknown storage fails", func() {
		_, err := s.collect("FD")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("failing storage fails", func() {
		_, err := s.collect("ON")
		s.ErrorIs(err, sentinel.ErrUnavailable)
	})
}

// ===== FDN =====

func (s *SIMSuite) TestFdn() {
	ctx := context.Background()

	s.Run("insert takes the lowest free slot", func() {
		index, err := s.sim.InsertFdnEntry(ctx, "Home", "+4930123", "4321")
		s.Require().NoError(err)
		s.Equal(1, index)

		index, err = s.sim.InsertFdnEntry(ctx, "Work", "+4930999", "4321")
		s.Require().NoError(err)
		s.Equal(3, index)

		_, err = s.sim.InsertFdnEntry(ctx, "Full", "1", "4321")
		s.ErrorIs(err, sentinel.ErrConflict)

		entries, err := s.sim.ReadFdnEntries(ctx)
		s.Require().NoError(err)
		s.Equal([]models.FdnEntry{
			{Index: 1, Name: "Home", Number: "+4930123"},
			{Index: 2, Name: "Police", Number: "110"},
			{Index: 3, Name: "Work", Number: "+4930999"},
		}, entries)
	})

	s.Run("update writes any slot in range", func() {
		s.SetupTest()
		s.Require().NoError(s.sim.UpdateFdnEntry(ctx, 3, "New", "999", "4321"))
		s.ErrorIs(s.sim.UpdateFdnEntry(ctx, 4, "Out", "999", "4321"), sentinel.ErrNotFound)

		entries, err := s.sim.ReadFdnEntries(ctx)
		s.Require().NoError(err)
		s.Len(entries, 2)
	})

	s.Run("delete clears the slot", func() {
		s.SetupTest()
		s.Require().NoError(s.sim.DeleteFdnEntry(ctx, 2, "4321"))
		entries, err := s.sim.ReadFdnEntries(ctx)
		s.Require().NoError(err)
		s.Empty(entries)
	})
}

func (s *SIMSuite) TestPIN2() {
	ctx := context.Background()

	s.Run("mismatch is rejected and a match resets the counter", func() {
		_, err := s.sim.InsertFdnEntry(ctx, "A", "1", "0000")
		s.ErrorIs(err, sentinel.ErrRejected)
		_, err = s.sim.InsertFdnEntry(ctx, "A", "1", "0000")
		s.ErrorIs(err, sentinel.ErrRejected)

		_, err = s.sim.InsertFdnEntry(ctx, "A", "1", "4321")
		s.Require().NoError(err)

		_, err = s.sim.InsertFdnEntry(ctx, "B", "2", "0000")
		s.ErrorIs(err, sentinel.ErrRejected)
		s.Equal(1, s.sim.pin2Failures)
	})

	s.Run("blocks after repeated mismatches", func() {
		s.SetupTest()
		for range seed.MaxPIN2Attempts {
			s.ErrorIs(s.sim.DeleteFdnEntry(ctx, 2, "0000"), sentinel.ErrRejected)
		}
		err := s.sim.DeleteFdnEntry(ctx, 2, "4321")
		s.ErrorIs(err, sentinel.ErrRejected)
		s.Contains(err.Error(), "blocked")
	})
}

// ===== Lifecycle =====

func (s *SIMSuite) TestRemove() {
	s.Require().NoError(s.sim.Remove(context.Background()))

	_, err := s.collect("SM")
	s.ErrorIs(err, sentinel.ErrClosed)
	_, err = s.sim.ReadFdnEntries(context.Background())
	s.ErrorIs(err, sentinel.ErrClosed)
	s.ErrorIs(s.sim.DeleteFdnEntry(context.Background(), 2, "4321"), sentinel.ErrClosed)
}

func (s *SIMSuite) TestLatencyHonoursContext() {
	sim := NewSIM(seed.Blank("/slow"), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sim.ReadFdnEntries(ctx)
	s.ErrorIs(err, context.Canceled)
}

// =============================================================================
// Driver Probe
// =============================================================================

func (s *SIMSuite) TestProbe() {
	f := &seed.File{Modems: []seed.SIM{seed.Blank("/modem0")}}
	f.Modems[0].Vendor = "acme"

	s.Run("seeded modem", func() {
		backend, err := New(WithSeed(f)).Probe(context.Background(), ports.ModemInfo{ID: "/modem0", Vendor: "acme"})
		s.Require().NoError(err)
		_, ok := backend.(ports.FdnDriver)
		s.True(ok)
		_, ok = backend.(ports.Remover)
		s.True(ok)
	})

	s.Run("vendor mismatch", func() {
		_, err := New(WithSeed(f)).Probe(context.Background(), ports.ModemInfo{ID: "/modem0", Vendor: "other"})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("unknown modem without blank SIMs", func() {
		_, err := New(WithSeed(f)).Probe(context.Background(), ports.ModemInfo{ID: "/modem7"})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("unknown modem with blank SIMs", func() {
		backend, err := New(WithBlankSIMs()).Probe(context.Background(), ports.ModemInfo{ID: "/modem7"})
		s.Require().NoError(err)
		entries, err := backend.(ports.FdnReader).ReadFdnEntries(context.Background())
		s.Require().NoError(err)
		s.Empty(entries)
	})
}
