package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/internal/phonebook/service/mocks"
	dErrors "phonebookd/pkg/domain-errors"
)

// =============================================================================
// Driver Registry Test Suite
// =============================================================================

type RegistrySuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	registry *Registry
	modem    ports.ModemInfo
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registry = New()
	s.modem = ports.ModemInfo{ID: "/modem0", Vendor: "acme"}
}

func (s *RegistrySuite) driver(name string) *mocks.MockDriver {
	d := mocks.NewMockDriver(s.ctrl)
	d.EXPECT().Name().Return(name).AnyTimes()
	return d
}

func (s *RegistrySuite) TestRegister() {
	s.Run("rejects nil and nameless drivers", func() {
		s.True(dErrors.HasCode(s.registry.Register(nil), dErrors.CodeBadRequest))
		s.True(dErrors.HasCode(s.registry.Register(s.driver("")), dErrors.CodeBadRequest))
	})

	s.Run("newest driver is listed first", func() {
		s.Require().NoError(s.registry.Register(s.driver("atmodem")))
		s.Require().NoError(s.registry.Register(s.driver("memory")))
		s.Equal([]string{"memory", "atmodem"}, s.registry.Names())
	})

	s.Run("unregister removes one driver", func() {
		s.True(s.registry.Unregister("memory"))
		s.False(s.registry.Unregister("memory"))
		s.Equal([]string{"atmodem"}, s.registry.Names())
	})
}

func (s *RegistrySuite) TestProbe() {
	s.Run("matches by exact name and probes newest first", func() {
		s.SetupTest()
		older := s.driver("atmodem")
		newer := s.driver("atmodem")
		other := s.driver("atmodem-ext")
		s.Require().NoError(s.registry.Register(older))
		s.Require().NoError(s.registry.Register(other))
		s.Require().NoError(s.registry.Register(newer))

		backend := mocks.NewMockPhonebook(s.ctrl)
		gomock.InOrder(
			newer.EXPECT().Probe(gomock.Any(), s.modem).Return(nil, errors.New("wrong vendor")),
			older.EXPECT().Probe(gomock.Any(), s.modem).Return(backend, nil),
		)

		got, err := s.registry.Probe(context.Background(), "atmodem", s.modem)
		s.Require().NoError(err)
		s.Same(backend, got)
	})

	s.Run("unknown name is NotImplemented", func() {
		s.SetupTest()
		_, err := s.registry.Probe(context.Background(), "missing", s.modem)
		s.True(dErrors.HasCode(err, dErrors.CodeNotImplemented))
	})

	s.Run("all probes failing is NotImplemented with causes", func() {
		s.SetupTest()
		d := s.driver("atmodem")
		s.Require().NoError(s.registry.Register(d))
		d.EXPECT().Probe(gomock.Any(), s.modem).Return(nil, errors.New("no SIM"))

		_, err := s.registry.Probe(context.Background(), "atmodem", s.modem)
		s.True(dErrors.HasCode(err, dErrors.CodeNotImplemented))
		s.Contains(err.Error(), "no SIM")
	})
}

// =============================================================================
// Instance Manager
// =============================================================================

func (s *RegistrySuite) newManager() *Manager {
	return NewManager(s.registry, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func (s *RegistrySuite) TestManager() {
	s.Run("one instance per modem", func() {
		s.SetupTest()
		d := s.driver("memory")
		s.Require().NoError(s.registry.Register(d))
		d.EXPECT().Probe(gomock.Any(), s.modem).Return(mocks.NewMockPhonebook(s.ctrl), nil).Times(1)

		m := s.newManager()
		svc, err := m.Create(context.Background(), s.modem, "memory")
		s.Require().NoError(err)
		s.Equal("/modem0", svc.ModemID())

		_, err = m.Create(context.Background(), s.modem, "memory")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))

		got, err := m.Get("/modem0")
		s.Require().NoError(err)
		s.Same(svc, got)
		s.Len(m.List(), 1)
		s.Equal(models.ExportIdle, m.List()[0].Export)
	})

	s.Run("remove tears down and forgets the instance", func() {
		s.SetupTest()
		d := s.driver("memory")
		s.Require().NoError(s.registry.Register(d))
		d.EXPECT().Probe(gomock.Any(), s.modem).Return(mocks.NewMockPhonebook(s.ctrl), nil)

		m := s.newManager()
		svc, err := m.Create(context.Background(), s.modem, "memory")
		s.Require().NoError(err)

		s.Require().NoError(m.Remove(context.Background(), "/modem0"))
		s.True(svc.Removed())
		_, err = m.Get("/modem0")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.True(dErrors.HasCode(m.Remove(context.Background(), "/modem0"), dErrors.CodeNotFound))
	})

	s.Run("close removes everything", func() {
		s.SetupTest()
		d := s.driver("memory")
		s.Require().NoError(s.registry.Register(d))
		d.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(mocks.NewMockPhonebook(s.ctrl), nil).Times(2)

		m := s.newManager()
		_, err := m.Create(context.Background(), ports.ModemInfo{ID: "/a"}, "memory")
		s.Require().NoError(err)
		_, err = m.Create(context.Background(), ports.ModemInfo{ID: "/b"}, "memory")
		s.Require().NoError(err)

		s.Require().NoError(m.Close(context.Background()))
		s.Empty(m.List())
	})

	s.Run("unknown driver fails creation", func() {
		s.SetupTest()
		_, err := s.newManager().Create(context.Background(), s.modem, "nope")
		s.True(dErrors.HasCode(err, dErrors.CodeNotImplemented))
	})
}
