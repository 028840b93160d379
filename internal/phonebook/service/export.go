package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"phonebookd/internal/phonebook/gate"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/pkg/platform/audit"
)

// Export returns the vCard document for every storage of the modem.
//
// The first successful call enumerates the storages and caches the result
// for the lifetime of the instance; there is no invalidation. Every call,
// cached or not, takes the gate first, so any call made while another
// request is pending fails with Busy.
func (s *Service) Export(ctx context.Context) (string, error) {
	tok, err := s.acquire(gate.KindExport)
	if err != nil {
		return "", err
	}
	defer tok.Release()

	if cached, ok := s.cachedExport(); ok {
		if s.metrics != nil {
			s.metrics.IncrementExports("cached")
		}
		return cached, nil
	}

	ctx, span := s.tracer.Start(ctx, "phonebook.Export")
	defer span.End()
	span.SetAttributes(
		attribute.String("modem.id", s.modemID),
		attribute.StringSlice("phonebook.storages", s.storages),
	)

	s.setExportState(models.ExportInProgress, "")

	agg := &aggregator{
		backend:  s.backend,
		storages: s.storages,
		modemID:  s.modemID,
		logger:   s.logger,
		metrics:  s.metrics,
		cursor: func(storage string) {
			s.setExportState(models.ExportInProgress, storage)
		},
	}

	var res aggregateResult
	err = s.dispatch(ctx, "export", func(ctx context.Context) error {
		res = agg.run(ctx)
		return nil
	})
	if err != nil {
		s.setExportState(models.ExportIdle, "")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if s.metrics != nil {
			s.metrics.IncrementExports("failed")
		}
		return "", err
	}

	s.mu.Lock()
	s.vcard = res.vcard
	s.exportState = models.ExportCached
	s.exportStorage = ""
	s.mu.Unlock()

	span.SetAttributes(
		attribute.Int("phonebook.entries", res.entries),
		attribute.Int("phonebook.persons", res.persons),
	)
	if s.metrics != nil {
		s.metrics.IncrementExports("enumerated")
		s.metrics.AddExportedEntries(res.entries)
		s.metrics.AddMergedPersons(res.persons)
	}

	decision := "complete"
	if len(res.failed) > 0 {
		decision = "partial"
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		ModemID:  s.modemID,
		Action:   string(audit.EventPhonebookExported),
		Subject:  "storage:" + strings.Join(s.storages, ","),
		Decision: decision,
		Reason:   strings.Join(res.failed, ","),
	}, "entries", res.entries, "persons", res.persons)

	return res.vcard, nil
}

func (s *Service) cachedExport() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exportState != models.ExportCached {
		return "", false
	}
	return s.vcard, true
}

func (s *Service) setExportState(state models.ExportState, storage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exportState = state
	s.exportStorage = storage
}
