package service

import (
	"context"
	"errors"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"phonebookd/internal/phonebook/gate"
	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/internal/phonebook/validation"
	dErrors "phonebookd/pkg/domain-errors"
	"phonebookd/pkg/platform/audit"
	"phonebookd/pkg/platform/sentinel"
)

// Checks run in a fixed order for every FDN operation: capability
// (NotImplemented), gate (Busy), read state (NotReady), input syntax
// (InvalidFormat). The driver is contacted only when all pass, and the local
// list changes only after the driver reports success.

// ExportFdn returns the FDN list ordered by index. The first call reads it
// from the SIM; later calls are served from the local copy.
func (s *Service) ExportFdn(ctx context.Context) ([]models.FdnEntry, error) {
	reader, ok := s.backend.(ports.FdnReader)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotImplemented, "driver cannot read FDN entries")
	}

	tok, err := s.acquire(gate.KindFdnRead)
	if err != nil {
		return nil, err
	}
	defer tok.Release()

	if s.fdn.State() == models.FdnCached {
		s.countFdn("read", "cached")
		return s.fdn.List(ctx)
	}

	ctx, span := s.startFdnSpan(ctx, "phonebook.ExportFdn")
	defer span.End()

	var entries []models.FdnEntry
	err = s.dispatch(ctx, "fdn_read", func(ctx context.Context) error {
		var err error
		entries, err = reader.ReadFdnEntries(ctx)
		return err
	})
	if err != nil {
		s.countFdn("read", "failed")
		return nil, s.fdnFailure(ctx, span, "read FDN entries", err)
	}

	if err := s.fdn.Replace(ctx, entries); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to cache FDN entries")
	}
	s.countFdn("read", "ok")
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		ModemID: s.modemID,
		Action:  string(audit.EventFdnRead),
		Subject: "fdn",
	}, "entries", len(entries))

	return s.fdn.List(ctx)
}

// InsertFdn writes a new record and returns the index the SIM assigned.
func (s *Service) InsertFdn(ctx context.Context, name, number, pin2 string) (int, error) {
	inserter, ok := s.backend.(ports.FdnInserter)
	if !ok {
		return 0, dErrors.New(dErrors.CodeNotImplemented, "driver cannot insert FDN entries")
	}

	tok, err := s.acquire(gate.KindFdnInsert)
	if err != nil {
		return 0, err
	}
	defer tok.Release()

	if err := s.checkMutation(number, pin2, true); err != nil {
		return 0, err
	}

	ctx, span := s.startFdnSpan(ctx, "phonebook.InsertFdn")
	defer span.End()

	var index int
	err = s.dispatch(ctx, "fdn_insert", func(ctx context.Context) error {
		var err error
		index, err = inserter.InsertFdnEntry(ctx, name, number, pin2)
		return err
	})
	if err != nil {
		s.countFdn("insert", "failed")
		s.auditRejected(ctx, "insert", 0, err)
		return 0, s.fdnFailure(ctx, span, "insert FDN entry", err)
	}

	if err := s.fdn.Put(ctx, models.FdnEntry{Index: index, Name: name, Number: number}); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to cache FDN entry")
	}
	span.SetAttributes(attribute.Int("fdn.index", index))
	s.countFdn("insert", "ok")
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		ModemID: s.modemID,
		Action:  string(audit.EventFdnInserted),
		Subject: fdnSubject(index),
	})
	return index, nil
}

// UpdateFdn rewrites the record at index. When the SIM accepts the write but
// the index is not in the local list, nothing changes locally and the call
// still succeeds.
func (s *Service) UpdateFdn(ctx context.Context, name, number, pin2 string, index int) error {
	updater, ok := s.backend.(ports.FdnUpdater)
	if !ok {
		return dErrors.New(dErrors.CodeNotImplemented, "driver cannot update FDN entries")
	}

	tok, err := s.acquire(gate.KindFdnUpdate)
	if err != nil {
		return err
	}
	defer tok.Release()

	if err := s.checkMutation(number, pin2, true); err != nil {
		return err
	}

	ctx, span := s.startFdnSpan(ctx, "phonebook.UpdateFdn", attribute.Int("fdn.index", index))
	defer span.End()

	err = s.dispatch(ctx, "fdn_update", func(ctx context.Context) error {
		return updater.UpdateFdnEntry(ctx, index, name, number, pin2)
	})
	if err != nil {
		s.countFdn("update", "failed")
		s.auditRejected(ctx, "update", index, err)
		return s.fdnFailure(ctx, span, "update FDN entry", err)
	}

	err = s.fdn.Update(ctx, models.FdnEntry{Index: index, Name: name, Number: number})
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to cache FDN entry")
	}
	s.countFdn("update", resultFor(err))
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		ModemID: s.modemID,
		Action:  string(audit.EventFdnUpdated),
		Subject: fdnSubject(index),
	}, "local_hit", err == nil)
	return nil
}

// DeleteFdn erases the record at index. A missing local index is not an
// error.
func (s *Service) DeleteFdn(ctx context.Context, pin2 string, index int) error {
	deleter, ok := s.backend.(ports.FdnDeleter)
	if !ok {
		return dErrors.New(dErrors.CodeNotImplemented, "driver cannot delete FDN entries")
	}

	tok, err := s.acquire(gate.KindFdnDelete)
	if err != nil {
		return err
	}
	defer tok.Release()

	if err := s.checkMutation("", pin2, false); err != nil {
		return err
	}

	ctx, span := s.startFdnSpan(ctx, "phonebook.DeleteFdn", attribute.Int("fdn.index", index))
	defer span.End()

	err = s.dispatch(ctx, "fdn_delete", func(ctx context.Context) error {
		return deleter.DeleteFdnEntry(ctx, index, pin2)
	})
	if err != nil {
		s.countFdn("delete", "failed")
		s.auditRejected(ctx, "delete", index, err)
		return s.fdnFailure(ctx, span, "delete FDN entry", err)
	}

	err = s.fdn.Delete(ctx, index)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to drop cached FDN entry")
	}
	s.countFdn("delete", resultFor(err))
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		ModemID: s.modemID,
		Action:  string(audit.EventFdnDeleted),
		Subject: fdnSubject(index),
	}, "local_hit", err == nil)
	return nil
}

func (s *Service) checkMutation(number, pin2 string, checkNumber bool) error {
	if s.fdn.State() != models.FdnCached {
		s.logger.Warn("FDN mutation before FDN read", "modem_id", s.modemID)
		return dErrors.New(dErrors.CodeNotReady, "FDN entries must be read first")
	}
	if checkNumber && !validation.PhoneNumber(number) {
		return dErrors.New(dErrors.CodeInvalidFormat, "invalid phone number")
	}
	if !validation.PIN2(pin2) {
		return dErrors.New(dErrors.CodeInvalidFormat, "invalid PIN2")
	}
	return nil
}

// fdnFailure maps a driver error to Failed unless it already carries
// Failed (instance removed).
func (s *Service) fdnFailure(ctx context.Context, span trace.Span, what string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.WarnContext(ctx, "FDN operation failed",
		"modem_id", s.modemID,
		"operation", what,
		"error", err,
	)
	if dErrors.HasCode(err, dErrors.CodeFailed) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeFailed, "failed to "+what)
}

func (s *Service) auditRejected(ctx context.Context, op string, index int, err error) {
	reason := "driver_error"
	if errors.Is(err, sentinel.ErrRejected) {
		reason = "pin2_rejected"
	}
	subject := "fdn"
	if index > 0 {
		subject = fdnSubject(index)
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		ModemID:  s.modemID,
		Action:   string(audit.EventFdnRejected),
		Subject:  subject,
		Decision: op,
	}, "reason", reason)
}

func (s *Service) startFdnSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, name)
	span.SetAttributes(append(attrs, attribute.String("modem.id", s.modemID))...)
	return ctx, span
}

func fdnSubject(index int) string {
	return "fdn:" + strconv.Itoa(index)
}

func resultFor(err error) string {
	if errors.Is(err, sentinel.ErrNotFound) {
		return "ok_missing"
	}
	return "ok"
}
