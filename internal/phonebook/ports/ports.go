// Package ports defines the contracts between the phonebook service and the
// modem drivers that back it.
package ports

import (
	"context"
	"log/slog"

	"phonebookd/internal/phonebook/models"
	"phonebookd/pkg/attrs"
	"phonebookd/pkg/platform/audit"
	"phonebookd/pkg/requestcontext"
)

// ModemInfo identifies the modem a driver is probed against.
type ModemInfo struct {
	ID     string
	Vendor string
	Model  string
}

// Driver creates phonebook backends for the modems it recognizes.
type Driver interface {
	Name() string
	// Probe returns a backend for modem, or an error when the driver does not
	// handle it.
	Probe(ctx context.Context, modem ModemInfo) (Phonebook, error)
}

// Phonebook is the capability every backend must provide.
type Phonebook interface {
	// ExportEntries enumerates one storage and calls emit for each record in
	// the order the modem reports them. emit is never called after
	// ExportEntries returns.
	ExportEntries(ctx context.Context, storage string, emit func(models.RawEntry)) error
}

// FdnReader reads every fixed dialing record from the SIM.
type FdnReader interface {
	ReadFdnEntries(ctx context.Context) ([]models.FdnEntry, error)
}

// FdnInserter writes a new record and returns the index the SIM assigned.
type FdnInserter interface {
	InsertFdnEntry(ctx context.Context, name, number, pin2 string) (int, error)
}

type FdnUpdater interface {
	UpdateFdnEntry(ctx context.Context, index int, name, number, pin2 string) error
}

type FdnDeleter interface {
	DeleteFdnEntry(ctx context.Context, index int, pin2 string) error
}

// FdnDriver is a backend with every FDN capability.
type FdnDriver interface {
	Phonebook
	FdnReader
	FdnInserter
	FdnUpdater
	FdnDeleter
}

// Remover is implemented by backends that hold modem resources which must be
// released when the instance is torn down.
type Remover interface {
	Remove(ctx context.Context) error
}

// AuditPublisher emits audit events for FDN mutations and exports.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit logs event to the structured logger and, when configured, emits
// it to the audit publisher. Request metadata is taken from ctx; a "reason"
// in extra fills an empty event.Reason.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, event audit.Event, extra ...any) {
	if event.Reason == "" {
		event.Reason = attrs.ExtractString(extra, "reason")
	}
	event.RequestID = requestcontext.RequestID(ctx)
	event.ActorID = requestcontext.ActorID(ctx)
	event.Client = requestcontext.ClientKind(ctx)
	event.Timestamp = requestcontext.Now(ctx)

	args := append(extra,
		"event", event.Action,
		"log_type", "audit",
		"modem_id", event.ModemID,
	)
	if event.Subject != "" {
		args = append(args, "subject", event.Subject)
	}
	if event.Decision != "" {
		args = append(args, "decision", event.Decision)
	}
	if event.RequestID != "" {
		args = append(args, "request_id", event.RequestID)
	}

	if logger != nil {
		logger.InfoContext(ctx, event.Action, args...)
	}

	if publisher == nil {
		return
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", event.Action, "error", err)
	}
}
