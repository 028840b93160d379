package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose so stores
// and sinks can route and retain them differently.
type EventCategory string

const (
	// CategoryCompliance covers changes to the SIM's fixed dialing list.
	// These alter what a subscriber is allowed to call and are kept longest.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers PIN2 rejections and other refused mutations.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers reads and exports.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the phonebook service to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	ModemID   string
	// Subject identifies the record touched, e.g. "fdn:3" or "storage:SM".
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
	// ActorID is the authenticated subject of the HTTP request, if any.
	ActorID string
	// Client is a coarse User-Agent label such as "curl" or "Chrome/desktop".
	Client string
}

type AuditEvent string

const (
	EventPhonebookExported AuditEvent = "phonebook_exported"
	EventPhonebookRemoved  AuditEvent = "phonebook_removed"

	EventFdnRead     AuditEvent = "fdn_read"
	EventFdnInserted AuditEvent = "fdn_inserted"
	EventFdnUpdated  AuditEvent = "fdn_updated"
	EventFdnDeleted  AuditEvent = "fdn_deleted"
	EventFdnRejected AuditEvent = "fdn_rejected"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventFdnInserted: CategoryCompliance,
	EventFdnUpdated:  CategoryCompliance,
	EventFdnDeleted:  CategoryCompliance,

	EventFdnRejected: CategorySecurity,

	EventFdnRead:           CategoryOperations,
	EventPhonebookExported: CategoryOperations,
	EventPhonebookRemoved:  CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByModem(ctx context.Context, modemID string) ([]Event, error)
}
