package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventTenantCreated       = "tenant.created"
	EventTenantStatusToggled = "tenant.status_toggled"
	EventTenantUpdated       = "tenant.updated"
	EventTenantDeleted       = "tenant.deleted"
	EventBookingCreated      = "booking.created"
	EventContactSubmitted    = "contact.submitted"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

func NewEvent(eventType string, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// EventPublisher delivers domain events after a successful write.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
