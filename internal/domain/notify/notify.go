// Package notify describes the events published when visitors interact with
// the public site.
package notify

import (
	"context"
	"time"
)

// Event types.
const (
	EventApplicationReceived = "application.received"
	EventSubscriberCreated   = "subscriber.created"
)

// Event is a fire-and-forget notification. Type doubles as the routing key.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload"`
}

// NewEvent creates an event stamped with the current time.
func NewEvent(eventType string, payload map[string]any) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Payload: payload}
}

// Publisher sends events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
