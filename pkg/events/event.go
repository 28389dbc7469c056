package events

import "time"

// Event is what the NATS publisher puts on the wire. The event type becomes
// the subject suffix, so it must be stable across releases.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the common implementation embedded by the concrete document
// events and reconstructed by the subscriber from inbound messages.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
