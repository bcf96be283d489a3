// Package pubsub provides a generic publish/subscribe event system.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber is the receive side of a broker. Consumers that only need to
// listen (the tea listener bridge) take this instead of a concrete Broker.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher is the send side of a broker. Producers that only emit events
// (classrooms publishing activity) take this instead of a concrete Broker.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
