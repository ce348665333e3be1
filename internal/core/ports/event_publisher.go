package ports

import (
	"context"
)

// Topics carrying lifecycle events. Vehicle and production order mutations
// publish here; purchase orders and inventory publish nothing.
const (
	TopicVehicleEvents    = "vehicle-events"
	TopicProductionEvents = "production-events"
)

// EventEnvelope is the wire shape of a lifecycle event: a type tag and the
// aggregate snapshot it describes.
type EventEnvelope struct {
	EventType string `json:"eventType"`
	Payload   any    `json:"payload"`
}

// EventPublisher sends lifecycle events to the message broker.
// The key is the aggregate's natural identifier (VIN or order number) and
// selects the routing of the message within the topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event EventEnvelope) error

	// Close releases the broker connection.
	Close() error
}
