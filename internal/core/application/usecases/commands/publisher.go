package commands

import (
	"context"
	"log/slog"

	"vehicletrack/internal/core/ports"
)

// publishEvent sends a lifecycle event after the transaction has committed.
// Publishing is best effort: a broker failure is logged and swallowed so the
// already-committed state change still succeeds from the caller's view.
func publishEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	topic, key, eventType string,
	payload any,
) {
	if publisher == nil {
		return
	}

	event := ports.EventEnvelope{
		EventType: eventType,
		Payload:   payload,
	}

	if err := publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Error("failed to publish event",
			"topic", topic,
			"key", key,
			"eventType", eventType,
			"error", err,
		)
	}
}
