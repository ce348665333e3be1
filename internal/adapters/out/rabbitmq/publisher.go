// Package rabbitmq implements the outbound event publisher port on top of
// RabbitMQ topic exchanges.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vehicletrack/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

// Publisher publishes domain events to RabbitMQ. Each topic maps to a
// durable topic exchange; the routing key is the aggregate's natural key.
type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewPublisher connects to RabbitMQ and declares the exchanges used for
// domain events.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, exchange := range []string{ports.TopicVehicleEvents, ports.TopicProductionEvents} {
		if err := channel.ExchangeDeclare(
			exchange,
			"topic",
			true,  // durable
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,
		); err != nil {
			_ = channel.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
	}, nil
}

// Publish sends the event envelope to the topic exchange as a persistent
// JSON message.
func (p *Publisher) Publish(ctx context.Context, topic, key string, event ports.EventEnvelope) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event message: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		topic,
		key,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event message: %w", err)
	}

	return nil
}

// Close closes the channel and the underlying connection.
func (p *Publisher) Close() error {
	return errors.Join(p.channel.Close(), p.conn.Close())
}
