// Package broker publishes advertisement lifecycle events to RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends JSON events to durable queues named QueuePrefix + routing key.
// One channel is shared and guarded by a mutex.
type Publisher struct {
	conn   *amqp.Connection
	prefix string
	log    *slog.Logger

	mu       sync.Mutex
	ch       *amqp.Channel
	declared map[string]bool
}

// Dial connects to the broker at url.
func Dial(url, queuePrefix string, log *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return &Publisher{
		conn:     conn,
		ch:       ch,
		prefix:   queuePrefix,
		log:      log.With("adapter", "broker"),
		declared: make(map[string]bool),
	}, nil
}

// QueueName returns the queue that receives events with routingKey.
func QueueName(prefix, routingKey string) string {
	return prefix + routingKey
}

// Publish marshals event and publishes it as a persistent message.
func (p *Publisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", routingKey, err)
	}

	queue := QueueName(p.prefix, routingKey)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[queue] {
		if _, err := p.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare queue %s: %w", queue, err)
		}
		p.declared[queue] = true
	}

	err = p.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.log.DebugContext(ctx, "event published", slog.String("queue", queue))
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		p.log.Warn("close channel", slog.String("error", err.Error()))
	}
	return p.conn.Close()
}

// Noop discards events. It is used when no broker URL is configured.
type Noop struct{}

// Publish does nothing.
func (Noop) Publish(context.Context, string, any) error { return nil }
