// Package events publishes domain events to RabbitMQ. Publishing is
// best-effort: errors are logged and returned so callers can ignore failures
// without interrupting the main flow.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moviebuzz/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Publisher struct {
	url   string
	queue string
	log   *zap.Logger
}

func NewPublisher(config utils.QueueConfig, log *zap.Logger) *Publisher {
	return &Publisher{
		url:   config.URL,
		queue: config.RefundQueue,
		log:   log.With(zap.String("component", "events")),
	}
}

// PublishRefund sends a RefundEvent to the refund queue. Messages are marked
// persistent so they survive broker restarts.
func (p *Publisher) PublishRefund(ctx context.Context, event RefundEvent) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("RabbitMQ dial failed", zap.Error(err))
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("RabbitMQ channel open failed", zap.Error(err))
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare, durable queue
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		p.log.Warn("RabbitMQ queue declare failed", zap.Error(err), zap.String("queue", p.queue))
		return fmt.Errorf("rabbitmq queue declare %s: %w", p.queue, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal refund event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Warn("RabbitMQ publish failed", zap.Error(err), zap.String("queue", p.queue))
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	return nil
}
