package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// Publisher sends domain events to a single durable queue through the
// default exchange.
type Publisher struct {
	rmq   *Connection
	queue string
	log   zerolog.Logger
}

var _ domain.EventPublisher = (*Publisher)(nil)

// NewPublisher declares queue and returns a publisher bound to it.
func NewPublisher(r *Connection, queue string, log zerolog.Logger) (*Publisher, error) {
	ch, err := r.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("queue declare failed: %w", err)
	}

	return &Publisher{rmq: r, queue: queue, log: log}, nil
}

func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Type, err)
	}

	channel, err := p.rmq.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer channel.Close()

	err = channel.Publish(
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	p.log.Debug().Str("event", event.Type).Str("event_id", event.ID).Msg("Event published")
	return nil
}
