package rabbitmq

import (
	"context"

	"github.com/fekalegi/property-management-system/pkg/retry"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

type Connection struct {
	conn *amqp.Connection
	log  zerolog.Logger
}

// NewConnection dials the broker, retrying under p.
func NewConnection(ctx context.Context, url string, p retry.Policy, log zerolog.Logger) (*Connection, error) {
	var conn *amqp.Connection
	err := retry.Do(ctx, p, log, "rabbitmq", func(context.Context) error {
		c, err := amqp.Dial(url)
		if err != nil {
			return err
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Msg("Connected to RabbitMQ")
	return &Connection{
		conn: conn,
		log:  log,
	}, nil
}

func (c *Connection) Channel() (*amqp.Channel, error) {
	return c.conn.Channel()
}

func (c *Connection) Close() {
	if err := c.conn.Close(); err != nil {
		c.log.Error().Err(err).Msg("Failed to close RabbitMQ connection")
	}
}
