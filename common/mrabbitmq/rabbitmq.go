package mrabbitmq

import (
	"context"

	"github.com/foodtrace/lotcore/common/mlog"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RabbitMQConnection is a hub which deal with rabbitmq connections. It
// publishes domain events (lot.quarantined.bulk, offline.conflict) raised by the
// command layer; nothing in this module consumes from rabbitmq.
type RabbitMQConnection struct {
	ConnectionStringSource string
	Exchange               string
	Connection             *amqp.Connection
	Channel                *amqp.Channel
	Connected              bool
	Logger                 mlog.Logger
}

// Connect keeps a singleton connection with rabbitmq.
func (rc *RabbitMQConnection) Connect(ctx context.Context) error {
	rc.Logger.Info("Connecting on rabbitmq...")

	conn, err := amqp.Dial(rc.ConnectionStringSource)
	if err != nil {
		rc.Logger.Error("failed to connect on rabbitmq", zap.Error(err))
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		rc.Logger.Error("failed to open channel on rabbitmq", zap.Error(err))
		return err
	}

	if rc.Exchange != "" {
		if err := ch.ExchangeDeclare(rc.Exchange, "topic", true, false, false, false, nil); err != nil {
			rc.Logger.Error("failed to declare exchange on rabbitmq", zap.Error(err))
			return err
		}
	}

	rc.Logger.Info("Connected on rabbitmq ✅ \n")

	rc.Connection = conn
	rc.Channel = ch
	rc.Connected = true

	return nil
}

// GetChannel returns a pointer to the rabbitmq channel, initializing it if necessary.
func (rc *RabbitMQConnection) GetChannel(ctx context.Context) (*amqp.Channel, error) {
	if !rc.Connected {
		if err := rc.Connect(ctx); err != nil {
			rc.Logger.Infof("ERRCONECT %s", err)

			return nil, err
		}
	}

	return rc.Channel, nil
}

// Publish sends a message with the given routing key to the configured exchange.
func (rc *RabbitMQConnection) Publish(ctx context.Context, routingKey string, body []byte) error {
	ch, err := rc.GetChannel(ctx)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, rc.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
