package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	ExchangeName = "emergency.events"
	ExchangeType = "topic"
	ServiceName  = "emergency-dispatch"
)

// Envelope - сообщение в брокере. Routing key совпадает с EventType.
type Envelope struct {
	ServiceName string `json:"service_name"`
	models.DispatchEvent
}

// channel - часть *amqp.Channel, которой пользуется издатель
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события диспетчеризации в topic exchange RabbitMQ
type Publisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	logger   *logrus.Logger
}

// NewPublisher подключается к брокеру и объявляет durable topic exchange
func NewPublisher(rabbitmqURL string, logger *logrus.Logger) (*Publisher, error) {
	logger.WithField("url", maskCredentials(rabbitmqURL)).Info("Connecting to RabbitMQ")

	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName, // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.WithField("exchange", ExchangeName).Info("Connected to RabbitMQ")
	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: ExchangeName,
		logger:   logger,
	}, nil
}

// Publish отправляет событие с routing key = event.EventType
func (p *Publisher) Publish(ctx context.Context, event models.DispatchEvent) error {
	body, err := json.Marshal(Envelope{ServiceName: ServiceName, DispatchEvent: event})
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		event.EventType,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.Timestamp,
			MessageId:    event.EventID.String(),
			AppId:        ServiceName,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", event.EventType, err)
	}

	p.logger.WithFields(logrus.Fields{
		"event_type": event.EventType,
		"request_id": event.RequestID,
	}).Debug("Published dispatch event to RabbitMQ")
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.WithError(err).Warn("Error closing RabbitMQ channel")
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// maskCredentials скрывает логин и пароль в URL брокера
func maskCredentials(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("***", "***")
	return u.Redacted()
}
