package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   logger.Logger
}

// NewPublisher returns an AMQP publisher when a broker URL is configured and
// a logging publisher otherwise.
func NewPublisher(settings *config.MessagingSettings, logger logger.Logger) (notify.Publisher, error) {
	if !settings.Enabled() {
		logger.Info("No AMQP URL configured, events are only logged")
		return NewLogPublisher(logger), nil
	}
	return NewAMQPPublisher(settings, logger)
}

// NewAMQPPublisher connects to the broker and declares a durable topic exchange.
func NewAMQPPublisher(settings *config.MessagingSettings, logger logger.Logger) (notify.Publisher, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		settings.Exchange, // name
		"topic",           // kind
		true,              // durable
		false,             // delete when unused
		false,             // internal
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", settings.Exchange, err)
	}

	logger.Info("Connected to RabbitMQ", "exchange", settings.Exchange)
	return &amqpPublisher{
		conn:     conn,
		channel:  ch,
		exchange: settings.Exchange,
		logger:   logger,
	}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event notify.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    event.OccurredAt,
			Type:         event.Type,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	p.logger.Debug("Published event", "type", event.Type)
	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		_ = p.conn.Close()
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
