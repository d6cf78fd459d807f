package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cinema-seating/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends JSON messages to a single durable queue.
type Publisher interface {
	Publish(ctx context.Context, payload any) error
	Close() error
}

// NewPublisher returns a RabbitMQ publisher, or a no-op one when no broker URL
// is configured.
func NewPublisher(config utils.RabbitMQConfig, log *zap.Logger) (Publisher, error) {
	if config.URL == "" {
		log.Warn("RabbitMQ URL not set, events will not be published")
		return NopPublisher{}, nil
	}

	p := &RabbitPublisher{
		url:   config.URL,
		queue: config.Queue,
		log:   log.With(zap.String("broker", "rabbitmq"), zap.String("queue", config.Queue)),
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

type RabbitPublisher struct {
	url   string
	queue string
	log   *zap.Logger

	mu   sync.Mutex // amqp channels are not safe for concurrent publishing
	conn *amqp.Connection
	ch   *amqp.Channel
}

func (p *RabbitPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

// Publish marshals payload and publishes it as a persistent message,
// reconnecting once if the connection was dropped.
func (p *RabbitPublisher) Publish(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		p.log.Warn("RabbitMQ connection closed, reconnecting")
		if err := p.connect(); err != nil {
			return err
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	); err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}

	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops every message.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, any) error { return nil }
func (NopPublisher) Close() error                       { return nil }
