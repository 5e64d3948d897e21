// Package events publishes roster lifecycle events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DefaultQueue receives WeekReady events unless configured otherwise
const DefaultQueue = "nurse-roster.week-ready"

// WeekReady announces that the history entering Week has been computed and
// the week can be solved
type WeekReady struct {
	Scenario    string    `json:"scenario"`
	Week        int       `json:"week"`
	HistoryFile string    `json:"historyFile"`
	RecordID    string    `json:"recordId,omitempty"`
	IsLastWeek  bool      `json:"isLastWeek"`
	CreatedAt   time.Time `json:"createdAt"`
}

// channel is the part of *amqp.Channel the publisher uses
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends events to a single durable queue
type Publisher struct {
	conn    *amqp.Connection
	ch      channel
	queue   string
	timeout time.Duration
	logger  *zap.Logger
}

// Dial connects to the broker at url and declares queue
func Dial(url, queue string, logger *zap.Logger) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	p := newPublisher(ch, queue, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, queue string, logger *zap.Logger) *Publisher {
	return &Publisher{ch: ch, queue: queue, timeout: 10 * time.Second, logger: logger}
}

// PublishWeekReady sends event as a persistent JSON message
func (p *Publisher) PublishWeekReady(ctx context.Context, event WeekReady) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode week ready event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.CreatedAt,
		Type:         "WeekReady",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish week ready event: %w", err)
	}

	p.logger.Debug("Published week ready event",
		zap.String("queue", p.queue),
		zap.String("scenario", event.Scenario),
		zap.Int("week", event.Week))
	return nil
}

// Close closes the channel and the connection
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return nil
}
