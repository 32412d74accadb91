// internal/events/publisher.go
package events

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"tenantnotes/internal/metrics"
)

const (
	queueName = "tenant_events"
	dlqName   = "tenant_events_dlq"
)

// RabbitPublisher publishes domain events to a durable queue with a
// dead-letter queue for messages the recorder rejects.
type RabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	URL     string
}

func NewRabbitPublisher(url string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	p := &RabbitPublisher{
		conn:    conn,
		channel: ch,
		URL:     url,
	}
	if err := p.declareQueues(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *RabbitPublisher) GetChannel() *amqp.Channel {
	return p.channel
}

func (p *RabbitPublisher) declareQueues() error {
	// 1. DLQ
	_, err := p.channel.QueueDeclare(
		dlqName,
		true, false, false, false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}

	// 2. Main queue with DLQ binding
	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}
	_, err = p.channel.QueueDeclare(
		queueName,
		true, false, false, false,
		args,
	)
	if err != nil {
		return fmt.Errorf("declare main queue: %w", err)
	}
	return nil
}

// Publish sends the event to the tenant events queue.
func (p *RabbitPublisher) Publish(e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	err = p.channel.Publish(
		"",        // default exchange
		queueName, // routing key (queue name)
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queueName, err)
	}
	return nil
}

// UpdateQueueDepth exports the current queue depth gauge.
func (p *RabbitPublisher) UpdateQueueDepth() error {
	q, err := p.channel.QueueInspect(queueName)
	if err != nil {
		return fmt.Errorf("failed to inspect queue %s: %w", queueName, err)
	}
	metrics.EventQueueDepth.Set(float64(q.Messages))
	return nil
}

// Close cleans up connection and channel
func (p *RabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
