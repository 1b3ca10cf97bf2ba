package rabbitmq

import (
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchangeName = "events"
	EventsExchangeKind = "topic"
)

// Consumer drains the platform's event stream into this service. The queue
// name and binding key come from config so deployments can rename the queue
// or narrow the binding without a rebuild.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewConsumer(url, queue, binding string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	fail := func(stage string, err error) (*Consumer, error) {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq %s: %w", stage, err)
	}

	if err := ch.ExchangeDeclare(EventsExchangeName, EventsExchangeKind, true, false, false, false, nil); err != nil {
		return fail("exchange declare", err)
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fail("queue declare", err)
	}

	if err := ch.QueueBind(q.Name, binding, EventsExchangeName, false, nil); err != nil {
		return fail("queue bind", err)
	}

	return &Consumer{conn: conn, channel: ch, queue: q.Name}, nil
}

// Consume starts delivery with manual acks; the event consumer acks only
// after the row is written.
func (c *Consumer) Consume() (<-chan amqp.Delivery, error) {
	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq consume: %w", err)
	}

	log.Printf("[RabbitMQ] consuming from queue: %s", c.queue)
	return msgs, nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
