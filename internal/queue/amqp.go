package queue

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// AMQPQueue publishes JSON payloads to durable RabbitMQ queues named after the topic.
// Subscribers receive the raw message body as []byte.
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger

	mu       sync.Mutex
	declared map[string]bool

	consumers sync.WaitGroup
}

func DialAMQP(url string, log *zap.Logger) (*AMQPQueue, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &AMQPQueue{
		conn:     conn,
		ch:       ch,
		log:      log,
		declared: make(map[string]bool),
	}, nil
}

// declare must be called with q.mu held.
func (q *AMQPQueue) declare(topic string) error {
	if q.declared[topic] {
		return nil
	}
	_, err := q.ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", topic, err)
	}
	q.declared[topic] = true
	return nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload for %s: %w", topic, err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.declare(topic); err != nil {
		return err
	}
	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Subscribe consumes topic with manual acks. A handler error rejects the delivery
// without requeueing it.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	if err := q.declare(topic); err != nil {
		q.mu.Unlock()
		return err
	}
	msgs, err := q.ch.Consume(
		topic,
		"",
		false, // autoAck
		false,
		false,
		false,
		nil,
	)
	q.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer on %s: %w", topic, err)
	}

	q.consumers.Add(1)
	go q.consume(topic, msgs, handler)
	return nil
}

func (q *AMQPQueue) consume(topic string, msgs <-chan amqp.Delivery, handler func(payload any) error) {
	defer q.consumers.Done()
	for d := range msgs {
		if err := handler(d.Body); err != nil {
			q.log.Warn("delivery rejected", zap.String("topic", topic), zap.Error(err))
			d.Nack(false, false)
			continue
		}
		d.Ack(false)
	}
	q.log.Info("consumer stopped", zap.String("topic", topic))
}

// Close stops consuming and returns once every handler that was running has
// finished, so no delivery reaches a handler after Close.
func (q *AMQPQueue) Close() error {
	err := q.ch.Close()
	q.consumers.Wait()
	if cerr := q.conn.Close(); err == nil {
		err = cerr
	}
	return err
}

var (
	_ Queue = (*InMemoryQueue)(nil)
	_ Queue = (*AMQPQueue)(nil)
)
