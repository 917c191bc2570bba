package queue

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue runs every published job on its own goroutine, one per subscriber.
// A job runs once; a handler error is logged and the job dropped.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	log      *zap.Logger
}

type Option func(*InMemoryQueue)

func WithLogger(l *zap.Logger) Option {
	return func(q *InMemoryQueue) { q.log = l }
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Publish hands payload to all subscribers of topic and returns without waiting.
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		go q.processJob(topic, handler, payload)
	}

	return nil
}

func (q *InMemoryQueue) processJob(topic string, handler func(payload any) error, payload any) {
	if err := handler(payload); err != nil {
		q.log.Warn("job dropped", zap.String("topic", topic), zap.Error(err))
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	if handler == nil {
		return fmt.Errorf("nil handler for topic %s", topic)
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}
