package queue

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublish_NoSubscribers(t *testing.T) {
	q := NewInMemoryQueue()
	err := q.Publish("lookups", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subscribers")
}

func TestPublish_DoesNotBlockCaller(t *testing.T) {
	q := NewInMemoryQueue()
	release := make(chan struct{})
	done := make(chan any, 1)
	require.NoError(t, q.Subscribe("lookups", func(payload any) error {
		<-release
		done <- payload
		return nil
	}))

	require.NoError(t, q.Publish("lookups", "42"))
	close(release)

	select {
	case got := <-done:
		assert.Equal(t, "42", got)
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}
}

func TestPublish_FanOut(t *testing.T) {
	q := NewInMemoryQueue()
	var wg sync.WaitGroup
	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Subscribe("lookups", func(payload any) error {
			calls.Add(1)
			wg.Done()
			return nil
		}))
	}

	wg.Add(3)
	require.NoError(t, q.Publish("lookups", 1))
	wg.Wait()
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessJob_RunsOnce(t *testing.T) {
	q := NewInMemoryQueue()
	var attempts atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, q.Subscribe("lookups", func(payload any) error {
		attempts.Add(1)
		wg.Done()
		return errors.New("down")
	}))

	require.NoError(t, q.Publish("lookups", 1))
	wg.Wait()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestSubscribe_NilHandler(t *testing.T) {
	assert.Error(t, NewInMemoryQueue().Subscribe("lookups", nil))
}

func TestAMQPConsume_DrainsBeforeReturning(t *testing.T) {
	q := &AMQPQueue{log: zap.NewNop()}
	msgs := make(chan amqp.Delivery, 2)
	release := make(chan struct{})
	var handled atomic.Int32

	q.consumers.Add(1)
	go q.consume("customer_lookups", msgs, func(payload any) error {
		<-release
		handled.Add(1)
		return nil
	})
	msgs <- amqp.Delivery{Body: []byte(`{"customer_id":"1"}`)}
	msgs <- amqp.Delivery{Body: []byte(`{"customer_id":"2"}`)}
	close(msgs)

	stopped := make(chan struct{})
	go func() {
		q.consumers.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("consumers finished while a handler was still running")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("consumer never stopped")
	}
	assert.Equal(t, int32(2), handled.Load())
}

func TestAMQPConsume_PassesBody(t *testing.T) {
	q := &AMQPQueue{log: zap.NewNop()}
	msgs := make(chan amqp.Delivery, 1)
	var got []byte

	q.consumers.Add(1)
	go q.consume("customer_lookups", msgs, func(payload any) error {
		got = payload.([]byte)
		return errors.New("rejected")
	})
	msgs <- amqp.Delivery{Body: []byte("raw")}
	close(msgs)
	q.consumers.Wait()

	assert.Equal(t, []byte("raw"), got)
}
