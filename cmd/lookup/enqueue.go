package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/config"
	"github.com/unclebandit/customer-lookup/internal/lookup"
	"github.com/unclebandit/customer-lookup/internal/queue"
)

func newEnqueueCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	var amqpURL, queueName string

	cmd := &cobra.Command{
		Use:   "enqueue <customer-id>...",
		Short: "Queue lookups for the worker",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if amqpURL == "" {
				return errors.New("no AMQP URL: set AMQP_URL or --amqp-url")
			}
			q, err := queue.DialAMQP(amqpURL, log)
			if err != nil {
				return err
			}
			defer q.Close()

			return enqueue(q, queueName, args, func(id string) {
				fmt.Fprintf(cmd.OutOrStdout(), "queued %s\n", id)
			})
		},
	}
	cmd.Flags().StringVar(&amqpURL, "amqp-url", cfg.AMQP.URL, "RabbitMQ URL")
	cmd.Flags().StringVar(&queueName, "queue", cfg.AMQP.Queue, "queue the worker consumes")
	return cmd
}

func enqueue(q queue.Queue, topic string, ids []string, queued func(id string)) error {
	for _, id := range ids {
		if err := q.Publish(topic, lookup.Job{CustomerID: id}); err != nil {
			return fmt.Errorf("queue %s: %w", id, err)
		}
		queued(id)
	}
	return nil
}
