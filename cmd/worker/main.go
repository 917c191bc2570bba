package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/client"
	"github.com/unclebandit/customer-lookup/internal/config"
	"github.com/unclebandit/customer-lookup/internal/logger"
	"github.com/unclebandit/customer-lookup/internal/lookup"
	"github.com/unclebandit/customer-lookup/internal/page"
	"github.com/unclebandit/customer-lookup/internal/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(nil).Fatal("failed to load config", zap.Error(err))
	}
	log := logger.ForEnvironment(cfg.Env, cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	if cfg.AMQP.URL == "" {
		log.Fatal("AMQP_URL is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	q, err := queue.DialAMQP(cfg.AMQP.URL, log)
	if err != nil {
		log.Fatal("queue unavailable", zap.Error(err))
	}

	doc := page.NewDocument(lookup.InputCustomerID, lookup.OutputName, lookup.OutputCity, lookup.OutputEmail)
	api := client.New(cfg.Lookup.BaseURL, client.WithTimeout(cfg.Lookup.Timeout), client.WithLogger(log))
	widget, err := lookup.New(doc, api, lookup.WithLogger(log))
	if err != nil {
		log.Fatal("failed to mount widget", zap.Error(err))
	}

	if err := q.Subscribe(cfg.AMQP.Queue, newJobHandler(ctx, doc, widget, log)); err != nil {
		log.Fatal("failed to register consumer", zap.Error(err))
	}

	log.Info("worker running, waiting for lookups", zap.String("queue", cfg.AMQP.Queue))
	<-ctx.Done()

	if err := q.Close(); err != nil {
		log.Warn("failed to close queue", zap.Error(err))
	}
	widget.Wait()
	log.Info("worker stopped")
}

// newJobHandler feeds each queued job into the widget as if it were typed into
// the form, then logs what the display shows. Jobs are never retried.
func newJobHandler(ctx context.Context, doc *page.Document, widget *lookup.Widget, log *zap.Logger) func(payload any) error {
	return func(payload any) error {
		body, ok := payload.([]byte)
		if !ok {
			log.Warn("invalid payload type, expected []byte")
			return nil
		}

		var job lookup.Job
		if err := json.Unmarshal(body, &job); err != nil {
			log.Warn("invalid job", zap.ByteString("body", body), zap.Error(err))
			return nil
		}

		doc.SetInput(lookup.InputCustomerID, job.CustomerID)
		widget.Submit(ctx)
		widget.Wait()

		log.Info("display",
			zap.String("input", job.CustomerID),
			zap.Any("elements", doc.Snapshot()),
		)
		return nil
	}
}
