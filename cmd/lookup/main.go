// Command lookup finds customers through the customer API from a terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/config"
	"github.com/unclebandit/customer-lookup/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(nil).Fatal("failed to load config", zap.Error(err))
	}
	log := logger.ForEnvironment(cfg.Env, cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, log).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
