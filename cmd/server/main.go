// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/customer-lookup/internal/config"
	"github.com/unclebandit/customer-lookup/internal/controller"
	"github.com/unclebandit/customer-lookup/internal/db"
	"github.com/unclebandit/customer-lookup/internal/logger"
	"github.com/unclebandit/customer-lookup/internal/repository"
	"github.com/unclebandit/customer-lookup/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(nil).Fatal("failed to load config", zap.Error(err))
	}
	log := logger.ForEnvironment(cfg.Env, cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DB.DSN(), log)
	if err != nil {
		return err
	}
	defer conn.Close()

	customerRepo := &repository.CustomerRepository{DB: conn}
	customerService := &service.CustomerService{CustomerRepo: customerRepo, Log: log}
	customerController := &controller.CustomerController{CustomerService: customerService, Log: log}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           controller.NewRouter(customerController, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server running", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
