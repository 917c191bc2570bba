//cmd/seeder/main.go
package main

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/config"
	"github.com/unclebandit/customer-lookup/internal/db"
	"github.com/unclebandit/customer-lookup/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(nil).Fatal("failed to load config", zap.Error(err))
	}
	log := logger.ForEnvironment(cfg.Env, cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DB.DSN(), log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	defer conn.Close()

	seedDir := "seed"
	if len(os.Args) > 1 {
		seedDir = os.Args[1]
	}
	seedFiles := []string{
		"schema.sql",
		"customers.sql",
	}

	for _, file := range seedFiles {
		path := filepath.Join(seedDir, file)
		content, err := os.ReadFile(path)
		if err != nil {
			log.Fatal("failed to read seed file", zap.String("file", path), zap.Error(err))
		}

		if _, err := conn.ExecContext(ctx, string(content)); err != nil {
			log.Fatal("failed to execute seed file", zap.String("file", path), zap.Error(err))
		}
		log.Info("seeded", zap.String("file", path))
	}

	log.Info("database seeding completed")
}
